// Package dataset loads per-season CSV files into in-memory season tables
// and memoizes them for the life of the process.
package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/adarshsaranathan/defensive-metrics/internal/domain/metric"
	"github.com/adarshsaranathan/defensive-metrics/internal/domain/model"
	"github.com/adarshsaranathan/defensive-metrics/internal/domain/stats"
	"github.com/adarshsaranathan/defensive-metrics/pkg/logger"
	"github.com/adarshsaranathan/defensive-metrics/pkg/metrics"
)

// Required identity/context columns. The twelve metric columns are
// individually optional: older and newer file schemas may omit whole
// columns, and that is tolerated.
const (
	colPlayer  = "Player"
	colTeam    = "Team"
	colInnings = "Inn"
	colAge     = "Age"
)

// Loader parses season CSV files into tables of PlayerSeasonRecord.
// Loading is a pure function of file contents: the same file yields
// row-for-row identical tables on every call.
type Loader struct {
	logger logger.Logger
}

// NewLoader creates a Loader with the given options.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the CSV at path into a season table, computing the
// disagreement index for every row. Any resolution or parse failure wraps
// ErrUnavailable.
func (l *Loader) Load(ctx context.Context, season, path string) ([]model.PlayerSeasonRecord, error) {
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		metrics.RecordDatasetLoadError(season)
		return nil, fmt.Errorf("%w: open %s: %v", ErrUnavailable, path, err)
	}
	defer func() { _ = f.Close() }()

	rows, err := l.parse(season, f)
	if err != nil {
		metrics.RecordDatasetLoadError(season)
		return nil, err
	}

	metrics.RecordDatasetLoad(season)
	metrics.RecordDatasetLoadDuration(float64(time.Since(start).Milliseconds()))
	metrics.UpdateSeasonRows(season, len(rows))
	if l.logger != nil {
		l.logger.Info(ctx, "season table loaded",
			logger.String("season", season),
			logger.String("path", path),
			logger.Int("rows", len(rows)),
		)
	}
	return rows, nil
}

// columnIndex maps header names to field positions for one file schema.
type columnIndex map[string]int

func (c columnIndex) require(name string) (int, error) {
	idx, ok := c[name]
	if !ok {
		return 0, fmt.Errorf("%w: missing required column %q", ErrUnavailable, name)
	}
	return idx, nil
}

func (l *Loader) parse(season string, r io.Reader) ([]model.PlayerSeasonRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrUnavailable, err)
	}

	cols := make(columnIndex, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	playerIdx, err := cols.require(colPlayer)
	if err != nil {
		return nil, err
	}
	teamIdx, err := cols.require(colTeam)
	if err != nil {
		return nil, err
	}
	inningsIdx, err := cols.require(colInnings)
	if err != nil {
		return nil, err
	}
	ageIdx, err := cols.require(colAge)
	if err != nil {
		return nil, err
	}

	var rows []model.PlayerSeasonRecord
	for line := 2; ; line++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrUnavailable, line, err)
		}

		rec, err := buildRecord(season, line, fields, cols, playerIdx, teamIdx, inningsIdx, ageIdx)
		if err != nil {
			return nil, err
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

func buildRecord(season string, line int, fields []string, cols columnIndex, playerIdx, teamIdx, inningsIdx, ageIdx int) (model.PlayerSeasonRecord, error) {
	rec := model.PlayerSeasonRecord{
		Player: strings.TrimSpace(fields[playerIdx]),
		Team:   strings.TrimSpace(fields[teamIdx]),
		Season: season,
	}

	innings, err := parseInnings(fields[inningsIdx])
	if err != nil {
		return rec, fmt.Errorf("%w: line %d: column %q: %v", ErrUnavailable, line, colInnings, err)
	}
	rec.Innings = innings

	age, err := strconv.ParseFloat(strings.TrimSpace(fields[ageIdx]), 64)
	if err != nil {
		return rec, fmt.Errorf("%w: line %d: column %q: %v", ErrUnavailable, line, colAge, err)
	}
	rec.Age = age

	// Metric columns: absent column => nil, empty cell => nil, anything
	// else must parse. Percentile collection below only sees columns that
	// exist in this file AND are non-null on this row.
	var pcts []float64
	for _, m := range metric.Canonical() {
		raw, err := nullableField(fields, cols, m.RawColumn())
		if err != nil {
			return rec, fmt.Errorf("%w: line %d: %v", ErrUnavailable, line, err)
		}
		rec.Raw[m] = raw

		pct, err := nullableField(fields, cols, m.PercentileColumn())
		if err != nil {
			return rec, fmt.Errorf("%w: line %d: %v", ErrUnavailable, line, err)
		}
		rec.Percentiles[m] = pct
		if pct != nil {
			pcts = append(pcts, *pct)
		}
	}

	if len(pcts) > 0 {
		rec.DisagreementIndex = model.Float(stats.PopulationStdDev(pcts))
	}
	return rec, nil
}

// parseInnings accepts both plain integers and the baseball thirds notation
// (e.g. "1210.1") and truncates to whole innings.
func parseInnings(s string) (int, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("negative innings %v", v)
	}
	return int(v), nil
}

func nullableField(fields []string, cols columnIndex, name string) (*float64, error) {
	idx, ok := cols[name]
	if !ok {
		return nil, nil
	}
	cell := strings.TrimSpace(fields[idx])
	if cell == "" || cell == "NA" || cell == "N/A" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return nil, fmt.Errorf("column %q: %v", name, err)
	}
	return &v, nil
}
