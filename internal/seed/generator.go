// Package seed generates deterministic season CSV fixtures for local
// development and load testing.
package seed

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/rand"
	"strconv"

	"github.com/adarshsaranathan/defensive-metrics/internal/domain/metric"
	"github.com/adarshsaranathan/defensive-metrics/internal/domain/model"
	"github.com/adarshsaranathan/defensive-metrics/pkg/logger"
)

// Default generation parameters.
const (
	DefaultPlayers  = 120
	DefaultSeed     = 1
	DefaultNullRate = 0.15

	minInnings   = 200
	maxInnings   = 1400
	minAge       = 21
	maxAge       = 38
	singleRowPct = 50.0
)

// DefaultTeams is the team-code pool used when none is configured.
var DefaultTeams = []string{
	"ARI", "ATL", "BAL", "BOS", "CHC", "CHW", "CIN", "CLE", "COL", "DET",
	"HOU", "KCR", "LAA", "LAD", "MIA", "MIL", "MIN", "NYM", "NYY", "OAK",
	"PHI", "PIT", "SDP", "SEA", "SFG", "STL", "TBR", "TEX", "TOR", "WSN",
}

// Config controls fixture generation. The same config always yields the
// same rows.
type Config struct {
	Players  int
	Teams    []string
	Seed     int64
	NullRate float64
}

// Row is one generated player season line.
type Row struct {
	Player  string
	Team    string
	Innings int
	Age     float64
	Raw     [metric.Count]*float64
}

// rawRange bounds the raw value of one rating system.
type rawRange struct {
	lo, hi float64
}

// Raw value spans roughly matching the published leaderboards.
var rawRanges = [metric.Count]rawRange{
	metric.OAA:         {-15, 20},
	metric.DRS:         {-20, 25},
	metric.TotalZone:   {-15, 20},
	metric.DRP:         {-10, 15},
	metric.FieldingPct: {0.940, 1.000},
	metric.FRV:         {-18, 22},
}

var firstNames = []string{
	"Alex", "Ben", "Carlos", "Dan", "Eli", "Frank", "Gio", "Hank",
	"Ivan", "Jose", "Kyle", "Luis", "Marco", "Nick", "Omar", "Pete",
	"Quinn", "Rafael", "Sam", "Tom", "Victor", "Will", "Xander", "Yadi",
}

var lastNames = []string{
	"Alvarez", "Bennett", "Castillo", "Diaz", "Ellis", "Flores",
	"Garcia", "Hayes", "Iglesias", "Jones", "Kim", "Lopez", "Martinez",
	"Nunez", "Ortiz", "Perez", "Quintana", "Rojas", "Santos", "Torres",
	"Urias", "Vargas", "Walker", "Young",
}

// Generate produces cfg.Players rows. Each player gets a latent skill
// level; every rating system observes that skill through its own noise, so
// the systems agree on stars and scrubs but scatter in the middle.
func Generate(ctx context.Context, cfg Config) []Row {
	if cfg.Players <= 0 {
		cfg.Players = DefaultPlayers
	}
	if len(cfg.Teams) == 0 {
		cfg.Teams = DefaultTeams
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	rows := make([]Row, cfg.Players)

	for i := range rows {
		skill := rng.Float64()

		row := Row{
			Player:  playerName(i),
			Team:    cfg.Teams[rng.Intn(len(cfg.Teams))],
			Innings: minInnings + rng.Intn(maxInnings-minInnings+1),
			Age:     float64(minAge + rng.Intn(maxAge-minAge+1)),
		}

		for _, m := range metric.Canonical() {
			if rng.Float64() < cfg.NullRate {
				continue
			}
			// Observed skill = latent skill plus per-system noise,
			// clamped to [0, 1].
			observed := skill + rng.NormFloat64()*0.12
			observed = math.Max(0, math.Min(1, observed))

			r := rawRanges[m]
			value := r.lo + observed*(r.hi-r.lo)
			if m == metric.FieldingPct {
				value = math.Round(value*1000) / 1000
			} else {
				value = math.Round(value*10) / 10
			}
			row.Raw[m] = model.Float(value)
		}
		rows[i] = row
	}

	logger.Get().Info(ctx, "generated fixture rows",
		logger.Int("players", len(rows)),
		logger.Int("teams", len(cfg.Teams)),
	)
	return rows
}

// playerName builds a unique name from the pools, suffixing once the
// combinations run out.
func playerName(i int) string {
	first := firstNames[i%len(firstNames)]
	last := lastNames[(i/len(firstNames))%len(lastNames)]
	round := i / (len(firstNames) * len(lastNames))
	if round > 0 {
		return fmt.Sprintf("%s %s %s", first, last, roman(round+1))
	}
	return first + " " + last
}

func roman(n int) string {
	numerals := []string{"", "I", "II", "III", "IV", "V"}
	if n < len(numerals) {
		return numerals[n]
	}
	return strconv.Itoa(n)
}

// percentiles converts each metric's raw column into 0-100 percentile
// ranks across the rows that carry the metric. Nil raws stay nil.
func percentiles(rows []Row) [][metric.Count]*float64 {
	out := make([][metric.Count]*float64, len(rows))

	for _, m := range metric.Canonical() {
		var values []float64
		for i := range rows {
			if v := rows[i].Raw[m]; v != nil {
				values = append(values, *v)
			}
		}
		n := len(values)
		for i := range rows {
			v := rows[i].Raw[m]
			if v == nil {
				continue
			}
			if n == 1 {
				out[i][m] = model.Float(singleRowPct)
				continue
			}
			below := 0
			for _, other := range values {
				if other < *v {
					below++
				}
			}
			pct := math.Round(float64(below) / float64(n-1) * 100)
			out[i][m] = model.Float(math.Min(100, pct))
		}
	}
	return out
}

// WriteCSV emits the rows in the season snapshot schema the loader
// expects: identity columns, then the raw columns, then the percentile
// columns.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	header := []string{"Player", "Team", "Inn", "Age"}
	for _, m := range metric.Canonical() {
		header = append(header, m.RawColumn())
	}
	for _, m := range metric.Canonical() {
		header = append(header, m.PercentileColumn())
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	pcts := percentiles(rows)
	for i := range rows {
		record := []string{
			rows[i].Player,
			rows[i].Team,
			strconv.Itoa(rows[i].Innings),
			strconv.FormatFloat(rows[i].Age, 'f', -1, 64),
		}
		for _, m := range metric.Canonical() {
			record = append(record, formatFloat(rows[i].Raw[m]))
		}
		for _, m := range metric.Canonical() {
			record = append(record, formatFloat(pcts[i][m]))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
