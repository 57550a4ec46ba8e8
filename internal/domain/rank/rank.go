// Package rank implements the metric ranking engine: best/worst metric
// selection for a single player and top-N leaderboards over a season table.
package rank

import (
	"sort"

	"github.com/adarshsaranathan/defensive-metrics/internal/domain/metric"
	"github.com/adarshsaranathan/defensive-metrics/internal/domain/model"
	"github.com/adarshsaranathan/defensive-metrics/internal/domain/types"
)

// BestWorst returns the metrics with the highest and lowest percentile among
// the record's available metrics. Ties resolve to the first metric in
// canonical order on both ends. Returns ErrNoPercentileData when the record
// has no percentile values; callers normally gate on
// model.PlayerSeasonRecord.AvailablePercentiles first.
func BestWorst(rec *model.PlayerSeasonRecord) (best, worst metric.Metric, err error) {
	available := rec.AvailablePercentiles()
	if len(available) == 0 {
		return 0, 0, ErrNoPercentileData
	}

	best, worst = available[0], available[0]
	for _, m := range available[1:] {
		v := *rec.Percentile(m)
		// Strict comparisons keep the first occurrence on ties.
		if v > *rec.Percentile(best) {
			best = m
		}
		if v < *rec.Percentile(worst) {
			worst = m
		}
	}
	return best, worst, nil
}

// Leaderboard ranks rows by the chosen percentile metric, descending. Rows
// with no value for the metric are excluded entirely. Ties keep the order
// the rows had on the way in (stable sort); the cut to topN happens after
// sorting. topN bounds are the caller's responsibility; non-positive topN
// yields an empty board.
func Leaderboard(rows []model.PlayerSeasonRecord, m metric.Metric, topN int) []types.LeaderRow {
	pool := make([]*model.PlayerSeasonRecord, 0, len(rows))
	for i := range rows {
		if rows[i].Percentile(m) != nil {
			pool = append(pool, &rows[i])
		}
	}

	sort.SliceStable(pool, func(a, b int) bool {
		return *pool[a].Percentile(m) > *pool[b].Percentile(m)
	})

	if topN < 0 {
		topN = 0
	}
	if topN < len(pool) {
		pool = pool[:topN]
	}

	out := make([]types.LeaderRow, len(pool))
	for i, rec := range pool {
		out[i] = types.LeaderRow{
			Rank:              i + 1,
			Player:            rec.Player,
			Team:              rec.Team,
			Metric:            m.Slug(),
			Value:             *rec.Percentile(m),
			DisagreementIndex: rec.DisagreementIndex,
		}
	}
	return out
}
