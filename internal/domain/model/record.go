// Package model contains domain models passed between layers.
package model

import "github.com/adarshsaranathan/defensive-metrics/internal/domain/metric"

// PlayerSeasonRecord is one row of a season table: one player's defensive
// numbers for one season. Metric values are indexed by metric.Metric and are
// nil when the source file has no value for that cell; nil is distinct from
// zero throughout.
type PlayerSeasonRecord struct {
	Player  string
	Team    string
	Season  string
	Innings int
	Age     float64

	// Raw and Percentiles are aligned by metric id, not by position in any
	// list. A percentile is expected to be nil exactly when its raw value is
	// nil; the source data owns that invariant.
	Raw         [metric.Count]*float64
	Percentiles [metric.Count]*float64

	// DisagreementIndex is the population standard deviation across the
	// non-nil percentile values, computed once at load. Nil when the record
	// has no percentile data at all.
	DisagreementIndex *float64
}

// RawValue returns the raw value of m, or nil when absent.
func (r *PlayerSeasonRecord) RawValue(m metric.Metric) *float64 {
	return r.Raw[m]
}

// Percentile returns the percentile value of m, or nil when absent.
func (r *PlayerSeasonRecord) Percentile(m metric.Metric) *float64 {
	return r.Percentiles[m]
}

// AvailablePercentiles returns, in canonical metric order, the metrics whose
// percentile value is present on this record. The result may be empty; an
// empty result is a valid "no percentile data" state, not an error.
func (r *PlayerSeasonRecord) AvailablePercentiles() []metric.Metric {
	var out []metric.Metric
	for _, m := range metric.Canonical() {
		if r.Percentiles[m] != nil {
			out = append(out, m)
		}
	}
	return out
}

// Equal reports value equality between two records, comparing pointed-to
// metric values rather than pointer identity. Used to verify that reloading
// a season yields row-for-row identical tables.
func (r *PlayerSeasonRecord) Equal(o *PlayerSeasonRecord) bool {
	if r.Player != o.Player || r.Team != o.Team || r.Season != o.Season ||
		r.Innings != o.Innings || r.Age != o.Age {
		return false
	}
	for i := 0; i < metric.Count; i++ {
		if !floatPtrEqual(r.Raw[i], o.Raw[i]) || !floatPtrEqual(r.Percentiles[i], o.Percentiles[i]) {
			return false
		}
	}
	return floatPtrEqual(r.DisagreementIndex, o.DisagreementIndex)
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Float returns a pointer to v. Convenience for building records in tests
// and in the fixture generator.
func Float(v float64) *float64 { return &v }
