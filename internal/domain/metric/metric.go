// Package metric defines the fixed registry of defensive metrics.
//
// Each metric pairs one raw CSV column with one percentile CSV column and a
// display label. The pairing is a single static table keyed by Metric, never
// two positional lists, so a reordered column cannot silently misalign a raw
// value with the wrong percentile.
package metric

import "fmt"

// Metric identifies one of the six defensive metrics tracked per player.
type Metric int

// Canonical metric order. Best/worst tie-breaks and chart ordering depend on
// this order being stable.
const (
	OAA Metric = iota
	DRS
	TotalZone
	DRP
	FieldingPct
	FRV

	// Count is the number of defined metrics.
	Count int = iota
)

// Spec describes one metric: its API slug, the CSV columns carrying its raw
// and percentile values, and the labels used for display.
type Spec struct {
	ID               Metric
	Slug             string
	RawColumn        string
	PercentileColumn string
	Label            string
	PercentileLabel  string
}

// registry is the single source of truth for column/label pairing. Indexed
// by Metric; order matches the canonical constants above.
var registry = [Count]Spec{
	{OAA, "oaa", "outs_above_average", "outs_above_average_percentile", "OAA", "OAA (pct)"},
	{DRS, "drs", "Rdrs", "Rdrs_percentile", "DRS", "DRS (pct)"},
	{TotalZone, "rtot", "Rtot", "Rtot_percentile", "Total Zone", "Total Zone (pct)"},
	{DRP, "drp", "DRP", "DRP_percentile", "DRP", "DRP (pct)"},
	{FieldingPct, "fldpct", "Fld%", "Fld%_percentile", "Fielding %", "Fielding % (pct)"},
	{FRV, "frv", "FRV", "FRV_percentile", "FRV", "FRV (pct)"},
}

// Canonical returns all metrics in canonical order.
func Canonical() []Metric {
	out := make([]Metric, Count)
	for i := range out {
		out[i] = Metric(i)
	}
	return out
}

// Lookup returns the full spec for m.
func Lookup(m Metric) Spec {
	if !m.Valid() {
		panic(fmt.Sprintf("metric: lookup of invalid metric %d", int(m)))
	}
	return registry[m]
}

// Parse resolves an API slug to a Metric.
func Parse(slug string) (Metric, error) {
	for _, s := range registry {
		if s.Slug == slug {
			return s.ID, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, slug)
}

// Valid reports whether m is one of the defined metrics.
func (m Metric) Valid() bool {
	return m >= 0 && int(m) < Count
}

// Slug returns the API identifier for m.
func (m Metric) Slug() string { return Lookup(m).Slug }

// RawColumn returns the CSV column holding the raw value of m.
func (m Metric) RawColumn() string { return Lookup(m).RawColumn }

// PercentileColumn returns the CSV column holding the percentile of m.
func (m Metric) PercentileColumn() string { return Lookup(m).PercentileColumn }

// Label returns the display label of m.
func (m Metric) Label() string { return Lookup(m).Label }

// PercentileLabel returns the display label of m's percentile.
func (m Metric) PercentileLabel() string { return Lookup(m).PercentileLabel }

// String implements fmt.Stringer using the display label.
func (m Metric) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Metric(%d)", int(m))
	}
	return registry[m].Label
}
