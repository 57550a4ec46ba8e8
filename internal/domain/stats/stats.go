// Package stats provides the small numeric aggregates used by the dataset
// layer. Everything here is pure and operates on values the caller has
// already screened for presence; nulls never reach these functions.
package stats

import "math"

// Mean returns the arithmetic mean of values. Returns 0 for an empty slice;
// callers are expected to gate on emptiness first.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// PopulationStdDev returns the population standard deviation (divide by N,
// not N-1) of values. A single value yields 0. An empty slice yields 0; the
// dataset layer keeps the derived column null in that case rather than
// calling in.
func PopulationStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := Mean(values)
	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)))
}
