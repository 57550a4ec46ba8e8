package rank

import "errors"

// Sentinel kinds for ranking errors.
var (
	ErrNoPercentileData = errors.New("no percentile data")
)
