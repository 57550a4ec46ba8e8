package metric

import "errors"

// Sentinel kinds for metric registry errors.
var (
	ErrUnknownMetric = errors.New("unknown metric")
)
