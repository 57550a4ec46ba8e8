package api

import "errors"

var (
	// ErrMissingPlayer indicates the profile endpoint was called without a
	// player query parameter.
	ErrMissingPlayer = errors.New("missing required query parameter: player")

	// ErrMissingMetric indicates the leaderboard endpoint was called without
	// a metric query parameter.
	ErrMissingMetric = errors.New("missing required query parameter: metric")

	// ErrInvalidLimit indicates the leaderboard limit was not an integer or
	// fell outside the configured bounds.
	ErrInvalidLimit = errors.New("invalid limit")
)
