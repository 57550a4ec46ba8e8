package dataset

import "errors"

// Sentinel kinds for dataset errors.
var (
	// ErrUnavailable covers every data-loading failure: a season with no
	// registered file, an unreadable path, or malformed contents. Loader
	// failures abort the season's view; they are surfaced, never defaulted.
	ErrUnavailable = errors.New("season data unavailable")
)
