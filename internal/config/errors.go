package config

import "errors"

// Sentinel kinds for configuration errors.
var (
	ErrInvalid = errors.New("invalid configuration")
)
