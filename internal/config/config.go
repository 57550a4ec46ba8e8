// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load(ctx) layers defaults -> optional file -> env.
// - External errors must be wrapped via this package's error helpers.
package config

import "path/filepath"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataDir is the directory holding the season CSV files.
	DataDir string `koanf:"data_dir"`

	// Seasons maps season labels to CSV file names inside DataDir.
	Seasons map[string]string `koanf:"seasons"`

	// MinTopN and MaxTopN bound the leaderboard limit parameter;
	// DefaultTopN applies when the request omits it.
	MinTopN     int `koanf:"min_top_n"`
	MaxTopN     int `koanf:"max_top_n"`
	DefaultTopN int `koanf:"default_top_n"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel: "info",
		Addr:     ":9080",
		DataDir:  "data",
		Seasons: map[string]string{
			"2025": "defensive_metrics_25.csv",
			"2024": "defensive_metrics_24.csv",
		},
		MinTopN:     5,
		MaxTopN:     100,
		DefaultTopN: 20,
	}
}

// SeasonPaths resolves the season registry to full file paths.
func (c *Config) SeasonPaths() map[string]string {
	out := make(map[string]string, len(c.Seasons))
	for label, name := range c.Seasons {
		out[label] = filepath.Join(c.DataDir, name)
	}
	return out
}
