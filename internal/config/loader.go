package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if DEFMET_CONFIG is set
//  3. env (prefix DEFMET_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("DEFMET_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: DEFMET_ADDR, DEFMET_DATA_DIR, ...
	// Keys keep their underscores to match the koanf tags on the struct.
	envProvider := env.Provider("DEFMET_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "defmet_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalid)
	case len(c.Seasons) == 0:
		return fmt.Errorf("%w: at least one season must be registered", ErrInvalid)
	case c.MinTopN < 1:
		return fmt.Errorf("%w: min_top_n must be positive", ErrInvalid)
	case c.MaxTopN < c.MinTopN:
		return fmt.Errorf("%w: max_top_n must be >= min_top_n", ErrInvalid)
	case c.DefaultTopN < c.MinTopN || c.DefaultTopN > c.MaxTopN:
		return fmt.Errorf("%w: default_top_n must lie within [min_top_n, max_top_n]", ErrInvalid)
	}
	return nil
}
