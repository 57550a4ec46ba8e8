package dataset

import "github.com/adarshsaranathan/defensive-metrics/pkg/logger"

// Option applies a configuration option to the Loader.
type Option func(*Loader)

// WithLogger sets the loader's logger.
func WithLogger(l logger.Logger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.logger = l
		}
	}
}
