package sampler

import "log/slog"

// Config configures a Sampler.
type Config struct {
	// Seed seeds the random source. Negative means seed from the runtime.
	Seed int64

	// MaxZeroTruncTries is the number of redraws a zero-truncated sampler
	// makes before giving up and returning the last draw.
	MaxZeroTruncTries int

	// MaxCDFSteps bounds the CDF inversion walk of the count samplers.
	MaxCDFSteps int

	// Logger receives degraded-draw warnings. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns the default sampler configuration.
func DefaultConfig() Config {
	return Config{
		Seed:              -1,
		MaxZeroTruncTries: 10000,
		MaxCDFSteps:       1_000_000,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.MaxZeroTruncTries <= 0 {
		c.MaxZeroTruncTries = d.MaxZeroTruncTries
	}
	if c.MaxCDFSteps <= 0 {
		c.MaxCDFSteps = d.MaxCDFSteps
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}
