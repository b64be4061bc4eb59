package sampler

import (
	"math/rand/v2"
	"sync/atomic"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler draws random variates.
type Sampler struct {
	cfg      Config
	src      rand.Source
	uniform  distuv.Uniform
	degraded atomic.Int64
}

// New creates a sampler from cfg. Zero-valued limits and a nil logger are
// replaced by their defaults.
//
// Example:
//
//	s := sampler.New(sampler.Config{Seed: 42})
//	y, err := s.TruncPois(3, 0.5)
func New(cfg Config) *Sampler {
	cfg = cfg.withDefaults()

	var src rand.Source
	if cfg.Seed < 0 {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	} else {
		src = rand.NewPCG(uint64(cfg.Seed), 0x9e3779b97f4a7c15)
	}

	return &Sampler{
		cfg:     cfg,
		src:     src,
		uniform: distuv.Uniform{Min: 0, Max: 1, Src: src},
	}
}

// Config returns the effective configuration.
func (s *Sampler) Config() Config {
	return s.cfg
}

// Degraded returns how many draws fell back to a degraded result: a
// zero-truncated draw that stayed at zero, or a CDF walk cut off at
// MaxCDFSteps.
func (s *Sampler) Degraded() int64 {
	return s.degraded.Load()
}

func (s *Sampler) poisson(mu float64) float64 {
	return distuv.Poisson{Lambda: mu, Src: s.src}.Rand()
}

func (s *Sampler) unif() float64 {
	return s.uniform.Rand()
}
