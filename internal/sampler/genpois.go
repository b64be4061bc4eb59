package sampler

import (
	"math"

	"github.com/born-ml/distrib/internal/density"
)

// GenPois draws from the generalized Poisson distribution by CDF inversion.
//
// The walk stops at the end of the support (θ + λ(y+1) ≤ 0 for λ < 0) or
// after MaxCDFSteps steps; either way the last count is returned.
// Returns NaN unless θ > 0 and λ < 1; at λ ≥ 1 the pmf no longer sums to 1.
func (s *Sampler) GenPois(theta, lambda float64) float64 {
	if !(theta > 0) || !(lambda < 1) {
		return math.NaN()
	}

	u := s.unif()
	y := 0.0
	cdf := density.DGenPois(0, theta, lambda, false)
	for u > cdf {
		if theta+lambda*(y+1) <= 0 {
			return y
		}
		if y >= float64(s.cfg.MaxCDFSteps) {
			s.cdfCapped("genpois", y, cdf)
			return y
		}
		y++
		cdf += density.DGenPois(y, theta, lambda, false)
	}
	return y
}

func (s *Sampler) cdfCapped(family string, y, cdf float64) {
	s.degraded.Add(1)
	s.cfg.Logger.Warn("cdf walk stopped at step limit",
		"family", family,
		"steps", int(y),
		"cdf", cdf,
	)
}
