package sampler

import (
	"math"

	"github.com/born-ml/distrib/internal/compois"
)

// Compois2 draws from the Conway-Maxwell-Poisson distribution in its mean
// parameterization by CDF inversion from zero.
// Returns NaN for non-positive or NaN parameters.
func (s *Sampler) Compois2(mean, nu float64) float64 {
	if !(mean > 0) || !(nu > 0) {
		return math.NaN()
	}
	loglambda, logZ := compois.Params(mean, nu)
	if math.IsNaN(loglambda) || math.IsNaN(logZ) {
		return math.NaN()
	}

	u := s.unif()
	y := 0.0
	cdf := math.Exp(compois.LogPMF(0, loglambda, logZ, nu))
	for u > cdf {
		if y >= float64(s.cfg.MaxCDFSteps) {
			s.cdfCapped("compois", y, cdf)
			return y
		}
		y++
		cdf += math.Exp(compois.LogPMF(y, loglambda, logZ, nu))
	}
	return y
}
