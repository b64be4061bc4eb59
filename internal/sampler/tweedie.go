package sampler

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Tweedie draws from the Tweedie compound Poisson-Gamma distribution with
// mean mu, dispersion phi and power 1 < p < 2.
//
// N ~ Poisson(mu^(2-p) / (phi(2-p))) gamma variates with shape (2-p)/(p-1)
// and scale phi(p-1)mu^(p-1) are summed. N = 0 gives exactly 0.
func (s *Sampler) Tweedie(mu, phi, p float64) (float64, error) {
	switch {
	case !(mu > 0):
		return math.NaN(), fmt.Errorf("rtweedie: non-positive mu %v: %w", mu, ErrDomain)
	case !(phi > 0):
		return math.NaN(), fmt.Errorf("rtweedie: non-positive phi %v: %w", phi, ErrDomain)
	case !(p > 1 && p < 2):
		return math.NaN(), fmt.Errorf("rtweedie: power %v outside (1, 2): %w", p, ErrDomain)
	}

	lambda := math.Pow(mu, 2-p) / (phi * (2 - p))
	alpha := (2 - p) / (1 - p)
	gam := phi * (p - 1) * math.Pow(mu, p-1)

	n := int(s.poisson(lambda))
	return s.gammaSum(n, -alpha, gam), nil
}

// gammaSum returns the sum of n Gamma(shape, scale) draws.
func (s *Sampler) gammaSum(n int, shape, scale float64) float64 {
	if n == 0 {
		return 0
	}
	g := distuv.Gamma{Alpha: shape, Beta: 1 / scale, Src: s.src}
	var sum float64
	for range n {
		sum += g.Rand()
	}
	return sum
}
