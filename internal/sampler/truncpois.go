package sampler

import (
	"fmt"
	"math"
)

// TruncPois draws from a Poisson(mu) distribution conditioned on x > k.
//
// Values are drawn as Poisson(mu) + m with m = max(0, ceil(k+1-mu)) and
// accepted with probability ∏_{j<m} (k+1-j)/(x-j), which keeps the expected
// number of trials bounded for any k.
func (s *Sampler) TruncPois(k int, mu float64) (float64, error) {
	if math.IsNaN(mu) || mu <= 0 {
		return math.NaN(), fmt.Errorf("rtruncpois: non-positive mu %v: %w", mu, ErrDomain)
	}
	if k < 0 {
		return math.NaN(), fmt.Errorf("rtruncpois: negative k %d: %w", k, ErrDomain)
	}
	x, _ := s.truncPois(k, mu)
	return x, nil
}

// truncPois also reports the number of trials used.
func (s *Sampler) truncPois(k int, mu float64) (x float64, trials int) {
	kf := float64(k)
	m := math.Max(0, math.Ceil(kf+1-mu))

	for {
		trials++
		x = s.poisson(mu) + m
		if m == 0 {
			if x > kf {
				return x, trials
			}
			continue
		}

		a := 1.0
		u := s.unif()
		for j := 0.0; j < m; j++ {
			a *= (kf + 1 - j) / (x - j)
		}
		if u < a && x > kf {
			return x, trials
		}
	}
}
