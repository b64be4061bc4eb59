package sampler

// TruncatedGenPois draws from the zero-truncated generalized Poisson
// distribution by rejection. See zeroTruncated for the fallback.
func (s *Sampler) TruncatedGenPois(theta, lambda float64) float64 {
	return s.zeroTruncated(func() float64 { return s.GenPois(theta, lambda) })
}

// TruncatedCompois2 draws from the zero-truncated Conway-Maxwell-Poisson
// distribution by rejection. See zeroTruncated for the fallback.
func (s *Sampler) TruncatedCompois2(mean, nu float64) float64 {
	return s.zeroTruncated(func() float64 { return s.Compois2(mean, nu) })
}

// zeroTruncated redraws while the result is below 1, up to
// MaxZeroTruncTries times. If every draw was zero it logs a warning, counts
// a degraded draw and returns the last draw.
func (s *Sampler) zeroTruncated(draw func() float64) float64 {
	ans := draw()
	tries := 0
	for ans < 1 && tries < s.cfg.MaxZeroTruncTries {
		ans = draw()
		tries++
	}
	if ans < 1 {
		s.degraded.Add(1)
		s.cfg.Logger.Warn("zeros in simulation of zero-truncated data",
			"reason", "possibly due to low estimated mean",
			"attempts", tries+1,
		)
	}
	return ans
}
