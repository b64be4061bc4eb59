package compois

import (
	"math"

	"github.com/born-ml/distrib/internal/tinyad"
)

const (
	maxNewtonIter = 100
	newtonTol     = 1e-12
	maxNewtonStep = 5.0
)

// CalcLogLambda returns the log rate whose distribution has mean exp(logmean)
// for dispersion nu.
//
// Solves log E[X](log λ) = logmean by Newton's method. The derivative of
// log E[X] with respect to log λ is Var(X)/E[X], and both moments come from
// one evaluation of CalcLogZ.
func CalcLogLambda(logmean, nu float64) float64 {
	if !(nu > 0) || math.IsNaN(logmean) || math.IsInf(logmean, 0) {
		return math.NaN()
	}

	mean := math.Exp(logmean)
	loglambda := nu * logmean
	if start := mean + (nu-1)/(2*nu); start > 0 {
		// Asymptotic mean ≈ λ^(1/ν) − (ν−1)/(2ν).
		loglambda = nu * math.Log(start)
	}

	for range maxNewtonIter {
		z := CalcLogZ(tinyad.Seed(loglambda), nu)
		m, v := z.D1, z.D2
		if !(m > 0) || !(v > 0) {
			break
		}
		step := (math.Log(m) - logmean) * m / v
		step = math.Max(-maxNewtonStep, math.Min(maxNewtonStep, step))
		loglambda -= step
		if math.Abs(step) < newtonTol*(1+math.Abs(loglambda)) {
			break
		}
	}
	return loglambda
}
