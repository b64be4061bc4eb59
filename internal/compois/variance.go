package compois

import (
	"fmt"
	"math"

	"github.com/born-ml/distrib/internal/parallel"
	"github.com/born-ml/distrib/internal/special"
	"github.com/born-ml/distrib/internal/tinyad"
)

// CalcVar returns the variance of the Conway-Maxwell-Poisson distribution
// with the given mean and dispersion, Var(X) = d²(log Z)/d(log λ)².
// Returns NaN unless mean > 0 and nu > 0.
func CalcVar(mean, nu float64) float64 {
	if !(mean > 0) || !(nu > 0) {
		return math.NaN()
	}
	loglambda := CalcLogLambda(math.Log(mean), nu)
	return CalcLogZ(tinyad.Seed(loglambda), nu).D2
}

// CalcVarVec evaluates CalcVar element-wise. Elements are independent and
// are spread over workers according to cfg.
func CalcVarVec(mean, nu []float64, cfg parallel.Config) ([]float64, error) {
	if len(mean) != len(nu) {
		return nil, fmt.Errorf("compois: len(mean)=%d, len(nu)=%d: %w", len(mean), len(nu), ErrLengthMismatch)
	}

	out := make([]float64, len(mean))
	parallel.For(len(mean), func(i int) {
		out[i] = CalcVar(mean[i], nu[i])
	}, cfg)
	return out, nil
}

// Params returns log λ and log Z for the given mean and dispersion.
func Params(mean, nu float64) (loglambda, logZ float64) {
	loglambda = CalcLogLambda(math.Log(mean), nu)
	logZ = CalcLogZ(tinyad.Constant(loglambda), nu).V
	return loglambda, logZ
}

// LogPMF returns log P(X = x) given log λ and log Z from Params.
func LogPMF(x, loglambda, logZ, nu float64) float64 {
	return x*loglambda - nu*special.Lgamma(x+1) - logZ
}
