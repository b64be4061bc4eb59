package fit

import (
	"fmt"
	"math"

	"github.com/born-ml/distrib/internal/density"
	"github.com/born-ml/distrib/internal/tensor"
)

// GenPois fits a generalized Poisson distribution to counts y.
// Params are [theta, lambda] with lambda restricted to (0, 1).
func GenPois(y []float64, cfg Config) (Result, error) {
	if err := checkCounts(y); err != nil {
		return Result{}, fmt.Errorf("genpois: %w", err)
	}
	cfg = cfg.withDefaults()
	if err := cfg.check(); err != nil {
		return Result{}, fmt.Errorf("genpois: %w", err)
	}

	obs := tensor.Vector(y...)
	ll := func(be tensor.Backend, w []*tensor.RawTensor) *tensor.RawTensor {
		return density.GenPois(be, obs, be.Exp(w[0]), logistic(be, w[1]), true)
	}

	// Moment start: mean = θ/(1-λ), var = θ/(1-λ)³.
	mean, variance := meanVar(y)
	lambda := 0.5
	if mean > 0 && variance > mean {
		lambda = math.Min(0.95, 1-math.Sqrt(mean/variance))
	}
	theta := math.Max(mean*(1-lambda), 1e-3)
	init := []float64{math.Log(theta), math.Log(lambda / (1 - lambda))}

	w, loss, iters, conv := minimize(ll, init, len(y), cfg)
	return Result{
		Params:     []float64{math.Exp(w[0]), 1 / (1 + math.Exp(-w[1]))},
		LogLik:     -loss * float64(len(y)),
		Iterations: iters,
		Converged:  conv,
	}, nil
}

func meanVar(y []float64) (mean, variance float64) {
	for _, v := range y {
		mean += v
	}
	mean /= float64(len(y))
	for _, v := range y {
		variance += (v - mean) * (v - mean)
	}
	if len(y) > 1 {
		variance /= float64(len(y) - 1)
	}
	return mean, variance
}
