package fit

import (
	"fmt"
	"math"

	"github.com/born-ml/distrib/internal/density"
	"github.com/born-ml/distrib/internal/tensor"
)

// BetaBinom fits a beta-binomial distribution to successes y out of n
// trials (element-wise). Params are [a, b].
func BetaBinom(y, n []float64, cfg Config) (Result, error) {
	if err := checkCounts(y); err != nil {
		return Result{}, fmt.Errorf("betabinom: %w", err)
	}
	if len(n) != len(y) {
		return Result{}, fmt.Errorf("betabinom: len(y)=%d, len(n)=%d: %w", len(y), len(n), ErrInvalidData)
	}
	var sy, sn float64
	for i := range y {
		if n[i] != math.Trunc(n[i]) || math.IsInf(n[i], 0) {
			return Result{}, fmt.Errorf("betabinom: n[%d]=%g is not an integer: %w", i, n[i], ErrInvalidData)
		}
		if !(n[i] >= y[i]) {
			return Result{}, fmt.Errorf("betabinom: y[%d]=%g exceeds n=%g: %w", i, y[i], n[i], ErrInvalidData)
		}
		sy += y[i]
		sn += n[i]
	}
	if sn == 0 {
		return Result{}, fmt.Errorf("betabinom: every trial size is zero: %w", ErrInvalidData)
	}
	cfg = cfg.withDefaults()
	if err := cfg.check(); err != nil {
		return Result{}, fmt.Errorf("betabinom: %w", err)
	}

	obsY, obsN := tensor.Vector(y...), tensor.Vector(n...)
	ll := func(be tensor.Backend, w []*tensor.RawTensor) *tensor.RawTensor {
		return density.BetaBinomial(be, obsY, be.Exp(w[0]), be.Exp(w[1]), obsN, true)
	}

	// Start from the pooled proportion with a + b = 2.
	p := math.Min(math.Max(sy/sn, 0.05), 0.95)
	init := []float64{math.Log(2 * p), math.Log(2 * (1 - p))}

	w, loss, iters, conv := minimize(ll, init, len(y), cfg)
	return Result{
		Params:     []float64{math.Exp(w[0]), math.Exp(w[1])},
		LogLik:     -loss * float64(len(y)),
		Iterations: iters,
		Converged:  conv,
	}, nil
}
