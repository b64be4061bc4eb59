package fit

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/born-ml/distrib/internal/autodiff"
	"github.com/born-ml/distrib/internal/backend/cpu"
	"github.com/born-ml/distrib/internal/optim"
	"github.com/born-ml/distrib/internal/tensor"
)

// Config controls the optimizer loop.
type Config struct {
	MaxIter int     // Iteration cap (default 3000)
	LR      float64 // Initial learning rate (default 0.05)
	Tol     float64 // Stop when every |gradient| of the mean loss is below Tol (default 1e-7)
	MinLR   float64 // Stop when halving pushes the learning rate below MinLR (default 1e-8)

	// Optimizer is "adam" (default) or "sgd" (momentum 0.9).
	Optimizer string

	Logger *slog.Logger
}

// DefaultConfig returns the default fitting configuration.
func DefaultConfig() Config {
	return Config{
		MaxIter:   3000,
		LR:        0.05,
		Tol:       1e-7,
		MinLR:     1e-8,
		Optimizer: "adam",
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.MaxIter <= 0 {
		c.MaxIter = d.MaxIter
	}
	if c.LR <= 0 {
		c.LR = d.LR
	}
	if c.Tol <= 0 {
		c.Tol = d.Tol
	}
	if c.MinLR <= 0 {
		c.MinLR = d.MinLR
	}
	if c.Optimizer == "" {
		c.Optimizer = d.Optimizer
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}

func (c Config) check() error {
	switch c.Optimizer {
	case "adam", "sgd":
		return nil
	}
	return fmt.Errorf("%q: %w", c.Optimizer, ErrUnknownOptimizer)
}

func newOptimizer(cfg Config, params []*tensor.RawTensor) optim.Optimizer {
	if cfg.Optimizer == "sgd" {
		return optim.NewSGD(params, optim.SGDConfig{LR: cfg.LR, Momentum: 0.9}, cpu.New())
	}
	return optim.NewAdam(params, optim.AdamConfig{LR: cfg.LR})
}

// Result reports a fit.
type Result struct {
	// Params holds the estimates on the natural scale, in the order
	// documented by each Fit function.
	Params []float64

	// LogLik is the total log-likelihood at Params.
	LogLik float64

	Iterations int
	Converged  bool
}

// logLikFunc returns the per-observation log-likelihood for working
// parameters w.
type logLikFunc func(be tensor.Backend, w []*tensor.RawTensor) *tensor.RawTensor

// minimize runs the configured optimizer on the negative mean log-likelihood, starting from
// init working parameters. It returns the working parameters at the best
// loss seen.
func minimize(ll logLikFunc, init []float64, n int, cfg Config) (w []float64, loss float64, iters int, converged bool) {
	be := autodiff.New(cpu.New())

	params := make([]*tensor.RawTensor, len(init))
	for i, v := range init {
		params[i] = tensor.Scalar(v)
	}
	opt := newOptimizer(cfg, params)

	best := math.Inf(1)
	bestW := append([]float64(nil), init...)
	prev := math.Inf(1)
	scale := -1 / float64(n)

	for iters = 1; iters <= cfg.MaxIter; iters++ {
		be.Tape().Clear()
		be.Tape().StartRecording()
		out := be.MulScalar(ll(be, params), scale)
		grads := autodiff.Backward(out, be)
		be.Tape().StopRecording()

		cur := sum(out.Data())
		if math.IsNaN(cur) {
			cfg.Logger.Warn("fit: non-finite loss", "iter", iters)
			break
		}
		if cur < best {
			best = cur
			for i, p := range params {
				bestW[i] = p.Item()
			}
		}

		if maxAbsGrad(grads, params) < cfg.Tol {
			converged = true
			break
		}
		if cur > prev {
			opt.SetLR(opt.GetLR() / 2)
			if opt.GetLR() < cfg.MinLR {
				converged = true
				break
			}
		}
		prev = cur

		opt.Step(grads)
	}
	if iters > cfg.MaxIter {
		iters = cfg.MaxIter
	}

	cfg.Logger.Debug("fit: done", "iterations", iters, "loss", best, "converged", converged)
	return bestW, best, iters, converged
}

func sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}

func maxAbsGrad(grads map[*tensor.RawTensor]*tensor.RawTensor, params []*tensor.RawTensor) float64 {
	var m float64
	for _, p := range params {
		if g, ok := grads[p]; ok {
			m = math.Max(m, math.Abs(g.Item()))
		}
	}
	return m
}

// logistic returns 1 / (1 + exp(-x)) on the backend.
func logistic(be tensor.Backend, x *tensor.RawTensor) *tensor.RawTensor {
	return be.Div(tensor.Scalar(1), be.AddScalar(be.Exp(be.MulScalar(x, -1)), 1))
}

func checkCounts(y []float64) error {
	if len(y) == 0 {
		return ErrNoData
	}
	for _, v := range y {
		if !(v >= 0) || v != math.Trunc(v) {
			return ErrInvalidData
		}
	}
	return nil
}
