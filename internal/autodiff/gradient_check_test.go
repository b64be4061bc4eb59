package autodiff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/distrib/internal/autodiff"
	"github.com/born-ml/distrib/internal/backend/cpu"
	"github.com/born-ml/distrib/internal/tensor"
)

// numericalGradient computes the gradient using centered finite differences.
func numericalGradient(f func(float64) float64, x, epsilon float64) float64 {
	return (f(x+epsilon) - f(x-epsilon)) / (2 * epsilon)
}

// unaryGraph builds y = build(backend, x) on a fresh tape and returns the
// value and autodiff gradient at every point of xs.
func unaryGraph(xs []float64, build func(b tensor.Backend, x *tensor.RawTensor) *tensor.RawTensor) (values, grads []float64) {
	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()

	x := tensor.Vector(xs...)
	y := build(backend, x)
	g := autodiff.Backward(y, backend)
	return y.Data(), g[x].Data()
}

// evalPlain evaluates build at a single point without a tape.
func evalPlain(build func(b tensor.Backend, x *tensor.RawTensor) *tensor.RawTensor) func(float64) float64 {
	backend := cpu.New()
	return func(v float64) float64 {
		return build(backend, tensor.Scalar(v)).Item()
	}
}

func checkGradients(t *testing.T, name string, xs []float64, tol float64, build func(b tensor.Backend, x *tensor.RawTensor) *tensor.RawTensor) {
	t.Helper()
	_, grads := unaryGraph(xs, build)
	f := evalPlain(build)
	for i, x := range xs {
		fd := numericalGradient(f, x, 1e-5)
		relErr := math.Abs(grads[i]-fd) / math.Max(math.Abs(fd), 1e-12)
		assert.Less(t, relErr, tol, "%s: x=%v autodiff=%v numerical=%v", name, x, grads[i], fd)
	}
}

func atomicGrid() []float64 {
	var xs []float64
	for x := -10.0; x <= 10.0; x += 0.5 {
		xs = append(xs, x)
	}
	return xs
}

// TestNumericalGradient_LogitInvCloglog checks the atomic reverse rule through the tape.
func TestNumericalGradient_LogitInvCloglog(t *testing.T) {
	checkGradients(t, "logit_invcloglog", atomicGrid(), 1e-6, func(b tensor.Backend, x *tensor.RawTensor) *tensor.RawTensor {
		return b.Atomic("logit_invcloglog", x)
	})
}

// TestNumericalGradient_LogitPnorm checks the atomic reverse rule through the tape.
func TestNumericalGradient_LogitPnorm(t *testing.T) {
	checkGradients(t, "logit_pnorm", atomicGrid(), 1e-6, func(b tensor.Backend, x *tensor.RawTensor) *tensor.RawTensor {
		return b.Atomic("logit_pnorm", x)
	})
}

// TestNumericalGradient_Lgamma checks the digamma backward rule.
func TestNumericalGradient_Lgamma(t *testing.T) {
	checkGradients(t, "lgamma", []float64{0.2, 0.5, 1, 3.7, 25, 400}, 1e-6, func(b tensor.Backend, x *tensor.RawTensor) *tensor.RawTensor {
		return b.Lgamma(x)
	})
}

// TestNumericalGradient_Composite checks f(x) = log(x) * exp(-x) / (x + 2).
func TestNumericalGradient_Composite(t *testing.T) {
	checkGradients(t, "composite", []float64{0.3, 1, 2.5, 6}, 1e-6, func(b tensor.Backend, x *tensor.RawTensor) *tensor.RawTensor {
		num := b.Mul(b.Log(x), b.Exp(b.MulScalar(x, -1)))
		return b.Div(num, b.AddScalar(x, 2))
	})
}

// TestNumericalGradient_AtomicInsideGraph checks an atomic node between ordinary ops:
// f(x) = exp(logit_pnorm(x/2)) - x.
func TestNumericalGradient_AtomicInsideGraph(t *testing.T) {
	checkGradients(t, "atomic-composite", []float64{-3, -0.5, 0.1, 2}, 1e-6, func(b tensor.Backend, x *tensor.RawTensor) *tensor.RawTensor {
		inner := b.Atomic("logit_pnorm", b.MulScalar(x, 0.5))
		return b.Sub(b.Exp(inner), x)
	})
}
