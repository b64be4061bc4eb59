package tinyad

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeedAndConstant(t *testing.T) {
	assert.Equal(t, Variable{V: 2, D1: 1}, Seed(2))
	assert.Equal(t, Variable{V: 2}, Constant(2))
}

// f(x) = exp(x) * log(x); d1 = e^x (log x + 1/x); d2 = e^x (log x + 2/x - 1/x²).
func TestProductRule(t *testing.T) {
	x := 2.0
	f := Seed(x).Exp().Mul(Seed(x).Log())
	ex := math.Exp(x)
	assert.InDelta(t, ex*math.Log(x), f.V, 1e-12)
	assert.InDelta(t, ex*(math.Log(x)+1/x), f.D1, 1e-12)
	assert.InDelta(t, ex*(math.Log(x)+2/x-1/(x*x)), f.D2, 1e-12)
}

// f(x) = x / (1 + x²); d1 = (1 - x²)/(1 + x²)²; d2 = 2x(x² - 3)/(1 + x²)³.
func TestQuotientRule(t *testing.T) {
	for _, x := range []float64{-1.5, 0.3, 2} {
		s := Seed(x)
		f := s.Div(s.Mul(s).Shift(1))
		d := 1 + x*x
		assert.InDelta(t, x/d, f.V, 1e-12)
		assert.InDelta(t, (1-x*x)/(d*d), f.D1, 1e-12)
		assert.InDelta(t, 2*x*(x*x-3)/(d*d*d), f.D2, 1e-12)
	}
}

// f(x) = log(exp(2x) + exp(3)); d1 = 2σ; d2 = 4σ(1-σ) with σ = e^{2x}/(e^{2x}+e^3).
func TestLogspaceAdd(t *testing.T) {
	for _, x := range []float64{-2, 1.5, 4, 400} {
		f := Seed(x).Scale(2).LogspaceAdd(Constant(3))
		sigma := 1 / (1 + math.Exp(3-2*x))
		want := math.Max(2*x, 3) + math.Log1p(math.Exp(-math.Abs(2*x-3)))
		assert.InDelta(t, want, f.V, 1e-12, "x=%v", x)
		assert.InDelta(t, 2*sigma, f.D1, 1e-12, "x=%v", x)
		assert.InDelta(t, 4*sigma*(1-sigma), f.D2, 1e-12, "x=%v", x)
	}

	f := Seed(1).LogspaceAdd(Constant(math.Inf(-1)))
	assert.Equal(t, Seed(1), f)
}

func TestSubScaleShift(t *testing.T) {
	f := Seed(3).Scale(4).Sub(Seed(3)).Shift(-1)
	assert.Equal(t, Variable{V: 8, D1: 3}, f)
}

func TestNaN(t *testing.T) {
	n := NaN()
	assert.True(t, math.IsNaN(n.V))
	assert.True(t, math.IsNaN(n.D1))
	assert.True(t, math.IsNaN(n.D2))
}
