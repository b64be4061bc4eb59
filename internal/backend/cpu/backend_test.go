package cpu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/distrib/internal/atomic"
	"github.com/born-ml/distrib/internal/special"
	"github.com/born-ml/distrib/internal/tensor"
)

func TestCPUBackend_Name(t *testing.T) {
	assert.Equal(t, "CPU", New().Name())
	assert.Same(t, atomic.Default(), New().Atomics())
}

func TestCPUBackend_Binary(t *testing.T) {
	be := New()
	a := tensor.Vector(1, 2, 3)
	b := tensor.Vector(4, 5, 6)

	assert.Equal(t, []float64{5, 7, 9}, be.Add(a, b).Data())
	assert.Equal(t, []float64{-3, -3, -3}, be.Sub(a, b).Data())
	assert.Equal(t, []float64{4, 10, 18}, be.Mul(a, b).Data())
	assert.Equal(t, []float64{0.25, 0.4, 0.5}, be.Div(a, b).Data())
}

func TestCPUBackend_BroadcastScalar(t *testing.T) {
	be := New()
	v := tensor.Vector(1, 2, 3)
	s := tensor.Scalar(2)

	assert.Equal(t, []float64{3, 4, 5}, be.Add(v, s).Data())
	assert.Equal(t, []float64{1, 0, -1}, be.Sub(s, v).Data())
	assert.Equal(t, tensor.Shape{3}, be.Mul(s, v).Shape())
	assert.Equal(t, tensor.Shape{}, be.Mul(s, s).Shape())
}

func TestCPUBackend_ShapeMismatchPanics(t *testing.T) {
	be := New()
	assert.Panics(t, func() { be.Add(tensor.Vector(1, 2), tensor.Vector(1, 2, 3)) })
}

func TestCPUBackend_Math(t *testing.T) {
	be := New()
	x := tensor.Vector(0.5, 1, 4)

	ex := be.Exp(x).Data()
	lg := be.Lgamma(x).Data()
	for i, v := range x.Data() {
		assert.InDelta(t, math.Exp(v), ex[i], 1e-15)
		assert.InDelta(t, special.Lgamma(v), lg[i], 1e-15)
	}
	assert.InDelta(t, math.Log(6), be.Lgamma(tensor.Scalar(4)).Item(), 1e-14)

	logs := be.Log(tensor.Vector(1, 0, -1)).Data()
	assert.Equal(t, 0.0, logs[0])
	assert.True(t, math.IsInf(logs[1], -1))
	assert.True(t, math.IsNaN(logs[2]))
}

func TestCPUBackend_Scalar(t *testing.T) {
	be := New()
	x := tensor.Vector(1, -2)
	assert.Equal(t, []float64{3, -6}, be.MulScalar(x, 3).Data())
	assert.Equal(t, []float64{1.5, -1.5}, be.AddScalar(x, 0.5).Data())
	// inputs are not modified
	assert.Equal(t, []float64{1, -2}, x.Data())
}

func TestCPUBackend_Atomic(t *testing.T) {
	be := New()
	x := tensor.Vector(-2, 0, 3)

	y := be.Atomic("logit_pnorm", x)
	for i, v := range x.Data() {
		assert.InDelta(t, atomic.LogitPnorm(v), y.Data()[i], 1e-15)
	}

	assert.PanicsWithValue(t, `unknown atomic function: "nope"`, func() {
		be.Atomic("nope", x)
	})
}

type negFunc struct{}

func (negFunc) Name() string { return "neg" }

func (negFunc) Forward(tx []float64) []float64 { return []float64{-tx[0]} }

func (negFunc) Reverse(_, _, py []float64) []float64 { return []float64{-py[0]} }

func TestCPUBackend_CustomRegistry(t *testing.T) {
	reg := atomic.NewRegistry()
	reg.Register(negFunc{})
	be := NewWithRegistry(reg)

	require.Equal(t, []float64{-1, 2}, be.Atomic("neg", tensor.Vector(1, -2)).Data())
	_, ok := atomic.Default().Get("neg")
	assert.False(t, ok)
}
