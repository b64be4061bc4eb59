package autodiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/distrib/internal/atomic"
	"github.com/born-ml/distrib/internal/autodiff"
	"github.com/born-ml/distrib/internal/backend/cpu"
	"github.com/born-ml/distrib/internal/tensor"
)

// TestAutodiffBackend_Name tests the Name method.
func TestAutodiffBackend_Name(t *testing.T) {
	backend := autodiff.New(cpu.New())
	assert.Equal(t, "Autodiff(CPU)", backend.Name())
}

// TestTape_Recording tests tape recording on/off.
func TestTape_Recording(t *testing.T) {
	backend := autodiff.New(cpu.New())
	tape := backend.Tape()

	assert.False(t, tape.IsRecording(), "tape should not be recording initially")

	tape.StartRecording()
	assert.True(t, tape.IsRecording())

	tape.StopRecording()
	assert.False(t, tape.IsRecording())
}

// TestTape_NotRecording tests that ops run but are not recorded when stopped.
func TestTape_NotRecording(t *testing.T) {
	backend := autodiff.New(cpu.New())

	out := backend.Add(tensor.Vector(1, 2), tensor.Vector(3, 4))
	assert.Equal(t, []float64{4, 6}, out.Data())
	assert.Equal(t, 0, backend.Tape().NumOps())
}

// TestTape_Clear tests tape clearing.
func TestTape_Clear(t *testing.T) {
	backend := autodiff.New(cpu.New())
	tape := backend.Tape()
	tape.StartRecording()

	backend.Add(tensor.Vector(1, 2), tensor.Vector(3, 4))
	require.Equal(t, 1, tape.NumOps())

	tape.Clear()
	assert.Equal(t, 0, tape.NumOps())
	assert.True(t, tape.IsRecording(), "Clear preserves recording state")
}

// TestBackward_NoOps tests the guard against an empty tape.
func TestBackward_NoOps(t *testing.T) {
	backend := autodiff.New(cpu.New())
	assert.Panics(t, func() {
		autodiff.Backward(tensor.Scalar(1), backend)
	})
}

// TestBackward_Polynomial tests f(x) = x³ - 2x² + x, f'(2) = 5.
func TestBackward_Polynomial(t *testing.T) {
	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()

	x := tensor.Scalar(2)
	x2 := backend.Mul(x, x)
	x3 := backend.Mul(x2, x)
	twoX2 := backend.MulScalar(x2, 2)
	y := backend.Add(backend.Sub(x3, twoX2), x)

	grads := autodiff.Backward(y, backend)
	assert.InDelta(t, 2.0, y.Item(), 1e-12)
	assert.InDelta(t, 5.0, grads[x].Item(), 1e-12)
}

// TestBackward_Broadcast tests gradient reduction for a one-element operand.
func TestBackward_Broadcast(t *testing.T) {
	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()

	a := tensor.Scalar(3)
	b := tensor.Vector(1, 2, 4)
	y := backend.Mul(a, b)

	grads := autodiff.Backward(y, backend)
	assert.Equal(t, []float64{3, 6, 12}, y.Data())
	assert.InDelta(t, 7.0, grads[a].Item(), 1e-12, "d sum(a*b)/da = sum(b)")
	assert.Equal(t, []float64{3, 3, 3}, grads[b].Data())
}

// TestBackward_UnusedInput tests that unrelated tensors get no gradient.
func TestBackward_UnusedInput(t *testing.T) {
	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()

	x := tensor.Scalar(1)
	z := tensor.Scalar(5)
	other := backend.Exp(z)
	y := backend.AddScalar(x, 1)
	_ = other

	grads := autodiff.Backward(y, backend)
	assert.InDelta(t, 1.0, grads[x].Item(), 1e-12)
	_, ok := grads[z]
	assert.False(t, ok)
}

// TestBackward_ScalarOps tests AddScalar and MulScalar.
func TestBackward_ScalarOps(t *testing.T) {
	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()

	x := tensor.Vector(1, 2)
	y := backend.MulScalar(backend.AddScalar(x, 3), -2)

	grads := autodiff.Backward(y, backend)
	assert.Equal(t, []float64{-8, -10}, y.Data())
	assert.Equal(t, []float64{-2, -2}, grads[x].Data())
}

// TestAtomic_RecordsSingleOp tests that an atomic function is one tape node.
func TestAtomic_RecordsSingleOp(t *testing.T) {
	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()

	backend.Atomic("logit_pnorm", tensor.Vector(-1, 0, 1))
	assert.Equal(t, 1, backend.Tape().NumOps())
}

// TestAtomic_Unknown tests the panic for an unregistered atomic function.
func TestAtomic_Unknown(t *testing.T) {
	backend := autodiff.New(cpu.New())
	assert.Panics(t, func() {
		backend.Atomic("no_such_function", tensor.Scalar(0))
	})
}

type cubeFunc struct{}

func (cubeFunc) Name() string { return "cube" }

func (cubeFunc) Forward(tx []float64) []float64 {
	return []float64{tx[0] * tx[0] * tx[0]}
}

func (cubeFunc) Reverse(tx, ty, py []float64) []float64 {
	// 3x² = 3y/x, exercising the cached output.
	return []float64{3 * ty[0] / tx[0] * py[0]}
}

// TestAtomic_CustomRegistry tests that the autodiff backend resolves atomic
// functions in the wrapped backend's registry.
func TestAtomic_CustomRegistry(t *testing.T) {
	reg := atomic.NewRegistry()
	reg.Register(cubeFunc{})
	backend := autodiff.New(cpu.NewWithRegistry(reg))
	assert.Same(t, reg, backend.Atomics())

	backend.Tape().StartRecording()
	x := tensor.Vector(2, -1)
	y := backend.Atomic("cube", x)

	grads := autodiff.Backward(y, backend)
	assert.Equal(t, []float64{8, -1}, y.Data())
	assert.InDeltaSlice(t, []float64{12, 3}, grads[x].Data(), 1e-12)
}

// TestAtomic_ChainRule tests an atomic function composed with ordinary ops:
// f(x) = 2 * cube(x + 1), f'(1) = 6 * (x+1)² = 24.
func TestAtomic_ChainRule(t *testing.T) {
	reg := atomic.NewRegistry()
	reg.Register(cubeFunc{})
	backend := autodiff.New(cpu.NewWithRegistry(reg))
	backend.Tape().StartRecording()

	x := tensor.Scalar(1)
	y := backend.MulScalar(backend.Atomic("cube", backend.AddScalar(x, 1)), 2)

	grads := autodiff.Backward(y, backend)
	assert.InDelta(t, 16.0, y.Item(), 1e-12)
	assert.InDelta(t, 24.0, grads[x].Item(), 1e-12)
}
