package autodiff

import (
	"github.com/born-ml/distrib/internal/tensor"
)

// BackwardCapable is an interface for backends that support backward pass.
// AutodiffBackend implements this interface.
type BackwardCapable interface {
	tensor.Backend
	// GetTape returns the gradient tape for backward computation.
	GetTape() *GradientTape
}

// GetTape returns the gradient tape (implements BackwardCapable interface).
func (b *AutodiffBackend[B]) GetTape() *GradientTape {
	return b.tape
}

// Backward computes gradients of t using the backend's tape.
//
// The output adjoint is seeded with ones, so for a vector t the result is the
// gradient of sum(t). Returns a map from RawTensor to its gradient; tensors
// that do not influence t have no entry.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	backend.Tape().StartRecording()
//	x := tensor.Scalar(1.5)
//	y := backend.Atomic("logit_pnorm", x)
//	grad := autodiff.Backward(y, backend)[x].Item()
func Backward[B BackwardCapable](t *tensor.RawTensor, backend B) map[*tensor.RawTensor]*tensor.RawTensor {
	tape := backend.GetTape()

	if tape.NumOps() == 0 {
		panic("backward: no operations recorded (did you forget to call Tape().StartRecording()?)")
	}

	return tape.Backward(t, tensor.Full(t.Shape(), 1), backend)
}
