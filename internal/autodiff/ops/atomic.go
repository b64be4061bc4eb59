package ops

import (
	"github.com/born-ml/distrib/internal/atomic"
	"github.com/born-ml/distrib/internal/tensor"
)

// AtomicOp records one element-wise application of an atomic function.
//
// The forward output is kept on the op and handed to Function.Reverse, so the
// derivative rule sees the cached y = f(x) and never differentiates through
// the special functions inside f.
type AtomicOp struct {
	fn     atomic.Function
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewAtomicOp creates a new AtomicOp.
func NewAtomicOp(fn atomic.Function, input, output *tensor.RawTensor) *AtomicOp {
	return &AtomicOp{
		fn:     fn,
		input:  input,
		output: output,
	}
}

// Function returns the atomic function applied by this op.
func (op *AtomicOp) Function() atomic.Function {
	return op.fn
}

// Inputs returns the input tensors.
func (op *AtomicOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor.
func (op *AtomicOp) Output() *tensor.RawTensor {
	return op.output
}

// Backward runs the hand-written reverse rule element by element.
func (op *AtomicOp) Backward(outputGrad *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	inputGrad, err := tensor.NewRaw(op.input.Shape())
	if err != nil {
		panic(err)
	}

	tx := make([]float64, 1)
	ty := make([]float64, 1)
	py := make([]float64, 1)
	xs, ys, gs := op.input.Data(), op.output.Data(), outputGrad.Data()
	gradData := inputGrad.Data()
	for i := range gradData {
		tx[0], ty[0], py[0] = xs[i], ys[i], gs[i]
		gradData[i] = op.fn.Reverse(tx, ty, py)[0]
	}

	return []*tensor.RawTensor{inputGrad}
}
