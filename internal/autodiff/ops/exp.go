package ops

import "github.com/born-ml/distrib/internal/tensor"

// ExpOp represents y = exp(x). The backward rule reuses y, since
// d(exp(x))/dx = exp(x).
type ExpOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewExpOp creates a new ExpOp.
func NewExpOp(input, output *tensor.RawTensor) *ExpOp {
	return &ExpOp{
		input:  input,
		output: output,
	}
}

// Backward computes grad_x = grad_y * y.
func (op *ExpOp) Backward(outputGrad *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	y := op.output.Data()
	return []*tensor.RawTensor{mapGrad(op.input, outputGrad, func(i int) float64 { return y[i] })}
}

// Inputs returns the input tensor [x].
func (op *ExpOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor exp(x).
func (op *ExpOp) Output() *tensor.RawTensor {
	return op.output
}
