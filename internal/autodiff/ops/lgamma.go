package ops

import (
	"github.com/born-ml/distrib/internal/special"
	"github.com/born-ml/distrib/internal/tensor"
)

// LgammaOp represents element-wise log-gamma: output = log|Γ(input)|.
//
// Backward:
//
//	∂L/∂input = ∂L/∂output * ψ(input)
//
// where ψ is the digamma function.
type LgammaOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewLgammaOp creates a new log-gamma operation.
func NewLgammaOp(input, output *tensor.RawTensor) *LgammaOp {
	return &LgammaOp{
		input:  input,
		output: output,
	}
}

// Inputs returns the input tensors.
func (op *LgammaOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor.
func (op *LgammaOp) Output() *tensor.RawTensor {
	return op.output
}

// Backward computes the gradient with respect to input.
func (op *LgammaOp) Backward(outputGrad *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	inputData := op.input.Data()
	inputGrad := mapGrad(op.input, outputGrad, func(i int) float64 {
		return special.Digamma(inputData[i])
	})
	return []*tensor.RawTensor{inputGrad}
}
