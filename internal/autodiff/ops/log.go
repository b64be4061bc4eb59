package ops

import "github.com/born-ml/distrib/internal/tensor"

// LogOp represents element-wise natural logarithm operation.
//
// Forward:
//
//	output = log(input)
//
// Backward:
//
//	∂L/∂input = ∂L/∂output * (1 / input)
type LogOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewLogOp creates a new log operation.
func NewLogOp(input, output *tensor.RawTensor) *LogOp {
	return &LogOp{
		input:  input,
		output: output,
	}
}

// Inputs returns the input tensors.
func (op *LogOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor.
func (op *LogOp) Output() *tensor.RawTensor {
	return op.output
}

// Backward computes the gradient with respect to input.
//
// Note: This assumes input > 0 (log is only defined for positive values).
func (op *LogOp) Backward(outputGrad *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	inputData := op.input.Data()
	inputGrad := mapGrad(op.input, outputGrad, func(i int) float64 {
		return 1 / inputData[i]
	})
	return []*tensor.RawTensor{inputGrad}
}
