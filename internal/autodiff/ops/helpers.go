package ops

import (
	"fmt"

	"github.com/born-ml/distrib/internal/tensor"
)

// reduceBroadcast reduces a gradient tensor to match the target shape.
// This is necessary when a one-element operand was broadcast in the forward pass.
//
// Example:
//
//	Forward: a[1] * b[5] -> c[5]  (a was repeated 5 times)
//	Backward: grad_c[5] -> grad_a[1] (sum of all elements)
func reduceBroadcast(grad *tensor.RawTensor, targetShape tensor.Shape) *tensor.RawTensor {
	// If shapes already match, clone to avoid aliasing between adjoints
	if grad.Shape().Equal(targetShape) {
		return grad.Clone()
	}

	if targetShape.NumElements() != 1 {
		panic(fmt.Sprintf("reduceBroadcast: cannot reduce %v to %v", grad.Shape(), targetShape))
	}

	var sum float64
	for _, v := range grad.Data() {
		sum += v
	}
	result, err := tensor.FromSlice([]float64{sum}, targetShape)
	if err != nil {
		panic(fmt.Sprintf("reduceBroadcast: %v", err))
	}
	return result
}

// mapGrad builds dL/dx[i] = outputGrad[i] * deriv(i) for a unary op.
func mapGrad(input, outputGrad *tensor.RawTensor, deriv func(i int) float64) *tensor.RawTensor {
	inputGrad, err := tensor.NewRaw(input.Shape())
	if err != nil {
		panic(err)
	}
	gradData := inputGrad.Data()
	outGradData := outputGrad.Data()
	for i := range gradData {
		gradData[i] = outGradData[i] * deriv(i)
	}
	return inputGrad
}
