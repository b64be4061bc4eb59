package cpu

import "github.com/born-ml/distrib/internal/tensor"

// Scalar operations - element-wise operations with a scalar value.

// MulScalar multiplies each element of the tensor by a scalar value.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return unary("mulScalar", x, func(v float64) float64 { return v * scalar })
}

// AddScalar adds a scalar value to each element of the tensor.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return unary("addScalar", x, func(v float64) float64 { return v + scalar })
}
