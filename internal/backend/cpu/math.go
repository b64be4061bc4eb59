package cpu

import (
	"math"

	"github.com/born-ml/distrib/internal/special"
	"github.com/born-ml/distrib/internal/tensor"
)

// Exp computes element-wise exponential: exp(x).
func (cpu *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return unary("exp", x, math.Exp)
}

// Log computes element-wise natural logarithm: ln(x).
// Zero maps to -Inf and negative values to NaN, so an optimizer stepping
// outside the parameter domain sees a non-finite objective instead of a panic.
func (cpu *CPUBackend) Log(x *tensor.RawTensor) *tensor.RawTensor {
	return unary("log", x, math.Log)
}

// Lgamma computes element-wise log|Γ(x)|.
func (cpu *CPUBackend) Lgamma(x *tensor.RawTensor) *tensor.RawTensor {
	return unary("lgamma", x, special.Lgamma)
}
