package cpu

import (
	"github.com/born-ml/distrib/internal/atomic"
	"github.com/born-ml/distrib/internal/tensor"
)

// Atomic applies the registered atomic function name element-wise.
// Panics if name is not registered.
func (cpu *CPUBackend) Atomic(name string, x *tensor.RawTensor) *tensor.RawTensor {
	fn := cpu.atomics.MustGet(name)
	return unary(name, x, func(v float64) float64 {
		return atomic.Eval(fn, v)
	})
}
