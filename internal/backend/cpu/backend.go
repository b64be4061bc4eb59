// Package cpu implements the plain float64 CPU backend.
package cpu

import (
	"fmt"

	"github.com/born-ml/distrib/internal/atomic"
	"github.com/born-ml/distrib/internal/tensor"
)

// CPUBackend evaluates element-wise operations on CPU without gradient tracking.
type CPUBackend struct {
	atomics *atomic.Registry
}

// New creates a new CPU backend using the default atomic function registry.
func New() *CPUBackend {
	return NewWithRegistry(atomic.Default())
}

// NewWithRegistry creates a CPU backend resolving atomic functions in r.
func NewWithRegistry(r *atomic.Registry) *CPUBackend {
	return &CPUBackend{
		atomics: r,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Atomics returns the registry used to resolve atomic functions.
func (cpu *CPUBackend) Atomics() *atomic.Registry {
	return cpu.atomics
}

// Add performs element-wise addition.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return binary("add", a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return binary("sub", a, b, func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return binary("mul", a, b, func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return binary("div", a, b, func(x, y float64) float64 { return x / y })
}

// binary applies f element-wise, repeating a one-element operand.
func binary(name string, a, b *tensor.RawTensor, f func(x, y float64) float64) *tensor.RawTensor {
	outShape, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result, err := tensor.NewRaw(outShape)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	dst := result.Data()
	for i := range dst {
		dst[i] = f(a.At(i), b.At(i))
	}
	return result
}

// unary applies f element-wise into a new tensor of the same shape.
func unary(name string, x *tensor.RawTensor, f func(v float64) float64) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	dst := result.Data()
	for i, v := range x.Data() {
		dst[i] = f(v)
	}
	return result
}
