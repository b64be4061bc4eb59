// Package autodiff implements automatic differentiation using the decorator pattern.
//
// AutodiffBackend wraps any Backend implementation and adds gradient tracking
// capabilities through a GradientTape.
//
// Architecture:
//   - Decorator pattern: AutodiffBackend[B] wraps any Backend implementation
//   - GradientTape: Records operations during forward pass
//   - Operation interface: Each op (Add, Lgamma, Atomic, ...) implements backward pass
//   - Reverse-mode AD: Computes gradients efficiently using chain rule
//
// Usage:
//
//	backend := autodiff.New(cpu.New())
//	backend.Tape().StartRecording()
//
//	a := tensor.Scalar(2.5)
//	y := density.BetaBinomial(backend, yObs, a, b, n, true)
//
//	grads := autodiff.Backward(y, backend)
//	fmt.Println(grads[a].Item()) // d logL / da
package autodiff

import (
	"github.com/born-ml/distrib/internal/atomic"
	"github.com/born-ml/distrib/internal/autodiff/ops"
	"github.com/born-ml/distrib/internal/tensor"
)

// AtomicProvider is implemented by backends that resolve atomic functions
// in their own registry.
type AtomicProvider interface {
	Atomics() *atomic.Registry
}

// AutodiffBackend wraps a Backend and adds automatic differentiation.
// It implements the tensor.Backend interface and records operations in a GradientTape.
//
// Type parameter B must satisfy the tensor.Backend interface.
type AutodiffBackend[B tensor.Backend] struct {
	inner   B                // Wrapped backend
	tape    *GradientTape    // Records operations for backpropagation
	atomics *atomic.Registry // Resolves atomic functions for AtomicOp
}

// New creates a new AutodiffBackend wrapping the given backend.
func New[B tensor.Backend](backend B) *AutodiffBackend[B] {
	atomics := atomic.Default()
	if p, ok := any(backend).(AtomicProvider); ok {
		atomics = p.Atomics()
	}
	return &AutodiffBackend[B]{
		inner:   backend,
		tape:    NewGradientTape(),
		atomics: atomics,
	}
}

// Tape returns the gradient tape for manual control.
// Useful for:
//   - Starting/stopping recording
//   - Clearing tape between objective evaluations
//   - Inspecting recorded operations
func (b *AutodiffBackend[B]) Tape() *GradientTape {
	return b.tape
}

// Inner returns the wrapped backend for direct access.
func (b *AutodiffBackend[B]) Inner() B {
	return b.inner
}

// Atomics returns the registry used to resolve atomic functions.
func (b *AutodiffBackend[B]) Atomics() *atomic.Registry {
	return b.atomics
}

// Name returns the backend name.
func (b *AutodiffBackend[B]) Name() string {
	return "Autodiff(" + b.inner.Name() + ")"
}

// record adds op to the tape if it is recording.
func (b *AutodiffBackend[B]) record(op ops.Operation) {
	if b.tape.IsRecording() {
		b.tape.Record(op)
	}
}

// Add performs element-wise addition and records the operation.
func (b *AutodiffBackend[B]) Add(a, c *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Add(a, c)
	b.record(ops.NewAddOp(a, c, result))
	return result
}

// Sub performs element-wise subtraction and records the operation.
func (b *AutodiffBackend[B]) Sub(a, c *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Sub(a, c)
	b.record(ops.NewSubOp(a, c, result))
	return result
}

// Mul performs element-wise multiplication and records the operation.
func (b *AutodiffBackend[B]) Mul(a, c *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Mul(a, c)
	b.record(ops.NewMulOp(a, c, result))
	return result
}

// Div performs element-wise division and records the operation.
func (b *AutodiffBackend[B]) Div(a, c *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Div(a, c)
	b.record(ops.NewDivOp(a, c, result))
	return result
}

// AddScalar adds a constant and records the operation.
func (b *AutodiffBackend[B]) AddScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	result := b.inner.AddScalar(x, scalar)
	b.record(ops.NewAddScalarOp(x, result))
	return result
}

// MulScalar multiplies by a constant and records the operation.
func (b *AutodiffBackend[B]) MulScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	result := b.inner.MulScalar(x, scalar)
	b.record(ops.NewMulScalarOp(x, result, scalar))
	return result
}

// Exp computes exp(x) and records the operation.
func (b *AutodiffBackend[B]) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Exp(x)
	b.record(ops.NewExpOp(x, result))
	return result
}

// Log computes log(x) and records the operation.
func (b *AutodiffBackend[B]) Log(x *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Log(x)
	b.record(ops.NewLogOp(x, result))
	return result
}

// Lgamma computes log|Γ(x)| and records the operation.
func (b *AutodiffBackend[B]) Lgamma(x *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Lgamma(x)
	b.record(ops.NewLgammaOp(x, result))
	return result
}

// Atomic applies a registered atomic function and records it as a single
// AtomicOp. The tape never looks inside the function; only its Reverse rule
// contributes to the gradient.
func (b *AutodiffBackend[B]) Atomic(name string, x *tensor.RawTensor) *tensor.RawTensor {
	fn := b.atomics.MustGet(name)
	result := b.inner.Atomic(name, x)
	b.record(ops.NewAtomicOp(fn, x, result))
	return result
}
