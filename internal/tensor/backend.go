package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for element-wise operations used by
// log-density evaluators.
//
// Implementations:
//   - internal/backend/cpu: plain float64 evaluation
//   - internal/autodiff: decorator that records every op on a GradientTape
type Backend interface {
	// Element-wise binary operations
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Scalar operations (element-wise with scalar)
	AddScalar(x *RawTensor, scalar float64) *RawTensor
	MulScalar(x *RawTensor, scalar float64) *RawTensor

	// Math operations (element-wise)
	Exp(x *RawTensor) *RawTensor    // exponential
	Log(x *RawTensor) *RawTensor    // natural logarithm
	Lgamma(x *RawTensor) *RawTensor // log|Γ(x)|

	// Atomic applies a registered atomic function element-wise.
	// Atomic functions supply their own derivative rule, see internal/atomic.
	Atomic(name string, x *RawTensor) *RawTensor

	// Metadata
	Name() string
}
