// Package atomic defines atomic functions: primitives whose value and
// reverse-mode derivative are supplied by hand instead of being derived by
// composing differentiable operations.
//
// An atomic function is evaluated as one node on the gradient tape. The tape
// keeps the forward output and passes it back to Reverse, so derivative rules
// can reuse y = f(x) instead of recomputing special functions.
package atomic

// Function is a hand-differentiated primitive.
//
// Forward maps inputs tx to outputs ty. Reverse maps the inputs, the cached
// outputs and the output adjoints py to the contribution made to the input
// adjoints. Backends apply functions element-wise, one input and one output
// per element.
type Function interface {
	Name() string
	Forward(tx []float64) []float64
	Reverse(tx, ty, py []float64) []float64
}

// Eval applies a scalar atomic function to x.
func Eval(fn Function, x float64) float64 {
	return fn.Forward([]float64{x})[0]
}

// Grad returns df/dx at x by running the reverse rule with a unit adjoint.
func Grad(fn Function, x float64) float64 {
	tx := []float64{x}
	ty := fn.Forward(tx)
	return fn.Reverse(tx, ty, []float64{1})[0]
}
