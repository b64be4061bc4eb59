package special

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Lgamma returns log|Γ(x)|.
func Lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}

// Digamma returns ψ(x), the derivative of Lgamma.
func Digamma(x float64) float64 {
	return mathext.Digamma(x)
}
