package special

import "math"

// LogspaceAdd computes log(exp(a) + exp(b)) without overflow.
func LogspaceAdd(a, b float64) float64 {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.NaN()
	}
	if math.IsInf(a, -1) {
		return b
	}
	if math.IsInf(b, -1) {
		return a
	}
	hi, lo := a, b
	if lo > hi {
		hi, lo = lo, hi
	}
	if math.IsInf(hi, 1) {
		return hi
	}
	return hi + math.Log1p(math.Exp(lo-hi))
}

// LogspaceSub computes log(exp(a) - exp(b)) for a >= b.
// Returns -Inf when a == b and NaN when b > a.
func LogspaceSub(a, b float64) float64 {
	if math.IsInf(b, -1) {
		return a
	}
	return a + Log1mExp(b-a)
}

// Log1mExp computes log(1 - exp(x)) for x <= 0.
//
// Near zero 1-exp(x) cancels, so expm1 is used there; further out exp(x) is
// small and log1p keeps the precision (Mächler's switch at -ln 2).
func Log1mExp(x float64) float64 {
	switch {
	case x > 0 || math.IsNaN(x):
		return math.NaN()
	case x > -math.Ln2:
		return math.Log(-math.Expm1(x))
	default:
		return math.Log1p(-math.Exp(x))
	}
}
