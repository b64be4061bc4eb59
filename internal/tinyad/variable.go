// Package tinyad is a lightweight forward-mode differentiation type of order
// two in one direction.
//
// It is independent of the gradient tape in internal/autodiff and is used to
// evaluate a derivative as an ordinary value, for example the variance of
// the Conway-Maxwell-Poisson distribution as the second derivative of its log
// normalizing constant.
package tinyad

import "math"

// Variable carries a value and its first and second derivatives with respect
// to a single seeded input.
type Variable struct {
	V  float64 // value
	D1 float64 // first derivative
	D2 float64 // second derivative
}

// Constant returns a Variable with zero derivatives.
func Constant(x float64) Variable {
	return Variable{V: x}
}

// Seed returns the independent variable x, with dx/dx = 1.
func Seed(x float64) Variable {
	return Variable{V: x, D1: 1}
}

// NaN returns a Variable whose value and derivatives are all NaN.
func NaN() Variable {
	n := math.NaN()
	return Variable{V: n, D1: n, D2: n}
}

// chain applies a scalar function with value f0 and derivatives f1, f2 at u.V.
func (u Variable) chain(f0, f1, f2 float64) Variable {
	return Variable{
		V:  f0,
		D1: f1 * u.D1,
		D2: f2*u.D1*u.D1 + f1*u.D2,
	}
}

// Add returns u + w.
func (u Variable) Add(w Variable) Variable {
	return Variable{V: u.V + w.V, D1: u.D1 + w.D1, D2: u.D2 + w.D2}
}

// Sub returns u - w.
func (u Variable) Sub(w Variable) Variable {
	return Variable{V: u.V - w.V, D1: u.D1 - w.D1, D2: u.D2 - w.D2}
}

// Mul returns u * w.
func (u Variable) Mul(w Variable) Variable {
	return Variable{
		V:  u.V * w.V,
		D1: u.D1*w.V + u.V*w.D1,
		D2: u.D2*w.V + 2*u.D1*w.D1 + u.V*w.D2,
	}
}

// Div returns u / w.
func (u Variable) Div(w Variable) Variable {
	return u.Mul(w.Inv())
}

// Inv returns 1 / u.
func (u Variable) Inv() Variable {
	r := 1 / u.V
	return u.chain(r, -r*r, 2*r*r*r)
}

// Scale returns c * u.
func (u Variable) Scale(c float64) Variable {
	return Variable{V: c * u.V, D1: c * u.D1, D2: c * u.D2}
}

// Shift returns u + c.
func (u Variable) Shift(c float64) Variable {
	u.V += c
	return u
}

// Exp returns exp(u).
func (u Variable) Exp() Variable {
	e := math.Exp(u.V)
	return u.chain(e, e, e)
}

// Log returns log(u).
func (u Variable) Log() Variable {
	r := 1 / u.V
	return u.chain(math.Log(u.V), r, -r*r)
}

// LogspaceAdd returns log(exp(u) + exp(w)) without overflow.
func (u Variable) LogspaceAdd(w Variable) Variable {
	hi, lo := u, w
	if lo.V > hi.V {
		hi, lo = lo, hi
	}
	if math.IsInf(lo.V, -1) {
		return hi
	}
	return hi.Add(lo.Sub(hi).Exp().Shift(1).Log())
}
