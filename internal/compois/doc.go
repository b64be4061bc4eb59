// Package compois implements the Conway-Maxwell-Poisson normalizing constant
// and the moments derived from it.
//
// With rate λ and dispersion ν the unnormalized mass is λ^k / (k!)^ν and
//
//	Z(λ, ν) = Σ_k exp(k log λ - ν lgamma(k+1)).
//
// The cumulants of the distribution are derivatives of log Z with respect to
// log λ: E[X] is the first derivative and Var(X) the second. Both are
// obtained from a single tinyad evaluation of CalcLogZ.
package compois
