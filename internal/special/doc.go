// Package special provides the numerically stable scalar special functions
// used by the log-densities and atomic derivative rules: log-space addition
// and subtraction, both normal CDF tails on the log scale, the log normal
// density, and the derivatives of lgamma.
package special
