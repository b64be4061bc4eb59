// Package density provides the log-density evaluators of the beta-binomial
// and generalized Poisson distributions.
//
// The graph forms (BetaBinomial, GenPois) are built from Backend operations,
// so with an autodiff backend every parameter receives a gradient. The plain
// forms (DBetaBinom, DGenPois) evaluate the same formulas on float64 and are
// used by the samplers.
package density
