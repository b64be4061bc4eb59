// Package sampler draws variates from the count and compound distributions
// used by the estimation engine: k-truncated Poisson, generalized Poisson,
// Tweedie, Conway-Maxwell-Poisson and the zero-truncated variants of the
// latter two.
//
// Basic variates (Poisson, Gamma, Uniform) come from gonum's distuv,
// all backed by a single math/rand/v2 source owned by the Sampler.
// A Sampler is not safe for concurrent use; create one per goroutine.
package sampler
