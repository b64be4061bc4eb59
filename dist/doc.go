// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dist provides log-densities, derivative primitives and samplers for
// the beta-binomial, generalized Poisson, Conway-Maxwell-Poisson and Tweedie
// families.
//
// # Log-densities
//
// DBetaBinom and DGenPois evaluate on float64. BetaBinomial and GenPois take
// a tensor.Backend, so wrapping the CPU backend with autodiff.New yields
// gradients with respect to every parameter:
//
//	backend := autodiff.New(cpu.New())
//	backend.Tape().StartRecording()
//	theta := tensor.Scalar(2)
//	ll := dist.GenPois(backend, tensor.Vector(0, 1, 4), theta, tensor.Scalar(0.1), true)
//	dtheta := autodiff.Backward(ll, backend)[theta].Item()
//
// # Atomic functions
//
// LogitInvCloglog and LogitPnorm are registered under "logit_invcloglog"
// and "logit_pnorm" and are reached from any backend through
// Backend.Atomic. Their derivatives reuse the cached forward value.
//
// # Simulation
//
// NewSampler returns a Sampler with TruncPois, GenPois, Tweedie, Compois2
// and the zero-truncated variants. A Sampler is not safe for concurrent use.
//
// # Conway-Maxwell-Poisson variance
//
// CompoisCalcVar returns the variance for vectors of means and dispersions,
// computed as the second derivative of log Z with respect to log λ.
package dist
