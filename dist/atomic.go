// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dist

import (
	"github.com/born-ml/distrib/internal/atomic"
)

// AtomicFunction is a primitive whose value and reverse-mode derivative are
// supplied by hand. See Registry.Register.
type AtomicFunction = atomic.Function

// Registry maps atomic function names to implementations.
type Registry = atomic.Registry

// Names of the built-in atomic functions.
const (
	LogitInvCloglogName = "logit_invcloglog"
	LogitPnormName      = "logit_pnorm"
)

// NewRegistry returns a registry holding the built-in atomic functions.
func NewRegistry() *Registry {
	return atomic.NewRegistry()
}

// DefaultRegistry returns the process-wide registry used by cpu.New.
func DefaultRegistry() *Registry {
	return atomic.Default()
}

// LogitInvCloglog returns log(exp(exp(x)) - 1).
func LogitInvCloglog(x float64) float64 {
	return atomic.LogitInvCloglog(x)
}

// LogitInvCloglogGrad returns the derivative of LogitInvCloglog at x.
func LogitInvCloglogGrad(x float64) float64 {
	return atomic.Grad(atomic.LogitInvCloglogFunc{}, x)
}

// LogitPnorm returns logit(Φ(x)), stable in both tails.
func LogitPnorm(x float64) float64 {
	return atomic.LogitPnorm(x)
}

// LogitPnormGrad returns the derivative of LogitPnorm at x.
func LogitPnormGrad(x float64) float64 {
	return atomic.Grad(atomic.LogitPnormFunc{}, x)
}
