// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"github.com/born-ml/distrib/internal/atomic"
	internalcpu "github.com/born-ml/distrib/internal/backend/cpu"
	"github.com/born-ml/distrib/tensor"
)

// Backend represents the CPU backend implementation.
//
// The CPU backend evaluates every operation eagerly in float64 with no
// gradient tracking. Wrap it with autodiff.New to record gradients.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend using the default atomic function registry.
//
// Example:
//
//	backend := cpu.New()
//	y := backend.Atomic("logit_invcloglog", tensor.Vector(0.5))
func New() *Backend {
	return internalcpu.New()
}

// NewWithRegistry creates a CPU backend that resolves atomic functions from
// reg instead of the default registry.
func NewWithRegistry(reg *atomic.Registry) *Backend {
	return internalcpu.NewWithRegistry(reg)
}
