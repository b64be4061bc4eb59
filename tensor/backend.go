// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/distrib/internal/tensor"

// Backend defines the interface that all compute backends must implement.
//
// Implementations:
//   - backend/cpu: plain float64 evaluation
//
// Decorator backends for additional functionality:
//   - autodiff: automatic differentiation (wraps any backend)
//
// Example:
//
//	backend := cpu.New()
//	y := backend.Atomic("logit_pnorm", tensor.Vector(-1, 0, 1))
type Backend = tensor.Backend
