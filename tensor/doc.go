// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public tensor types used by the distribution
// evaluators.
//
// # Overview
//
// A RawTensor is a flat float64 buffer with a Shape. Element-wise operations
// accept operands of equal shape, or a one-element operand that broadcasts
// against the other. Scalars have the empty shape.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/distrib/backend/cpu"
//	    "github.com/born-ml/distrib/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    y := tensor.Vector(0, 1, 2)
//	    z := backend.AddScalar(y, 1)
//	}
//
// # Backends
//
// Computation is performed by a Backend:
//   - backend/cpu: plain float64 evaluation
//   - autodiff: decorator that records operations for reverse-mode gradients
package tensor
