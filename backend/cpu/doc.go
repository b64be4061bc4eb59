// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for the element-wise operations
// used by the log-density evaluators.
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
//	    z := backend.Lgamma(tensor.Vector(1, 2, 3))
//	}
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each operation allocates its
// own result and does not share mutable state.
package cpu
