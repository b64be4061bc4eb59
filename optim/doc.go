// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides first-order optimizers for custom likelihoods.
//
// # Overview
//
// This package contains:
//   - SGD: gradient descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// Parameters are *tensor.RawTensor values updated in place from the
// gradient map returned by autodiff.Backward.
//
// # Basic Usage
//
//	backend := autodiff.New(cpu.New())
//	theta := tensor.Scalar(0)
//	opt := optim.NewAdam([]*tensor.RawTensor{theta}, optim.AdamConfig{LR: 0.05})
//
//	for range 1000 {
//	    backend.Tape().Clear()
//	    backend.Tape().StartRecording()
//	    loss := backend.MulScalar(dist.GenPois(backend, y, backend.Exp(theta), lambda, true), -1)
//	    opt.Step(autodiff.Backward(loss, backend))
//	}
package optim
