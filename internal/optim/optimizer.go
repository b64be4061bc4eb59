// Package optim implements first-order optimizers for maximum-likelihood
// fitting.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Parameters are plain *tensor.RawTensor values updated in place. Gradients
// come from autodiff.Backward. Because the tape keys gradients by tensor
// pointer, a parameter keeps its identity across iterations and only its
// data changes.
//
// Example usage:
//
//	optimizer := optim.NewAdam(params, optim.AdamConfig{LR: 0.05})
//
//	for range iterations {
//	    backend.Tape().Clear()
//	    backend.Tape().StartRecording()
//	    loss := negLogLik(backend, params)
//	    grads := autodiff.Backward(loss, backend)
//	    optimizer.Step(grads)
//	}
package optim

import (
	"github.com/born-ml/distrib/internal/tensor"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies gradient updates to all parameters in place.
	//
	// Takes a gradient map from Backward(). Parameters missing from the map
	// are left unchanged.
	Step(grads map[*tensor.RawTensor]*tensor.RawTensor)

	// GetLR returns the current learning rate.
	GetLR() float64

	// SetLR updates the learning rate, for schedules driven by the caller.
	SetLR(lr float64)
}

// Compile-time checks.
var (
	_ Optimizer = (*SGD)(nil)
	_ Optimizer = (*Adam)(nil)
)
