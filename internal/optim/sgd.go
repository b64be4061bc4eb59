package optim

import (
	"github.com/born-ml/distrib/internal/tensor"
)

// SGD implements gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
type SGD struct {
	params     []*tensor.RawTensor
	lr         float64
	momentum   float64
	velocities map[*tensor.RawTensor]*tensor.RawTensor
	backend    tensor.Backend
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer. Updates are computed with backend,
// which should be a plain (non-recording) backend.
func NewSGD(params []*tensor.RawTensor, config SGDConfig, backend tensor.Backend) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*tensor.RawTensor]*tensor.RawTensor),
		backend:    backend,
	}
}

// Step performs a single optimization step.
func (s *SGD) Step(grads map[*tensor.RawTensor]*tensor.RawTensor) {
	for _, param := range s.params {
		grad := grads[param]
		if grad == nil {
			continue
		}

		if s.momentum != 0 {
			velocity, ok := s.velocities[param]
			if !ok {
				velocity = tensor.Full(param.Shape(), 0)
				s.velocities[param] = velocity
			}
			// velocity = momentum * velocity + grad
			copy(velocity.Data(), s.backend.Add(s.backend.MulScalar(velocity, s.momentum), grad).Data())
			grad = velocity
		}

		// param -= lr * grad
		updated := s.backend.Sub(param, s.backend.MulScalar(grad, s.lr))
		copy(param.Data(), updated.Data())
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
