// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/distrib/internal/optim"
	"github.com/born-ml/distrib/tensor"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// SGD implements gradient descent with optional momentum.
type SGD = optim.SGD

// SGDConfig holds configuration for SGD.
type SGDConfig = optim.SGDConfig

// Adam implements the Adam optimizer.
type Adam = optim.Adam

// AdamConfig holds configuration for Adam.
type AdamConfig = optim.AdamConfig

// NewSGD creates a new SGD optimizer. Updates are computed with backend,
// which should not be recording.
func NewSGD(params []*tensor.RawTensor, config SGDConfig, backend tensor.Backend) *SGD {
	return optim.NewSGD(params, config, backend)
}

// NewAdam creates a new Adam optimizer.
func NewAdam(params []*tensor.RawTensor, config AdamConfig) *Adam {
	return optim.NewAdam(params, config)
}
