// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dist

import (
	"github.com/born-ml/distrib/internal/sampler"
)

// Sampler draws variates from the supported families.
type Sampler = sampler.Sampler

// SamplerConfig configures a Sampler.
type SamplerConfig = sampler.Config

// ErrDomain is returned by samplers for parameters outside the domain.
var ErrDomain = sampler.ErrDomain

// DefaultSamplerConfig returns the default sampler configuration.
func DefaultSamplerConfig() SamplerConfig {
	return sampler.DefaultConfig()
}

// NewSampler creates a sampler.
//
// Example:
//
//	s := dist.NewSampler(dist.SamplerConfig{Seed: 1})
//	y := s.TruncatedGenPois(2, 0.1)
func NewSampler(cfg SamplerConfig) *Sampler {
	return sampler.New(cfg)
}
