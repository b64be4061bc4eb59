// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dist

import (
	"github.com/born-ml/distrib/internal/fit"
)

// FitConfig controls maximum-likelihood fitting.
type FitConfig = fit.Config

// FitResult reports a maximum-likelihood fit.
type FitResult = fit.Result

// Fitting errors.
var (
	ErrNoData           = fit.ErrNoData
	ErrInvalidData      = fit.ErrInvalidData
	ErrUnknownOptimizer = fit.ErrUnknownOptimizer
)

// DefaultFitConfig returns the default fitting configuration.
func DefaultFitConfig() FitConfig {
	return fit.DefaultConfig()
}

// FitGenPois estimates [theta, lambda] of a generalized Poisson sample by
// maximum likelihood, with lambda in (0, 1).
func FitGenPois(y []float64, cfg FitConfig) (FitResult, error) {
	return fit.GenPois(y, cfg)
}

// FitBetaBinom estimates [a, b] of a beta-binomial sample with y[i]
// successes out of n[i] trials.
func FitBetaBinom(y, n []float64, cfg FitConfig) (FitResult, error) {
	return fit.BetaBinom(y, n, cfg)
}
