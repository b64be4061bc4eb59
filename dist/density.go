// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dist

import (
	"github.com/born-ml/distrib/internal/density"
	"github.com/born-ml/distrib/tensor"
)

// DBetaBinom returns the beta-binomial density of y successes in n trials
// with shape parameters a and b, or its log when giveLog is true.
func DBetaBinom(y, a, b, n float64, giveLog bool) float64 {
	return density.DBetaBinom(y, a, b, n, giveLog)
}

// DGenPois returns the generalized Poisson density of y with rate theta and
// dispersion lambda, or its log when giveLog is true.
func DGenPois(y, theta, lambda float64, giveLog bool) float64 {
	return density.DGenPois(y, theta, lambda, giveLog)
}

// LogBetaBinomInt returns the beta-binomial log density for integer counts.
// It is NaN unless 0 ≤ y ≤ n.
func LogBetaBinomInt(y, n int, a, b float64) float64 {
	return density.LogBetaBinomInt(y, n, a, b)
}

// BetaBinomial evaluates DBetaBinom element-wise through backend.
func BetaBinomial(backend tensor.Backend, y, a, b, n *tensor.RawTensor, giveLog bool) *tensor.RawTensor {
	return density.BetaBinomial(backend, y, a, b, n, giveLog)
}

// GenPois evaluates DGenPois element-wise through backend.
func GenPois(backend tensor.Backend, y, theta, lambda *tensor.RawTensor, giveLog bool) *tensor.RawTensor {
	return density.GenPois(backend, y, theta, lambda, giveLog)
}
