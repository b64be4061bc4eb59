// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dist

import (
	"github.com/born-ml/distrib/internal/compois"
	"github.com/born-ml/distrib/internal/parallel"
)

// ErrLengthMismatch is returned by CompoisCalcVar for vectors of different
// lengths.
var ErrLengthMismatch = compois.ErrLengthMismatch

// CompoisCalcVar returns the Conway-Maxwell-Poisson variance for each
// (mean[i], nu[i]) pair. Invalid pairs give NaN in their slot.
//
// Returns an error wrapping ErrLengthMismatch, and a nil slice, when the
// lengths differ.
func CompoisCalcVar(mean, nu []float64) ([]float64, error) {
	return compois.CalcVarVec(mean, nu, parallel.DefaultConfig())
}

// CompoisVar returns the Conway-Maxwell-Poisson variance for one pair.
func CompoisVar(mean, nu float64) float64 {
	return compois.CalcVar(mean, nu)
}
