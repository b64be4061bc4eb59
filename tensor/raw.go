// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/distrib/internal/tensor"
)

// RawTensor is the low-level tensor representation.
//
// Example:
//
//	raw := tensor.Vector(1, 2, 3)
//	data := raw.Data()   // []float64{1, 2, 3}
//	clone := raw.Clone() // deep copy
type RawTensor = tensor.RawTensor

// NewRaw creates a zero-filled tensor with the given shape.
func NewRaw(shape Shape) (*RawTensor, error) {
	return tensor.NewRaw(shape)
}

// FromSlice creates a tensor from data. len(data) must match the shape.
func FromSlice(data []float64, shape Shape) (*RawTensor, error) {
	return tensor.FromSlice(data, shape)
}

// Vector creates a one-dimensional tensor from values.
func Vector(values ...float64) *RawTensor {
	return tensor.Vector(values...)
}

// Scalar creates a zero-dimensional tensor holding v.
func Scalar(v float64) *RawTensor {
	return tensor.Scalar(v)
}

// Full creates a tensor of the given shape filled with v.
func Full(shape Shape, v float64) *RawTensor {
	return tensor.Full(shape, v)
}
