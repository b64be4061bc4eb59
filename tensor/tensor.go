// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/distrib/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// The empty Shape{} is a scalar.
type Shape = tensor.Shape

// BroadcastShapes returns the result shape of an element-wise operation.
func BroadcastShapes(a, b Shape) (Shape, error) {
	return tensor.BroadcastShapes(a, b)
}
