package tensor

import "fmt"

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// BroadcastShapes returns the result shape of an element-wise operation.
//
// Element-wise operations accept operands of equal shape, or one operand
// holding a single element that is repeated against the other:
//
//	(5) + (5) → (5)
//	(5) + ()  → (5)
//	(1) + (5) → (5)
//	(3) + (5) → error
func BroadcastShapes(a, b Shape) (Shape, error) {
	switch {
	case a.Equal(b):
		return a.Clone(), nil
	case b.NumElements() == 1:
		return a.Clone(), nil
	case a.NumElements() == 1:
		return b.Clone(), nil
	default:
		return nil, fmt.Errorf("shapes not compatible for element-wise op: %v vs %v", a, b)
	}
}
