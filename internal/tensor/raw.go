package tensor

import "fmt"

// RawTensor is the low-level float64 tensor that flows through a Backend.
//
// Distribution parameters are scalars or flat vectors of per-observation
// values, so a RawTensor is a contiguous row-major float64 buffer plus a shape.
// Identity matters: the autodiff tape keys adjoints by *RawTensor, so reusing
// the same tensor in several places accumulates its gradient.
type RawTensor struct {
	data  []float64
	shape Shape
}

// NewRaw creates a new zero-filled RawTensor with the given shape.
func NewRaw(shape Shape) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &RawTensor{
		data:  make([]float64, shape.NumElements()),
		shape: shape.Clone(),
	}, nil
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice(data []float64, shape Shape) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	r, err := NewRaw(shape)
	if err != nil {
		return nil, err
	}
	copy(r.data, data)
	return r, nil
}

// Vector creates a 1-D tensor holding a copy of values.
func Vector(values ...float64) *RawTensor {
	if len(values) == 0 {
		panic("vector: at least one value required")
	}
	r, _ := FromSlice(values, Shape{len(values)})
	return r
}

// Scalar creates a 0-D tensor holding v.
func Scalar(v float64) *RawTensor {
	return &RawTensor{data: []float64{v}, shape: Shape{}}
}

// Full creates a tensor of the given shape with every element set to v.
func Full(shape Shape, v float64) *RawTensor {
	r, err := NewRaw(shape)
	if err != nil {
		panic(err)
	}
	for i := range r.data {
		r.data[i] = v
	}
	return r
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return len(r.data)
}

// Data returns the underlying float64 slice.
// WARNING: Direct access to underlying memory. Writing to it after the tensor
// was recorded on a tape corrupts the backward pass.
func (r *RawTensor) Data() []float64 {
	return r.data
}

// At returns element i, repeating the single element of a one-element tensor.
func (r *RawTensor) At(i int) float64 {
	if len(r.data) == 1 {
		return r.data[0]
	}
	return r.data[i]
}

// Item returns the value of a one-element tensor.
func (r *RawTensor) Item() float64 {
	if len(r.data) != 1 {
		panic(fmt.Sprintf("item: tensor has %d elements, want 1", len(r.data)))
	}
	return r.data[0]
}

// Clone returns a deep copy of the tensor. The copy is a distinct node for the
// autodiff tape.
func (r *RawTensor) Clone() *RawTensor {
	return &RawTensor{
		data:  append([]float64(nil), r.data...),
		shape: r.shape.Clone(),
	}
}

// String implements fmt.Stringer.
func (r *RawTensor) String() string {
	return fmt.Sprintf("RawTensor(shape=%v, data=%v)", r.shape, r.data)
}
