package tensor

import "github.com/pkg/errors"

// Shape represents the dimensions of a tensor.
//
// Pooling tensors use the NHWC layout: [batch, height, width, channels].
type Shape []int

// NHWC dimension indices.
const (
	DimBatch = iota
	DimHeight
	DimWidth
	DimChannels
)

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

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

// Validate checks if the shape is valid (all dimensions >= 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return errors.Errorf("invalid dimension at index %d: %d (must be >= 0)", i, dim)
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

// Offset4D returns the flat offset of element (b, y, x, c) in a rank-4 row-major shape.
func (s Shape) Offset4D(b, y, x, c int) int {
	return ((b*s[1]+y)*s[2]+x)*s[3] + c
}
