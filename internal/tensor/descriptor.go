package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// Descriptor is an immutable view of a tensor's element type, shape and
// quantization parameters. It carries no data; buffers are owned by the
// runtime graph.
type Descriptor struct {
	name  string
	dtype DataType
	shape Shape
	quant *Quantization
}

// NewDescriptor creates a descriptor. Quantized integer types require
// quantization parameters; other types must not have them.
func NewDescriptor(name string, dtype DataType, shape Shape, quant *Quantization) (*Descriptor, error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrapf(err, "tensor %q: invalid shape", name)
	}
	switch {
	case quant != nil:
		if err := quant.Validate(dtype); err != nil {
			return nil, errors.Wrapf(err, "tensor %q", name)
		}
	case dtype.IsQuantized():
		return nil, errors.Errorf("tensor %q: %s tensor requires quantization parameters", name, dtype)
	}

	d := &Descriptor{
		name:  name,
		dtype: dtype,
		shape: shape.Clone(),
	}
	if quant != nil {
		q := *quant
		d.quant = &q
	}
	return d, nil
}

// Name returns the tensor name (may be empty).
func (d *Descriptor) Name() string {
	return d.name
}

// DType returns the element type.
func (d *Descriptor) DType() DataType {
	return d.dtype
}

// Shape returns the tensor's shape.
// The returned slice is shared with the descriptor and must not be modified.
func (d *Descriptor) Shape() Shape {
	return d.shape
}

// Quantization returns the quantization parameters, if any.
func (d *Descriptor) Quantization() (Quantization, bool) {
	if d.quant == nil {
		return Quantization{}, false
	}
	return *d.quant, true
}

// NumElements returns the total number of elements.
func (d *Descriptor) NumElements() int {
	return d.shape.NumElements()
}

// ByteSize returns the size of the backing buffer in bytes.
func (d *Descriptor) ByteSize() int {
	return d.NumElements() * d.dtype.Size()
}

// String implements fmt.Stringer.
func (d *Descriptor) String() string {
	if d.quant != nil {
		return fmt.Sprintf("%s:%s%v{scale=%g,zp=%d}", d.name, d.dtype, []int(d.shape), d.quant.Scale, d.quant.ZeroPoint)
	}
	return fmt.Sprintf("%s:%s%v", d.name, d.dtype, []int(d.shape))
}
