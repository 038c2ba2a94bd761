// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/micro/internal/tensor"
)

// DataType represents the element type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Int8    DataType = tensor.Int8
	Int16   DataType = tensor.Int16
	Uint8   DataType = tensor.Uint8
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Bool    DataType = tensor.Bool
)

// Shape represents the dimensions of a tensor.
// Example: Shape{1, 4, 4, 3} is one 4x4 image with 3 channels (NHWC).
type Shape = tensor.Shape

// Quantization holds affine quantization parameters: real = Scale * (q - ZeroPoint).
type Quantization = tensor.Quantization

// Descriptor is an immutable tensor description.
type Descriptor = tensor.Descriptor

// Buffer is a borrowed view of a tensor's data.
type Buffer = tensor.Buffer

// NewDescriptor creates a tensor descriptor.
// Quantized integer types (Int8, Int16, Uint8) require quant.
func NewDescriptor(name string, dtype DataType, shape Shape, quant *Quantization) (*Descriptor, error) {
	return tensor.NewDescriptor(name, dtype, shape, quant)
}
