// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public tensor descriptor API of the micro kernels.
//
// A Descriptor is an immutable description of one tensor: element type, NHWC
// shape and, for quantized integer types, affine quantization parameters.
// Descriptors carry no data; buffers belong to the runtime graph.
//
// Example:
//
//	in, err := tensor.NewDescriptor("input", tensor.Int8, tensor.Shape{1, 8, 8, 4},
//	    &tensor.Quantization{Scale: 0.05, ZeroPoint: -3})
package tensor
