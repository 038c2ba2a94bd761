// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph provides the public runtime graph API: the tensor store and
// the operator descriptions kernels are configured from.
package graph

import (
	"github.com/born-ml/micro/internal/graph"
)

// Runtime owns tensors and their buffers.
type Runtime = graph.Runtime

// TensorID indexes a tensor in a Runtime.
type TensorID = graph.TensorID

// Operator is the static description of one graph node.
type Operator = graph.Operator

// Attribute is a named operator attribute.
type Attribute = graph.Attribute

// OpCode identifies an operator kind.
type OpCode = graph.OpCode

// Operator codes.
const (
	OpAveragePool2D OpCode = graph.OpAveragePool2D
	OpMaxPool2D     OpCode = graph.OpMaxPool2D
	OpL2Pool2D      OpCode = graph.OpL2Pool2D
)

// Padding is a windowed operator's padding policy.
type Padding = graph.Padding

// Padding policies.
const (
	PaddingSame  Padding = graph.PaddingSame
	PaddingValid Padding = graph.PaddingValid
)

// Activation is a fused output activation.
type Activation = graph.Activation

// Fused activations.
const (
	ActivationNone      Activation = graph.ActivationNone
	ActivationRelu      Activation = graph.ActivationRelu
	ActivationReluN1To1 Activation = graph.ActivationReluN1To1
	ActivationRelu6     Activation = graph.ActivationRelu6
)

// NewRuntime creates an empty runtime graph.
func NewRuntime() *Runtime {
	return graph.NewRuntime()
}

// Pool2DAttributes builds the attributes of a 2D pooling operator.
func Pool2DAttributes(filterH, filterW, strideH, strideW int, padding Padding, act Activation) []Attribute {
	return graph.Pool2DAttributes(filterH, filterW, strideH, strideW, padding, act)
}
