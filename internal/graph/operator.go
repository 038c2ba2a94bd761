package graph

import (
	"fmt"

	"github.com/pkg/errors"
)

// OpCode identifies an operator kind.
type OpCode int

// Supported operator codes.
const (
	OpAveragePool2D OpCode = iota
	OpMaxPool2D
	OpL2Pool2D
)

// String returns the operator name.
func (c OpCode) String() string {
	switch c {
	case OpAveragePool2D:
		return "AveragePool2D"
	case OpMaxPool2D:
		return "MaxPool2D"
	case OpL2Pool2D:
		return "L2Pool2D"
	default:
		return fmt.Sprintf("OpCode(%d)", int(c))
	}
}

// Padding is the padding policy of a windowed operator.
type Padding int

const (
	// PaddingSame pads so that output = ceil(input / stride).
	PaddingSame Padding = iota
	// PaddingValid uses only windows that fit entirely inside the input.
	PaddingValid
)

// String returns the attribute spelling of the padding policy.
func (p Padding) String() string {
	switch p {
	case PaddingSame:
		return "SAME"
	case PaddingValid:
		return "VALID"
	default:
		return fmt.Sprintf("Padding(%d)", int(p))
	}
}

// ParsePadding parses "SAME" or "VALID".
func ParsePadding(s string) (Padding, error) {
	switch s {
	case "SAME":
		return PaddingSame, nil
	case "VALID":
		return PaddingValid, nil
	default:
		return 0, errors.Errorf("unknown padding %q", s)
	}
}

// Activation is a fused activation function applied to an operator's output.
type Activation int

// Fused activations.
const (
	ActivationNone Activation = iota
	ActivationRelu
	ActivationReluN1To1
	ActivationRelu6
)

// String returns the attribute spelling of the activation.
func (a Activation) String() string {
	switch a {
	case ActivationNone:
		return "NONE"
	case ActivationRelu:
		return "RELU"
	case ActivationReluN1To1:
		return "RELU_N1_TO_1"
	case ActivationRelu6:
		return "RELU6"
	default:
		return fmt.Sprintf("Activation(%d)", int(a))
	}
}

// ParseActivation parses an activation attribute value.
func ParseActivation(s string) (Activation, error) {
	switch s {
	case "NONE", "":
		return ActivationNone, nil
	case "RELU":
		return ActivationRelu, nil
	case "RELU_N1_TO_1":
		return ActivationReluN1To1, nil
	case "RELU6":
		return ActivationRelu6, nil
	default:
		return 0, errors.Errorf("unknown fused activation %q", s)
	}
}

// Operator is the static description of one graph node.
type Operator struct {
	Name       string      // Node name (optional)
	Code       OpCode      // Operator kind
	Inputs     []TensorID  // Input tensors
	Outputs    []TensorID  // Output tensors
	Attributes []Attribute // Operator attributes
}

// Attribute is a named operator attribute holding either an integer or a string.
type Attribute struct {
	Name string
	I    int64
	S    string
}

// Pool2D attribute names.
const (
	AttrFilterHeight    = "filter_height"
	AttrFilterWidth     = "filter_width"
	AttrStrideH         = "stride_h"
	AttrStrideW         = "stride_w"
	AttrPadding         = "padding"
	AttrFusedActivation = "fused_activation_function"
)

// Pool2DAttributes builds the attribute list of a 2D pooling operator.
func Pool2DAttributes(filterH, filterW, strideH, strideW int, padding Padding, act Activation) []Attribute {
	return []Attribute{
		{Name: AttrFilterHeight, I: int64(filterH)},
		{Name: AttrFilterWidth, I: int64(filterW)},
		{Name: AttrStrideH, I: int64(strideH)},
		{Name: AttrStrideW, I: int64(strideW)},
		{Name: AttrPadding, S: padding.String()},
		{Name: AttrFusedActivation, S: act.String()},
	}
}

// GetAttrInt returns an integer attribute or default value.
func GetAttrInt(op *Operator, name string, defaultVal int64) int64 {
	for i := range op.Attributes {
		if op.Attributes[i].Name == name {
			return op.Attributes[i].I
		}
	}
	return defaultVal
}

// GetAttrString returns a string attribute or default value.
func GetAttrString(op *Operator, name, defaultVal string) string {
	for i := range op.Attributes {
		if op.Attributes[i].Name == name {
			return op.Attributes[i].S
		}
	}
	return defaultVal
}

// HasAttr reports whether the operator carries the named attribute.
func HasAttr(op *Operator, name string) bool {
	for i := range op.Attributes {
		if op.Attributes[i].Name == name {
			return true
		}
	}
	return false
}
