package kernels

import (
	"github.com/pkg/errors"

	"github.com/born-ml/micro/internal/graph"
	"github.com/born-ml/micro/internal/tensor"
)

// SISO resolves the single input and single output tensor of an operator.
// The descriptors are valid for the lifetime of the runtime graph.
type SISO struct {
	input  *tensor.Descriptor
	output *tensor.Descriptor
}

// NewSISO resolves op's tensors from g. It fails with ErrTopology unless op
// has exactly one input and one output and both exist in g.
func NewSISO(op *graph.Operator, g *graph.Runtime) (SISO, error) {
	if len(op.Inputs) != 1 || len(op.Outputs) != 1 {
		return SISO{}, errors.Wrapf(ErrTopology, "expected 1 input and 1 output, got %d and %d",
			len(op.Inputs), len(op.Outputs))
	}

	input, err := g.Tensor(op.Inputs[0])
	if err != nil {
		return SISO{}, errors.Wrapf(ErrTopology, "input: %v", err)
	}
	output, err := g.Tensor(op.Outputs[0])
	if err != nil {
		return SISO{}, errors.Wrapf(ErrTopology, "output: %v", err)
	}
	if input == output {
		return SISO{}, errors.Wrap(ErrTopology, "input and output are the same tensor")
	}

	return SISO{input: input, output: output}, nil
}

// Input returns the input descriptor.
func (s SISO) Input() *tensor.Descriptor {
	return s.input
}

// Output returns the output descriptor.
func (s SISO) Output() *tensor.Descriptor {
	return s.output
}
