package kernels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/micro/internal/graph"
	"github.com/born-ml/micro/internal/tensor"
)

func TestNewSISO(t *testing.T) {
	f := newFloatFixture(t, graph.OpAveragePool2D,
		tensor.Shape{1, 2, 2, 1}, tensor.Shape{1, 1, 1, 1}, pool2D(2, 2, 2, 2, graph.PaddingValid))

	siso, err := NewSISO(f.op, f.g)
	require.NoError(t, err)
	assert.Same(t, f.in, siso.Input())
	assert.Same(t, f.out, siso.Output())
}

func TestNewSISO_Errors(t *testing.T) {
	f := newFloatFixture(t, graph.OpAveragePool2D,
		tensor.Shape{1, 2, 2, 1}, tensor.Shape{1, 1, 1, 1}, pool2D(2, 2, 2, 2, graph.PaddingValid))
	in, out := f.op.Inputs[0], f.op.Outputs[0]

	tests := []struct {
		name    string
		inputs  []graph.TensorID
		outputs []graph.TensorID
	}{
		{"no inputs", nil, []graph.TensorID{out}},
		{"two outputs", []graph.TensorID{in}, []graph.TensorID{out, out}},
		{"missing input", []graph.TensorID{-1}, []graph.TensorID{out}},
		{"missing output", []graph.TensorID{in}, []graph.TensorID{7}},
		{"aliased", []graph.TensorID{in}, []graph.TensorID{in}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := &graph.Operator{Code: graph.OpAveragePool2D, Inputs: tt.inputs, Outputs: tt.outputs}
			_, err := NewSISO(op, f.g)
			assert.ErrorIs(t, err, ErrTopology)
		})
	}
}
