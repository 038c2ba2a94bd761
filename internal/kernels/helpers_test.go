package kernels

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/born-ml/micro/internal/graph"
	"github.com/born-ml/micro/internal/tensor"
)

// poolFixture is a one-operator graph: input -> pool -> output.
type poolFixture struct {
	g       *graph.Runtime
	in, out *tensor.Descriptor
	op      *graph.Operator
}

func newPoolFixture(t *testing.T, code graph.OpCode, dtype tensor.DataType, inShape, outShape tensor.Shape,
	inQ, outQ *tensor.Quantization, attrs []graph.Attribute,
) *poolFixture {
	t.Helper()

	in, err := tensor.NewDescriptor("input", dtype, inShape, inQ)
	require.NoError(t, err)
	out, err := tensor.NewDescriptor("output", dtype, outShape, outQ)
	require.NoError(t, err)

	g := graph.NewRuntime()
	inID, err := g.AddTensor(in)
	require.NoError(t, err)
	outID, err := g.AddTensor(out)
	require.NoError(t, err)

	return &poolFixture{
		g:   g,
		in:  in,
		out: out,
		op: &graph.Operator{
			Name:       "pool",
			Code:       code,
			Inputs:     []graph.TensorID{inID},
			Outputs:    []graph.TensorID{outID},
			Attributes: attrs,
		},
	}
}

func newFloatFixture(t *testing.T, code graph.OpCode, inShape, outShape tensor.Shape, attrs []graph.Attribute) *poolFixture {
	t.Helper()
	return newPoolFixture(t, code, tensor.Float32, inShape, outShape, nil, nil, attrs)
}

func (f *poolFixture) inputFloat32() []float32  { return f.g.DataByTensor(f.in).AsFloat32() }
func (f *poolFixture) outputFloat32() []float32 { return f.g.DataByTensor(f.out).AsFloat32() }
func (f *poolFixture) inputInt8() []int8        { return f.g.DataByTensor(f.in).AsInt8() }
func (f *poolFixture) outputInt8() []int8       { return f.g.DataByTensor(f.out).AsInt8() }
func (f *poolFixture) inputInt16() []int16      { return f.g.DataByTensor(f.in).AsInt16() }
func (f *poolFixture) outputInt16() []int16     { return f.g.DataByTensor(f.out).AsInt16() }

// fillRamp writes 1, 2, 3, ... into data.
func fillRamp(data []float32) {
	for i := range data {
		data[i] = float32(i + 1)
	}
}

func fill[T any](data []T, v T) {
	for i := range data {
		data[i] = v
	}
}

func pool2D(filterH, filterW, strideH, strideW int, padding graph.Padding) []graph.Attribute {
	return graph.Pool2DAttributes(filterH, filterW, strideH, strideW, padding, graph.ActivationNone)
}
