package graph

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/micro/internal/tensor"
)

func mustDescriptor(t *testing.T, name string, dtype tensor.DataType, shape tensor.Shape) *tensor.Descriptor {
	t.Helper()
	var q *tensor.Quantization
	if dtype.IsQuantized() {
		q = &tensor.Quantization{Scale: 1}
	}
	d, err := tensor.NewDescriptor(name, dtype, shape, q)
	require.NoError(t, err)
	return d
}

func TestRuntimeAddAndResolve(t *testing.T) {
	g := NewRuntime()
	a := mustDescriptor(t, "a", tensor.Float32, tensor.Shape{1, 2, 2, 1})
	b := mustDescriptor(t, "b", tensor.Int16, tensor.Shape{3})

	idA, err := g.AddTensor(a)
	require.NoError(t, err)
	idB, err := g.AddTensor(b)
	require.NoError(t, err)

	assert.Equal(t, TensorID(0), idA)
	assert.Equal(t, TensorID(1), idB)
	assert.Equal(t, 2, g.NumTensors())

	got, err := g.Tensor(idB)
	require.NoError(t, err)
	assert.Same(t, b, got)

	_, err = g.Tensor(2)
	assert.Error(t, err)
	_, err = g.Tensor(-1)
	assert.Error(t, err)
}

func TestRuntimeAddTensorErrors(t *testing.T) {
	g := NewRuntime()
	a := mustDescriptor(t, "a", tensor.Float32, tensor.Shape{1})

	_, err := g.AddTensor(nil)
	assert.Error(t, err)

	_, err = g.AddTensor(a)
	require.NoError(t, err)
	_, err = g.AddTensor(a)
	assert.Error(t, err)

	g.Close()
	_, err = g.AddTensor(mustDescriptor(t, "b", tensor.Float32, tensor.Shape{1}))
	assert.Error(t, err)
}

func TestRuntimeBuffers(t *testing.T) {
	g := NewRuntime()
	small := mustDescriptor(t, "small", tensor.Int8, tensor.Shape{3})
	f := mustDescriptor(t, "f", tensor.Float32, tensor.Shape{2, 2})
	_, err := g.AddTensor(small)
	require.NoError(t, err)
	_, err = g.AddTensor(f)
	require.NoError(t, err)

	buf := g.DataByTensor(f)
	assert.Equal(t, 4, buf.Len())
	assert.Equal(t, []float32{0, 0, 0, 0}, buf.AsFloat32())
	assert.Zero(t, uintptr(unsafe.Pointer(&buf.Bytes()[0]))%8, "buffer must be 8-byte aligned")

	// Writes through one view are visible through the next.
	buf.AsFloat32()[3] = 1.5
	assert.Equal(t, float32(1.5), g.DataByTensor(f).AsFloat32()[3])

	assert.Len(t, g.DataByTensor(small).AsInt8(), 3)
}

func TestRuntimeEmptyTensor(t *testing.T) {
	g := NewRuntime()
	e := mustDescriptor(t, "e", tensor.Float32, tensor.Shape{1, 0, 2, 1})
	_, err := g.AddTensor(e)
	require.NoError(t, err)

	assert.Empty(t, g.DataByTensor(e).AsFloat32())
}

func TestRuntimeDataByTensorPanics(t *testing.T) {
	g := NewRuntime()
	a := mustDescriptor(t, "a", tensor.Float32, tensor.Shape{1})
	_, err := g.AddTensor(a)
	require.NoError(t, err)

	foreign := mustDescriptor(t, "foreign", tensor.Float32, tensor.Shape{1})
	assert.Panics(t, func() { g.DataByTensor(foreign) })

	g.Close()
	assert.PanicsWithValue(t, "data by tensor: runtime graph is closed", func() { g.DataByTensor(a) })
}
