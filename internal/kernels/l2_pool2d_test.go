package kernels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/micro/internal/graph"
	"github.com/born-ml/micro/internal/tensor"
)

func TestL2Pool2D_Forward(t *testing.T) {
	f := newFloatFixture(t, graph.OpL2Pool2D,
		tensor.Shape{1, 2, 4, 1}, tensor.Shape{1, 1, 2, 1}, pool2D(2, 2, 2, 2, graph.PaddingValid))

	// Left window: all 3 -> 3. Right window: 1, 1, 7, 7 -> sqrt(100/4) = 5.
	copy(f.inputFloat32(), []float32{
		3, 3, 1, 1,
		3, 3, 7, 7,
	})

	k := NewL2Pool2D()
	require.NoError(t, k.Configure(f.op, f.g))
	k.Execute(f.op, f.g)

	assert.InDeltaSlice(t, []float32{3, 5}, f.outputFloat32(), 1e-6)
}

func TestL2Pool2D_RejectsQuantized(t *testing.T) {
	q := &tensor.Quantization{Scale: 1}
	f := newPoolFixture(t, graph.OpL2Pool2D, tensor.Int8,
		tensor.Shape{1, 4, 4, 1}, tensor.Shape{1, 2, 2, 1}, q, q, pool2D(2, 2, 2, 2, graph.PaddingValid))

	err := NewL2Pool2D().Configure(f.op, f.g)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
