package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataTypeSize(t *testing.T) {
	sizes := map[DataType]int{
		Float32: 4,
		Int8:    1,
		Int16:   2,
		Uint8:   1,
		Int32:   4,
		Int64:   8,
		Bool:    1,
	}
	for dt, size := range sizes {
		assert.Equal(t, size, dt.Size(), dt.String())
	}
	assert.Panics(t, func() { DataType(100).Size() })
	assert.Equal(t, "unknown", DataType(100).String())
}

func TestDataTypeIsQuantized(t *testing.T) {
	assert.True(t, Int8.IsQuantized())
	assert.True(t, Int16.IsQuantized())
	assert.True(t, Uint8.IsQuantized())
	assert.False(t, Float32.IsQuantized())
	assert.False(t, Int32.IsQuantized())
}

func TestDataTypeRange(t *testing.T) {
	lo, hi := Int8.Range()
	assert.Equal(t, int32(-128), lo)
	assert.Equal(t, int32(127), hi)

	lo, hi = Int16.Range()
	assert.Equal(t, int32(-32768), lo)
	assert.Equal(t, int32(32767), hi)

	lo, hi = Uint8.Range()
	assert.Equal(t, int32(0), lo)
	assert.Equal(t, int32(255), hi)

	assert.PanicsWithValue(t, "range: float32 is not an integer type", func() { Float32.Range() })
}
