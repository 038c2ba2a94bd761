package tensor

import (
	"fmt"
	"unsafe"
)

// Buffer is a borrowed view of a tensor's backing memory.
//
// A Buffer does not own its bytes: the runtime graph does. It is valid only for
// the duration of the call that obtained it and must not be retained.
type Buffer struct {
	data  []byte
	dtype DataType
	n     int
}

// NewBuffer wraps data as a view of n elements of dtype.
// Panics if data is too short.
func NewBuffer(data []byte, dtype DataType, n int) Buffer {
	if len(data) < n*dtype.Size() {
		panic(fmt.Sprintf("buffer: %d bytes cannot hold %d %s elements", len(data), n, dtype))
	}
	return Buffer{data: data, dtype: dtype, n: n}
}

// DType returns the element type of the view.
func (b Buffer) DType() DataType {
	return b.dtype
}

// Len returns the number of elements.
func (b Buffer) Len() int {
	return b.n
}

// Bytes returns the raw bytes.
// WARNING: Direct access to underlying memory. Use with caution.
func (b Buffer) Bytes() []byte {
	return b.data[:b.n*b.dtype.Size()]
}

// AsFloat32 interprets the data as []float32.
// Panics if the view's dtype is not Float32.
func (b Buffer) AsFloat32() []float32 {
	if b.dtype != Float32 {
		panic(fmt.Sprintf("tensor dtype is %s, not float32", b.dtype))
	}
	return Float32View(b.Bytes())
}

// AsInt8 interprets the data as []int8.
// Panics if the view's dtype is not Int8.
func (b Buffer) AsInt8() []int8 {
	if b.dtype != Int8 {
		panic(fmt.Sprintf("tensor dtype is %s, not int8", b.dtype))
	}
	return Int8View(b.Bytes())
}

// AsInt16 interprets the data as []int16.
// Panics if the view's dtype is not Int16.
func (b Buffer) AsInt16() []int16 {
	if b.dtype != Int16 {
		panic(fmt.Sprintf("tensor dtype is %s, not int16", b.dtype))
	}
	return Int16View(b.Bytes())
}

// Float32View reinterprets raw bytes as []float32 without copying.
func Float32View(data []byte) []float32 {
	if len(data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy performance, length derived from byte count
	return unsafe.Slice((*float32)(unsafe.Pointer(&data[0])), len(data)/4)
}

// Int8View reinterprets raw bytes as []int8 without copying.
func Int8View(data []byte) []int8 {
	if len(data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy performance, length derived from byte count
	return unsafe.Slice((*int8)(unsafe.Pointer(&data[0])), len(data))
}

// Int16View reinterprets raw bytes as []int16 without copying.
func Int16View(data []byte) []int16 {
	if len(data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy performance, length derived from byte count
	return unsafe.Slice((*int16)(unsafe.Pointer(&data[0])), len(data)/2)
}
