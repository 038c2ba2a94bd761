// Package tensor provides tensor descriptors, shapes and element types for the micro kernels.
package tensor

import "math"

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
//
// Only a subset is understood by the pooling kernels (Float32, Int8, Int16);
// the rest can live in a graph but are rejected at configure time.
const (
	Float32 DataType = iota
	Int8
	Int16
	Uint8
	Int32
	Int64
	Bool
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Int64:
		return 8
	case Int16:
		return 2
	case Int8, Uint8, Bool:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Uint8:
		return "uint8"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// IsQuantized reports whether tensors of this type carry affine quantization parameters.
func (dt DataType) IsQuantized() bool {
	switch dt {
	case Int8, Int16, Uint8:
		return true
	default:
		return false
	}
}

// Range returns the representable integer range of the type.
// Panics for non-integer types.
func (dt DataType) Range() (lo, hi int32) {
	switch dt {
	case Int8:
		return math.MinInt8, math.MaxInt8
	case Int16:
		return math.MinInt16, math.MaxInt16
	case Uint8:
		return 0, math.MaxUint8
	case Int32, Int64:
		return math.MinInt32, math.MaxInt32
	default:
		panic("range: " + dt.String() + " is not an integer type")
	}
}
