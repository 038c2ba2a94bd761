package tensor

import (
	"math"

	"github.com/pkg/errors"
)

// Quantization holds per-tensor affine quantization parameters:
//
//	real = Scale * (q - ZeroPoint)
type Quantization struct {
	Scale     float32
	ZeroPoint int32
}

// Validate checks the parameters against the element type they describe.
func (q Quantization) Validate(dtype DataType) error {
	if !dtype.IsQuantized() {
		return errors.Errorf("quantization parameters given for non-quantized type %s", dtype)
	}
	if !(q.Scale > 0) || math.IsInf(float64(q.Scale), 0) {
		return errors.Errorf("quantization scale must be positive and finite, got %g", q.Scale)
	}
	lo, hi := dtype.Range()
	if q.ZeroPoint < lo || q.ZeroPoint > hi {
		return errors.Errorf("zero point %d outside %s range [%d, %d]", q.ZeroPoint, dtype, lo, hi)
	}
	return nil
}

// Quantize maps a real value to the nearest quantized level. The result is
// not clamped to any element type; it only saturates at the int32 limits.
func (q Quantization) Quantize(real float32) int32 {
	v := float64(q.ZeroPoint) + math.Round(float64(real)/float64(q.Scale))
	switch {
	case v < math.MinInt32:
		return math.MinInt32
	case v > math.MaxInt32:
		return math.MaxInt32
	}
	return int32(v)
}

// Dequantize maps a quantized level back to a real value.
func (q Quantization) Dequantize(v int32) float32 {
	return q.Scale * float32(v-q.ZeroPoint)
}
