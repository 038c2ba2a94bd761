package pal

import (
	"fmt"

	"github.com/born-ml/micro/internal/tensor"
)

// Padding2D holds the padding applied before and after each spatial axis.
type Padding2D struct {
	Top, Bottom int
	Left, Right int
}

// PoolParams is the shape-derived configuration of a 2D pooling operator.
type PoolParams struct {
	FilterHeight, FilterWidth int
	StrideHeight, StrideWidth int
	Padding                   Padding2D

	// Output clamp for the float path.
	FloatActivationMin, FloatActivationMax float32

	// Output clamp for the quantized path, inside the output type's range.
	QuantizedActivationMin, QuantizedActivationMax int32

	// Requantization from input to output parameters. When Requantize is false
	// input and output share scale and zero point and results stay in the
	// quantized domain.
	Requantize      bool
	Multiplier      float64 // input scale / output scale
	InputZeroPoint  int32
	OutputZeroPoint int32
}

// window clips the filter window of output position (oy, ox) to the input.
// It returns the window origin in input coordinates and the in-bounds filter
// ranges [fy0, fy1) x [fx0, fx1).
func (p *PoolParams) window(oy, ox, inH, inW int) (y0, x0, fy0, fy1, fx0, fx1 int) {
	y0 = oy*p.StrideHeight - p.Padding.Top
	x0 = ox*p.StrideWidth - p.Padding.Left
	fy0 = max(0, -y0)
	fy1 = min(p.FilterHeight, inH-y0)
	fx0 = max(0, -x0)
	fx1 = min(p.FilterWidth, inW-x0)
	if fy1 < fy0 {
		fy1 = fy0
	}
	if fx1 < fx0 {
		fx1 = fx0
	}
	return y0, x0, fy0, fy1, fx0, fx1
}

// checkShapes panics unless both shapes are NHWC with matching batch and
// depth and the buffers hold at least as many elements as the shapes.
func checkShapes(op string, inShape tensor.Shape, inLen int, outShape tensor.Shape, outLen int) {
	if inShape.Rank() != 4 || outShape.Rank() != 4 {
		panic(fmt.Sprintf("%s: expected 4D NHWC shapes, got %v and %v", op, inShape, outShape))
	}
	if inShape[tensor.DimBatch] != outShape[tensor.DimBatch] || inShape[tensor.DimChannels] != outShape[tensor.DimChannels] {
		panic(fmt.Sprintf("%s: batch/depth mismatch between %v and %v", op, inShape, outShape))
	}
	if inLen < inShape.NumElements() || outLen < outShape.NumElements() {
		panic(fmt.Sprintf("%s: buffers (%d, %d elements) smaller than shapes %v, %v", op, inLen, outLen, inShape, outShape))
	}
}

func clampFloat32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
