package pal

import (
	"fmt"
	"math"

	"github.com/born-ml/micro/internal/tensor"
)

// AveragePool performs float 2D average pooling over an NHWC tensor.
//
// Each output element is the mean of the in-bounds input elements of its
// window (padding is not counted), clamped to the float activation range.
//
// Example (2x2 pool, stride=2, VALID):
//
//	Input: [[1,2,3,4],    Output: [[3.5,5.5],
//	        [5,6,7,8],             [11.5,13.5]]
//	        [9,10,11,12],
//	        [13,14,15,16]]
func AveragePool(p *PoolParams, inShape tensor.Shape, in []float32, outShape tensor.Shape, out []float32) {
	checkShapes("average pool", inShape, len(in), outShape, len(out))
	averagePoolFloatImpl(p, inShape, in, outShape, out)
}

// AveragePoolQuantized performs quantized 2D average pooling.
// dtype selects the element width; buffers are raw tensor bytes.
// Panics on any dtype other than Int8 or Int16.
func AveragePoolQuantized(p *PoolParams, inShape tensor.Shape, in []byte, outShape tensor.Shape, out []byte, dtype tensor.DataType) {
	switch dtype {
	case tensor.Int8:
		inData, outData := tensor.Int8View(in), tensor.Int8View(out)
		checkShapes("average pool", inShape, len(inData), outShape, len(outData))
		averagePoolInt[int8, int32](p, inShape, inData, outShape, outData)
	case tensor.Int16:
		inData, outData := tensor.Int16View(in), tensor.Int16View(out)
		checkShapes("average pool", inShape, len(inData), outShape, len(outData))
		averagePoolInt[int16, int64](p, inShape, inData, outShape, outData)
	default:
		panic(fmt.Sprintf("average pool: unsupported quantized type %s", dtype))
	}
}

// averagePoolFloatGeneric walks output elements channel by channel.
func averagePoolFloatGeneric(p *PoolParams, inShape tensor.Shape, in []float32, outShape tensor.Shape, out []float32) {
	batches, depth := inShape[tensor.DimBatch], inShape[tensor.DimChannels]
	inH, inW := inShape[tensor.DimHeight], inShape[tensor.DimWidth]
	outH, outW := outShape[tensor.DimHeight], outShape[tensor.DimWidth]

	for b := 0; b < batches; b++ {
		for oy := 0; oy < outH; oy++ {
			for ox := 0; ox < outW; ox++ {
				y0, x0, fy0, fy1, fx0, fx1 := p.window(oy, ox, inH, inW)
				count := (fy1 - fy0) * (fx1 - fx0)

				for c := 0; c < depth; c++ {
					var sum float64
					for fy := fy0; fy < fy1; fy++ {
						for fx := fx0; fx < fx1; fx++ {
							sum += float64(in[inShape.Offset4D(b, y0+fy, x0+fx, c)])
						}
					}
					out[outShape.Offset4D(b, oy, ox, c)] = clampFloat32(mean(sum, count), p.FloatActivationMin, p.FloatActivationMax)
				}
			}
		}
	}
}

// averagePoolFloatChannelMajor accumulates contiguous channel rows in blocks of
// channelBlock float64 lanes. Summation order per channel matches the generic
// path, so results are bit-identical.
func averagePoolFloatChannelMajor(p *PoolParams, inShape tensor.Shape, in []float32, outShape tensor.Shape, out []float32) {
	batches, depth := inShape[tensor.DimBatch], inShape[tensor.DimChannels]
	inH, inW := inShape[tensor.DimHeight], inShape[tensor.DimWidth]
	outH, outW := outShape[tensor.DimHeight], outShape[tensor.DimWidth]

	var acc [channelBlock]float64
	for b := 0; b < batches; b++ {
		for oy := 0; oy < outH; oy++ {
			for ox := 0; ox < outW; ox++ {
				y0, x0, fy0, fy1, fx0, fx1 := p.window(oy, ox, inH, inW)
				count := (fy1 - fy0) * (fx1 - fx0)
				outBase := outShape.Offset4D(b, oy, ox, 0)

				for c0 := 0; c0 < depth; c0 += channelBlock {
					n := min(channelBlock, depth-c0)
					sums := acc[:n]
					clear(sums)

					for fy := fy0; fy < fy1; fy++ {
						for fx := fx0; fx < fx1; fx++ {
							inBase := inShape.Offset4D(b, y0+fy, x0+fx, c0)
							accumulateFloat32(sums, in[inBase:inBase+n])
						}
					}

					dst := out[outBase+c0 : outBase+c0+n]
					for c, sum := range sums {
						dst[c] = clampFloat32(mean(sum, count), p.FloatActivationMin, p.FloatActivationMax)
					}
				}
			}
		}
	}
}

// mean narrows sum/count to float32. A float64 sum of fewer than 2^29 equal
// float32 values is exact, so a uniform window averages to its value.
// An empty window yields 0.
func mean(sum float64, count int) float32 {
	if count == 0 {
		return 0
	}
	return float32(sum / float64(count))
}

// averagePoolInt is the quantized average. A is the accumulator type and must
// be wider than T.
func averagePoolInt[T int8 | int16, A int32 | int64](p *PoolParams, inShape tensor.Shape, in []T, outShape tensor.Shape, out []T) {
	batches, depth := inShape[tensor.DimBatch], inShape[tensor.DimChannels]
	inH, inW := inShape[tensor.DimHeight], inShape[tensor.DimWidth]
	outH, outW := outShape[tensor.DimHeight], outShape[tensor.DimWidth]
	lo, hi := p.QuantizedActivationMin, p.QuantizedActivationMax

	for b := 0; b < batches; b++ {
		for oy := 0; oy < outH; oy++ {
			for ox := 0; ox < outW; ox++ {
				y0, x0, fy0, fy1, fx0, fx1 := p.window(oy, ox, inH, inW)
				count := A((fy1 - fy0) * (fx1 - fx0))

				for c := 0; c < depth; c++ {
					var sum A
					for fy := fy0; fy < fy1; fy++ {
						for fx := fx0; fx < fx1; fx++ {
							sum += A(in[inShape.Offset4D(b, y0+fy, x0+fx, c)])
						}
					}

					var v int32
					switch {
					case count == 0:
						v = p.OutputZeroPoint
					case p.Requantize:
						mean := float64(sum) / float64(count)
						v = requantize(mean, p)
					default:
						v = int32(roundHalfUpDiv(sum, count))
					}
					out[outShape.Offset4D(b, oy, ox, c)] = T(clampInt32(v, lo, hi))
				}
			}
		}
	}
}

// roundHalfUpDiv returns floor(sum/n + 1/2) for n > 0, computed exactly as
// floor((2*sum + n) / (2*n)).
func roundHalfUpDiv[A int32 | int64](sum, n A) A {
	num, den := 2*sum+n, 2*n
	q := num / den
	if num%den != 0 && num < 0 {
		q--
	}
	return q
}

// requantize maps a value expressed in input quantization units to the
// output quantization, rounding half up. The result saturates to int32 so
// that the caller's clamp sees an ordered value.
func requantize(v float64, p *PoolParams) int32 {
	r := math.Floor((v-float64(p.InputZeroPoint))*p.Multiplier+0.5) + float64(p.OutputZeroPoint)
	switch {
	case r < math.MinInt32:
		return math.MinInt32
	case r > math.MaxInt32:
		return math.MaxInt32
	}
	return int32(r)
}
