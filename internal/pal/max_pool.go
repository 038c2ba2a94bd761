package pal

import (
	"fmt"
	"math"

	"github.com/born-ml/micro/internal/tensor"
)

// MaxPool performs float 2D max pooling over an NHWC tensor.
//
// Padded positions never win: only in-bounds input elements are compared.
// A window with no in-bounds element yields 0 before clamping.
func MaxPool(p *PoolParams, inShape tensor.Shape, in []float32, outShape tensor.Shape, out []float32) {
	checkShapes("max pool", inShape, len(in), outShape, len(out))
	maxPoolFloatImpl(p, inShape, in, outShape, out)
}

// MaxPoolQuantized performs quantized 2D max pooling.
// Panics on any dtype other than Int8 or Int16.
func MaxPoolQuantized(p *PoolParams, inShape tensor.Shape, in []byte, outShape tensor.Shape, out []byte, dtype tensor.DataType) {
	switch dtype {
	case tensor.Int8:
		inData, outData := tensor.Int8View(in), tensor.Int8View(out)
		checkShapes("max pool", inShape, len(inData), outShape, len(outData))
		maxPoolInt(p, inShape, inData, outShape, outData)
	case tensor.Int16:
		inData, outData := tensor.Int16View(in), tensor.Int16View(out)
		checkShapes("max pool", inShape, len(inData), outShape, len(outData))
		maxPoolInt(p, inShape, inData, outShape, outData)
	default:
		panic(fmt.Sprintf("max pool: unsupported quantized type %s", dtype))
	}
}

func maxPoolFloatGeneric(p *PoolParams, inShape tensor.Shape, in []float32, outShape tensor.Shape, out []float32) {
	batches, depth := inShape[tensor.DimBatch], inShape[tensor.DimChannels]
	inH, inW := inShape[tensor.DimHeight], inShape[tensor.DimWidth]
	outH, outW := outShape[tensor.DimHeight], outShape[tensor.DimWidth]

	for b := 0; b < batches; b++ {
		for oy := 0; oy < outH; oy++ {
			for ox := 0; ox < outW; ox++ {
				y0, x0, fy0, fy1, fx0, fx1 := p.window(oy, ox, inH, inW)
				empty := fy1 == fy0 || fx1 == fx0

				for c := 0; c < depth; c++ {
					maxVal := float32(-math.MaxFloat32)
					for fy := fy0; fy < fy1; fy++ {
						for fx := fx0; fx < fx1; fx++ {
							if v := in[inShape.Offset4D(b, y0+fy, x0+fx, c)]; v > maxVal {
								maxVal = v
							}
						}
					}
					if empty {
						maxVal = 0
					}
					out[outShape.Offset4D(b, oy, ox, c)] = clampFloat32(maxVal, p.FloatActivationMin, p.FloatActivationMax)
				}
			}
		}
	}
}

func maxPoolFloatChannelMajor(p *PoolParams, inShape tensor.Shape, in []float32, outShape tensor.Shape, out []float32) {
	batches, depth := inShape[tensor.DimBatch], inShape[tensor.DimChannels]
	inH, inW := inShape[tensor.DimHeight], inShape[tensor.DimWidth]
	outH, outW := outShape[tensor.DimHeight], outShape[tensor.DimWidth]

	for b := 0; b < batches; b++ {
		for oy := 0; oy < outH; oy++ {
			for ox := 0; ox < outW; ox++ {
				y0, x0, fy0, fy1, fx0, fx1 := p.window(oy, ox, inH, inW)

				outBase := outShape.Offset4D(b, oy, ox, 0)
				dst := out[outBase : outBase+depth]
				if fy1 == fy0 || fx1 == fx0 {
					clear(dst)
				} else {
					for c := range dst {
						dst[c] = -math.MaxFloat32
					}
				}

				for fy := fy0; fy < fy1; fy++ {
					for fx := fx0; fx < fx1; fx++ {
						inBase := inShape.Offset4D(b, y0+fy, x0+fx, 0)
						maxFloat32(dst, in[inBase:inBase+depth])
					}
				}

				for c := range dst {
					dst[c] = clampFloat32(dst[c], p.FloatActivationMin, p.FloatActivationMax)
				}
			}
		}
	}
}

func maxPoolInt[T int8 | int16](p *PoolParams, inShape tensor.Shape, in []T, outShape tensor.Shape, out []T) {
	batches, depth := inShape[tensor.DimBatch], inShape[tensor.DimChannels]
	inH, inW := inShape[tensor.DimHeight], inShape[tensor.DimWidth]
	outH, outW := outShape[tensor.DimHeight], outShape[tensor.DimWidth]
	lo, hi := p.QuantizedActivationMin, p.QuantizedActivationMax

	for b := 0; b < batches; b++ {
		for oy := 0; oy < outH; oy++ {
			for ox := 0; ox < outW; ox++ {
				y0, x0, fy0, fy1, fx0, fx1 := p.window(oy, ox, inH, inW)
				empty := fy1 == fy0 || fx1 == fx0

				for c := 0; c < depth; c++ {
					maxVal := int32(math.MinInt32)
					for fy := fy0; fy < fy1; fy++ {
						for fx := fx0; fx < fx1; fx++ {
							if v := int32(in[inShape.Offset4D(b, y0+fy, x0+fx, c)]); v > maxVal {
								maxVal = v
							}
						}
					}

					switch {
					case empty:
						maxVal = p.OutputZeroPoint
					case p.Requantize:
						maxVal = requantize(float64(maxVal), p)
					}
					out[outShape.Offset4D(b, oy, ox, c)] = T(clampInt32(maxVal, lo, hi))
				}
			}
		}
	}
}
