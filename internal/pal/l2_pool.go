package pal

import (
	"math"

	"github.com/born-ml/micro/internal/tensor"
)

// L2Pool performs float 2D L2 pooling: sqrt(mean(x^2)) over the in-bounds
// elements of each window, clamped to the float activation range.
func L2Pool(p *PoolParams, inShape tensor.Shape, in []float32, outShape tensor.Shape, out []float32) {
	checkShapes("l2 pool", inShape, len(in), outShape, len(out))

	batches, depth := inShape[tensor.DimBatch], inShape[tensor.DimChannels]
	inH, inW := inShape[tensor.DimHeight], inShape[tensor.DimWidth]
	outH, outW := outShape[tensor.DimHeight], outShape[tensor.DimWidth]

	for b := 0; b < batches; b++ {
		for oy := 0; oy < outH; oy++ {
			for ox := 0; ox < outW; ox++ {
				y0, x0, fy0, fy1, fx0, fx1 := p.window(oy, ox, inH, inW)
				count := (fy1 - fy0) * (fx1 - fx0)

				for c := 0; c < depth; c++ {
					var sumSq float64
					for fy := fy0; fy < fy1; fy++ {
						for fx := fx0; fx < fx1; fx++ {
							v := float64(in[inShape.Offset4D(b, y0+fy, x0+fx, c)])
							sumSq += v * v
						}
					}

					var l2 float32
					if count > 0 {
						l2 = float32(math.Sqrt(sumSq / float64(count)))
					}
					out[outShape.Offset4D(b, oy, ox, c)] = clampFloat32(l2, p.FloatActivationMin, p.FloatActivationMax)
				}
			}
		}
	}
}
