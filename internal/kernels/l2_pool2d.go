package kernels

import (
	"github.com/born-ml/micro/internal/graph"
	"github.com/born-ml/micro/internal/pal"
	"github.com/born-ml/micro/internal/tensor"
)

// L2 pooling has no quantized path.
func executeL2Pool2D(p *pal.PoolParams, input *tensor.Descriptor, inData tensor.Buffer, output *tensor.Descriptor, outData tensor.Buffer) {
	dtype := input.DType()
	if dtype == tensor.Float32 && floatKernels {
		pal.L2Pool(p, input.Shape(), inData.AsFloat32(), output.Shape(), outData.AsFloat32())
		return
	}
	panic(unsupportedType(graph.OpL2Pool2D, dtype))
}
