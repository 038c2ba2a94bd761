package kernels

import (
	"github.com/born-ml/micro/internal/graph"
	"github.com/born-ml/micro/internal/pal"
	"github.com/born-ml/micro/internal/tensor"
)

func executeAveragePool2D(p *pal.PoolParams, input *tensor.Descriptor, inData tensor.Buffer, output *tensor.Descriptor, outData tensor.Buffer) {
	dtype := input.DType()
	switch dtype {
	case tensor.Float32:
		if floatKernels {
			pal.AveragePool(p, input.Shape(), inData.AsFloat32(), output.Shape(), outData.AsFloat32())
			return
		}
	case tensor.Int8, tensor.Int16:
		if quantKernels {
			pal.AveragePoolQuantized(p, input.Shape(), inData.Bytes(), output.Shape(), outData.Bytes(), dtype)
			return
		}
	}
	panic(unsupportedType(graph.OpAveragePool2D, dtype))
}
