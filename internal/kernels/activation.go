package kernels

import (
	"math"

	"github.com/born-ml/micro/internal/graph"
	"github.com/born-ml/micro/internal/tensor"
)

// floatActivationRange returns the output clamp of a fused activation.
func floatActivationRange(act graph.Activation) (lo, hi float32) {
	switch act {
	case graph.ActivationRelu:
		return 0, math.MaxFloat32
	case graph.ActivationRelu6:
		return 0, 6
	case graph.ActivationReluN1To1:
		return -1, 1
	default:
		return -math.MaxFloat32, math.MaxFloat32
	}
}

// quantizedActivationRange returns the fused activation bounds in the
// output's quantized domain, intersected with the type range.
func quantizedActivationRange(act graph.Activation, dtype tensor.DataType, q tensor.Quantization) (lo, hi int32) {
	lo, hi = dtype.Range()
	switch act {
	case graph.ActivationRelu:
		lo = max(lo, q.Quantize(0))
	case graph.ActivationRelu6:
		lo = max(lo, q.Quantize(0))
		hi = min(hi, q.Quantize(6))
	case graph.ActivationReluN1To1:
		lo = max(lo, q.Quantize(-1))
		hi = min(hi, q.Quantize(1))
	}
	return lo, hi
}
