package kernels

import "github.com/born-ml/micro/internal/graph"

// OutputSize returns the pooled size of one spatial dimension.
//
//	VALID: floor((in - filter) / stride) + 1, or 0 if the filter does not fit
//	SAME:  ceil(in / stride)
//
// A non-positive filter or stride yields 0; Configure rejects such attributes.
func OutputSize(padding graph.Padding, in, filter, stride int) int {
	if filter <= 0 || stride <= 0 {
		return 0
	}
	switch padding {
	case graph.PaddingSame:
		return (in + stride - 1) / stride
	case graph.PaddingValid:
		if in < filter {
			return 0
		}
		return (in-filter)/stride + 1
	default:
		return 0
	}
}

// ComputePadding splits the padding needed to produce out elements of one
// spatial dimension. The extra unit of an odd total goes after.
// For VALID output sizes the total is always 0.
func ComputePadding(stride, in, filter, out int) (before, after int) {
	total := max(0, (out-1)*stride+filter-in)
	before = total / 2
	return before, total - before
}
