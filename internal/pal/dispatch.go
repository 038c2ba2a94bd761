package pal

import "golang.org/x/sys/cpu"

// Float pooling implementations, chosen once at init from CPU features.
var (
	averagePoolFloatImpl = averagePoolFloatGeneric
	maxPoolFloatImpl     = maxPoolFloatGeneric
	implName             = "generic"
)

func init() {
	if cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD {
		useChannelMajor()
	}
}

// Implementation returns the name of the float pooling implementation in use.
func Implementation() string {
	return implName
}

// UseGeneric forces the portable per-channel implementation.
// Not safe to call while kernels are executing.
func UseGeneric() {
	averagePoolFloatImpl = averagePoolFloatGeneric
	maxPoolFloatImpl = maxPoolFloatGeneric
	implName = "generic"
}

// useChannelMajor selects the channel-contiguous implementation, whose inner
// loops run over contiguous NHWC channel rows.
func useChannelMajor() {
	averagePoolFloatImpl = averagePoolFloatChannelMajor
	maxPoolFloatImpl = maxPoolFloatChannelMajor
	implName = "channel-major"
}

// channelBlock is the number of float64 accumulator lanes the channel-major
// average keeps on the stack.
const channelBlock = 32

// accumulateFloat32 computes dst[i] += float64(src[i]), four lanes at a time.
func accumulateFloat32(dst []float64, src []float32) {
	n := len(dst)
	src = src[:n]
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] += float64(src[i])
		dst[i+1] += float64(src[i+1])
		dst[i+2] += float64(src[i+2])
		dst[i+3] += float64(src[i+3])
	}
	for ; i < n; i++ {
		dst[i] += float64(src[i])
	}
}

// maxFloat32 computes dst[i] = max(dst[i], src[i]), four lanes at a time.
func maxFloat32(dst, src []float32) {
	n := len(dst)
	src = src[:n]
	i := 0
	for ; i+4 <= n; i += 4 {
		if src[i] > dst[i] {
			dst[i] = src[i]
		}
		if src[i+1] > dst[i+1] {
			dst[i+1] = src[i+1]
		}
		if src[i+2] > dst[i+2] {
			dst[i+2] = src[i+2]
		}
		if src[i+3] > dst[i+3] {
			dst[i+3] = src[i+3]
		}
	}
	for ; i < n; i++ {
		if src[i] > dst[i] {
			dst[i] = src[i]
		}
	}
}
