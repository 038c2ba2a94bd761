//go:build !micro_nofloat

package kernels

// floatKernels enables the float32 execution path.
const floatKernels = true
