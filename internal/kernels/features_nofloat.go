//go:build micro_nofloat

package kernels

const floatKernels = false
