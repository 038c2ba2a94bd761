//go:build !micro_noquant

package kernels

// quantKernels enables the int8/int16 execution paths.
const quantKernels = true
