//go:build micro_noquant

package kernels

const quantKernels = false
