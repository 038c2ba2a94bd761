// Package pal is the platform abstraction layer of the micro kernels: pure,
// stateless numeric functions for each (operator, element class) pair.
//
// PAL functions take pooling parameters, NHWC shapes and raw buffers, and
// write every output element exactly once. They never allocate and never
// read outside the input, whatever the padding. Quantized functions take the
// element type tag, since 8-bit and 16-bit pooling differ in accumulator
// width and range:
//
//	int8  accumulates in int32
//	int16 accumulates in int64
//
// Averages round half up before narrowing, and every result is clamped to
// the activation range carried by PoolParams.
package pal
