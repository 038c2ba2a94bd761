// Package kernels implements the operator kernels of the micro interpreter.
//
// Every kernel follows the same two-phase contract:
//
//   - Configure resolves the operator's tensors, validates shapes and types,
//     and caches shape-derived parameters on the kernel instance. It returns a
//     *ConfigError when the operator is invalid for its tensors.
//   - Execute borrows the live tensor buffers from the runtime graph,
//     dispatches on the input element type and calls the matching PAL
//     function. It never allocates or recomputes shapes.
//
// Execute before a successful Configure, or an element type outside the
// supported set reaching Execute, is a defect in the caller and panics.
//
// Kernel instances are not safe for concurrent use.
package kernels
