// Package matrix offers dense integer matrices with deterministic
// fill, element-wise arithmetic, and plain-text rendering.
//
// The matrix package provides:
//
//   - Dense, a row-major int64 matrix with O(1) bounds-checked access
//     and O(r*c) memory.
//   - Sequence, an explicit fill counter that populates matrices in
//     row-major order and keeps counting across calls.
//   - Add/Sub/AddInto element-wise kernels with strict fail-fast shape
//     validation.
//   - Fprint/Sprint renderers that write a header line plus one
//     tab-separated line per row, with no delimiter after the final
//     element of a row.
//
// All operations are single-threaded and deterministic: fixed loop
// orders, no global state, no implicit randomness. Integer addition
// uses native int64 two's-complement wraparound.
//
// See the examples in this package for usage patterns.
package matrix
