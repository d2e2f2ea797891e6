// Package matsum is a tiny, deterministic playground for integer matrices —
// fill them from a running sequence, sum them element-wise, and render them
// as plain text.
//
// 🚀 What is matsum?
//
//	A small, zero-surprise library plus a demo binary that brings together:
//		• Dense matrices: flat row-major int64 storage with bounds-checked access
//		• Sequential fill: an explicit counter that continues across matrices
//		• Element-wise ops: Add / Sub with strict shape validation
//		• Rendering: tab-separated rows on any io.Writer, no trailing delimiter
//
// ✨ Why choose matsum?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed loop orders, no global state, no hidden randomness
//   - Pure Go – no cgo, no hidden deps
//   - Safe by construction – sentinel errors instead of undefined behavior
//
// Under the hood, everything is organized under two directories:
//
//	matrix/     — Dense matrix, Sequence filler, element-wise kernels, renderer
//	cmd/matsum/ — the fixed 4×4 fill→add→print demo program
//
// Quick sketch of what the demo prints:
//
//	[-] Vector elements:
//	0	1	2	3
//	4	5	6	7
//	8	9	10	11
//	12	13	14	15
//
// followed by the second operand (continuing the sequence at 16) and the sum.
//
//	go get github.com/katalvlaran/matsum/matrix
package matsum
