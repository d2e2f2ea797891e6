// SPDX-License-Identifier: MIT
// Package matrix: plain-text rendering.
//
// Purpose:
//   - Emit a matrix as a header line plus one line per row, elements
//     separated by a delimiter, in row-major traversal order.
//
// Format contract (per matrix):
//   - header line (DefaultHeader unless overridden; empty header = no line),
//   - Rows() lines of Cols() elements joined by the delimiter — the
//     delimiter appears BETWEEN elements only, never after the last one,
//   - one blank line terminating the block.
//
// An empty matrix (zero rows or zero columns) renders the header and the
// terminating blank line with no row lines in between, and is not an error.

package matrix

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fprint renders m to w using the package format contract.
// Stage 1 (Validate): non-nil matrix via central validator.
// Stage 2 (Prepare): resolve options over documented defaults.
// Stage 3 (Execute): header, rows (fixed i→j order), terminating blank line.
//
// The matrix is read-only for the duration of the call. Write failures from
// w are propagated wrapped with the Render tag.
//
// Errors: ErrNilMatrix (wrapped), or the underlying io.Writer error.
// Complexity: Time O(r*c), Space O(c) for the per-row buffer.
func Fprint(w io.Writer, m Matrix, opts ...Option) error {
	// Validate the matrix presence.
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opRender, err)
	}
	// Resolve effective options.
	o := gatherOptions(opts...)
	// Read shape once (O(1)).
	r, c := m.Rows(), m.Cols()

	// Emit the header line unless suppressed.
	if o.header != "" {
		if _, err := fmt.Fprintln(w, o.header); err != nil {
			return matrixErrorf(opRender, err)
		}
	}

	// Emit row lines only for a non-degenerate shape; an empty matrix has no body.
	if r > 0 && c > 0 {
		var line strings.Builder // reused per-row buffer
		for i := 0; i < r; i++ {
			line.Reset() // start the row from scratch
			for j := 0; j < c; j++ {
				// Delimiter goes between elements, not after the last one.
				if j > 0 {
					line.WriteString(o.delimiter)
				}
				v := mustAt(m, i, j) // bounds-safe after shape read
				line.WriteString(strconv.FormatInt(v, 10))
			}
			if _, err := fmt.Fprintln(w, line.String()); err != nil {
				return matrixErrorf(opRender, err)
			}
		}
	}

	// Terminate the block with a single blank line.
	if _, err := fmt.Fprintln(w); err != nil {
		return matrixErrorf(opRender, err)
	}

	return nil
}

// Sprint renders m to a string using the same format contract as Fprint.
// Convenience wrapper; allocation is proportional to the rendered size.
// Complexity: O(r*c).
func Sprint(m Matrix, opts ...Option) (string, error) {
	var b strings.Builder
	// Delegate to Fprint; strings.Builder never fails on Write.
	if err := Fprint(&b, m, opts...); err != nil {
		return "", err
	}

	return b.String(), nil
}

// mustAt reads m[i,j] for indices already proven in-range by the caller.
// A failure here would mean the matrix lied about its shape mid-render;
// that is a programmer error, not a user-facing condition.
func mustAt(m Matrix, i, j int) int64 {
	// Dense fast-path: direct flat read.
	if d, ok := m.(*Dense); ok {
		return d.data[i*d.c+j]
	}
	// Generic path: bounds-checked read.
	v, err := m.At(i, j)
	if err != nil {
		panic(matrixErrorf(opRender, err))
	}
	return v
}
