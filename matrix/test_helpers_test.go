// SPDX-License-Identifier: MIT
// Package matrix_test: shared helpers for the matrix package test suite.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matsum/matrix"
	"github.com/stretchr/testify/require"
)

// mustDense allocates a rows×cols Dense or fails the test immediately.
func mustDense(tb testing.TB, rows, cols int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(rows, cols) // allocate through the strict constructor
	require.NoError(tb, err)              // shape is expected valid in helpers
	return m
}

// mustFilled allocates a rows×cols Dense and fills it from a fresh sequence
// starting at start. Returns the matrix; the sequence is discarded.
func mustFilled(tb testing.TB, rows, cols int, start int64) *matrix.Dense {
	tb.Helper()
	m := mustDense(tb, rows, cols)                     // allocate
	require.NoError(tb, matrix.NewSequence(start).Fill(m)) // deterministic fill
	return m
}

// opaque wraps a Matrix so kernels cannot detect *Dense underneath.
// It forces the generic At/Set fallback paths, which must produce results
// identical to the flat fast-paths.
type opaque struct{ inner matrix.Matrix }

func (o opaque) Rows() int                    { return o.inner.Rows() }
func (o opaque) Cols() int                    { return o.inner.Cols() }
func (o opaque) At(i, j int) (int64, error)   { return o.inner.At(i, j) }
func (o opaque) Set(i, j int, v int64) error  { return o.inner.Set(i, j, v) }
func (o opaque) Clone() matrix.Matrix         { return opaque{inner: o.inner.Clone()} }
