// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the plain-text renderer.
package matrix_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/matsum/matrix"
	"github.com/stretchr/testify/require"
)

// TestFprintFreshFill pins the canonical render: a 4×4 matrix filled from 0
// yields the header, four tab-separated rows, and a terminating blank line —
// with no delimiter after the last element of a row.
func TestFprintFreshFill(t *testing.T) {
	m := mustFilled(t, 4, 4, 0) // rows 0..3, 4..7, 8..11, 12..15

	var sb strings.Builder
	require.NoError(t, matrix.Fprint(&sb, m)) // render with defaults

	expected := "[-] Vector elements: \n" +
		"0\t1\t2\t3\n" +
		"4\t5\t6\t7\n" +
		"8\t9\t10\t11\n" +
		"12\t13\t14\t15\n" +
		"\n"
	require.Equal(t, expected, sb.String()) // exact byte-for-byte format
}

// TestFprintEmptyMatrix verifies a zero-row or zero-column matrix renders
// the header and blank line only, with no row lines and no error.
func TestFprintEmptyMatrix(t *testing.T) {
	for _, m := range []*matrix.Dense{mustDense(t, 0, 4), mustDense(t, 4, 0)} {
		var sb strings.Builder
		require.NoError(t, matrix.Fprint(&sb, m))                  // empty is not an error
		require.Equal(t, "[-] Vector elements: \n\n", sb.String()) // header + blank line, no body
	}
}

// TestFprintNilMatrix ensures a nil matrix is rejected with ErrNilMatrix.
func TestFprintNilMatrix(t *testing.T) {
	var sb strings.Builder
	err := matrix.Fprint(&sb, nil)               // render nothing
	require.ErrorIs(t, err, matrix.ErrNilMatrix) // expect ErrNilMatrix
	require.Empty(t, sb.String())                // nothing was written
}

// TestFprintWithHeader verifies header replacement and suppression.
func TestFprintWithHeader(t *testing.T) {
	m := mustFilled(t, 1, 2, 0) // single row: 0, 1

	var sb strings.Builder
	require.NoError(t, matrix.Fprint(&sb, m, matrix.WithHeader("sum:"))) // custom header
	require.Equal(t, "sum:\n0\t1\n\n", sb.String())                      // replaced header line

	sb.Reset()
	require.NoError(t, matrix.Fprint(&sb, m, matrix.WithHeader(""))) // empty header
	require.Equal(t, "0\t1\n\n", sb.String())                        // header line suppressed
}

// TestFprintWithDelimiter verifies a custom between-element separator.
func TestFprintWithDelimiter(t *testing.T) {
	m := mustFilled(t, 2, 2, 0) // rows 0,1 and 2,3

	var sb strings.Builder
	require.NoError(t, matrix.Fprint(&sb, m, matrix.WithDelimiter(", "))) // comma-space separator
	require.Equal(t, "[-] Vector elements: \n0, 1\n2, 3\n\n", sb.String())
}

// TestWithDelimiterEmptyPanics pins the option-constructor contract:
// an empty delimiter is a programmer error.
func TestWithDelimiterEmptyPanics(t *testing.T) {
	require.Panics(t, func() { matrix.WithDelimiter("") }) // constructor must panic
}

// TestSprintMatchesFprint verifies the string convenience wrapper.
func TestSprintMatchesFprint(t *testing.T) {
	m := mustFilled(t, 2, 3, 10)

	var sb strings.Builder
	require.NoError(t, matrix.Fprint(&sb, m)) // writer form

	s, err := matrix.Sprint(m) // string form
	require.NoError(t, err)
	require.Equal(t, sb.String(), s) // identical output
}

// failWriter fails every write after the first n bytes worth of calls.
type failWriter struct{ calls int }

var errSink = errors.New("sink: write refused")

func (f *failWriter) Write(p []byte) (int, error) {
	f.calls++
	if f.calls > 1 {
		return 0, errSink // fail from the second write on
	}
	return len(p), nil
}

// TestFprintPropagatesWriteErrors ensures writer failures surface to the caller.
func TestFprintPropagatesWriteErrors(t *testing.T) {
	m := mustFilled(t, 2, 2, 0)

	err := matrix.Fprint(&failWriter{}, m) // header succeeds, first row fails
	require.ErrorIs(t, err, errSink)       // underlying writer error preserved
}

// TestFprintGenericFallback verifies rendering through an opaque Matrix
// matches the Dense fast-path byte-for-byte.
func TestFprintGenericFallback(t *testing.T) {
	m := mustFilled(t, 3, 3, 0)

	fast, err := matrix.Sprint(m) // *Dense flat reads
	require.NoError(t, err)
	slow, err := matrix.Sprint(opaque{inner: m}) // forced At-based reads
	require.NoError(t, err)

	require.Equal(t, fast, slow) // identical rendering
}
