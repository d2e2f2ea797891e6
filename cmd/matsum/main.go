// SPDX-License-Identifier: MIT
// Command matsum is the classic fill→add→print matrix demo.
//
// It allocates three 4×4 integer matrices, fills the first two from a single
// running sequence (A gets 0..15, B continues with 16..31), computes
// C = A + B element-wise, and prints all three to standard output.
//
// The configuration is fixed: no flags, no environment variables, no config
// file. The process exits 0 on success; any failure is reported on stderr
// and the process exits 1.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/matsum/matrix"
)

// Fixed demo dimensions. Deliberately constants: the program surface has no
// configuration, only the library layer is parameterizable.
const (
	matRows = 4 // rows per matrix
	matCols = 4 // columns per matrix
)

// run executes the whole demo against w and returns the first failure.
// Stage 1 (Prepare): allocate A, B, C.
// Stage 2 (Execute): fill A, fill B (sequence continues), C = A + B.
// Stage 3 (Finalize): render A, then B, then C.
//
// All three matrices are owned by this scope and become collectable when it
// returns. Single-threaded, no suspension points.
func run(w io.Writer) error {
	// Allocate the two operands and the result.
	a, err := matrix.NewDense(matRows, matCols)
	if err != nil {
		return fmt.Errorf("allocate a: %w", err)
	}
	b, err := matrix.NewDense(matRows, matCols)
	if err != nil {
		return fmt.Errorf("allocate b: %w", err)
	}
	c, err := matrix.NewDense(matRows, matCols)
	if err != nil {
		return fmt.Errorf("allocate c: %w", err)
	}

	// One sequence feeds both fills, so B continues where A stopped.
	seq := matrix.NewSequence(0)
	if err = seq.Fill(a); err != nil {
		return fmt.Errorf("fill a: %w", err)
	}
	if err = seq.Fill(b); err != nil {
		return fmt.Errorf("fill b: %w", err)
	}

	// Element-wise sum into the pre-allocated result.
	if err = matrix.AddInto(c, a, b); err != nil {
		return fmt.Errorf("add a+b: %w", err)
	}

	// Print operands and result in fixed order: A, B, C.
	for _, m := range []matrix.Matrix{a, b, c} {
		if err = matrix.Fprint(w, m); err != nil {
			return fmt.Errorf("print: %w", err)
		}
	}

	return nil
}

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "matsum:", err)
		os.Exit(1)
	}
}
