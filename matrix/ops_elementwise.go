// SPDX-License-Identifier: MIT
// Package matrix: element-wise kernels over any Matrix implementation,
// including addition, subtraction, the three-address AddInto form, and
// shape-aware equality. All functions perform strict fail-fast validation
// and return clear errors on dimension mismatches.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 on the Dense fast-path; i→j fallback).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.
//   - Integer addition wraps (int64 two's complement); there is no checked add.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd     = "Add"
	opSub     = "Sub"
	opAddInto = "AddInto"
	opEqual   = "Equal"
	opFill    = "Fill"
	opRender  = "Render"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
// Internal helper for Add/Sub to share validation, allocation, and fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix          (from ValidateBinarySameShape when a or b is nil).
//   - ErrDimensionMismatch  (from ValidateBinarySameShape when shapes differ).
//   - ErrInvalidDimensions  (from NewDense; unreachable for validated operands).
//
// Complexity: Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign int64, opTag string) (Matrix, error) {
	// Validate both operands and their shape compatibility.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	// Read shape once (O(1)).
	r, c := a.Rows(), a.Cols()
	// Allocate result dense (O(1) alloc + O(r*c) zeroing by runtime).
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Dense fast-path: single pass over the flat row-major buffers.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := r * c
			for idx := 0; idx < n; idx++ {
				out.data[idx] = da.data[idx] + sign*db.data[idx]
			}
			return out, nil
		}
	}

	// Generic fallback via At/Set (still deterministic).
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, e := a.At(i, j)
			if e != nil {
				return nil, matrixErrorf(opTag, e)
			}
			bv, e := b.At(i, j)
			if e != nil {
				return nil, matrixErrorf(opTag, e)
			}
			_ = out.Set(i, j, av+sign*bv) // bounds-safe write
		}
	}
	return out, nil
}

// Add returns the element-wise sum a + b as a freshly allocated Dense.
// Operands are read-only; their data is never mutated.
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped, matched via errors.Is).
// Complexity: O(r*c) time and space.
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub returns the element-wise difference a - b as a freshly allocated Dense.
// Operands are read-only; their data is never mutated.
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped, matched via errors.Is).
// Complexity: O(r*c) time and space.
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// AddInto computes dst[i,j] = a[i,j] + b[i,j] into an existing destination.
// This is the three-address form: no allocation, dst supplies the storage.
//
// Aliasing dst with a or b is safe: each output position depends only on the
// same input position, so in-place accumulation (AddInto(a, a, b)) is exact.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b), ValidateNotNil(dst),
//     ValidateSameShape(dst, a).
//   - Stage 2: Dense fast-path over flat buffers; At/Set fallback otherwise.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped, matched via errors.Is).
// Complexity: Time O(r*c), Space O(1).
func AddInto(dst, a, b Matrix) error {
	// Validate the operands first (NotNil → NotNil → SameShape).
	if err := ValidateBinarySameShape(a, b); err != nil {
		return matrixErrorf(opAddInto, err)
	}
	// Validate the destination presence.
	if err := ValidateNotNil(dst); err != nil {
		return matrixErrorf(opAddInto, err)
	}
	// Validate the destination shape against the operands.
	if err := ValidateSameShape(dst, a); err != nil {
		return matrixErrorf(opAddInto, err)
	}
	// Read shape once.
	r, c := a.Rows(), a.Cols()

	// Dense fast-path: all three flat buffers, single deterministic pass.
	if dd, okD := dst.(*Dense); okD {
		if da, okA := a.(*Dense); okA {
			if db, okB := b.(*Dense); okB {
				n := r * c
				for idx := 0; idx < n; idx++ {
					dd.data[idx] = da.data[idx] + db.data[idx]
				}
				return nil
			}
		}
	}

	// Generic fallback via At/Set (fixed i→j order).
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, e := a.At(i, j)
			if e != nil {
				return matrixErrorf(opAddInto, e)
			}
			bv, e := b.At(i, j)
			if e != nil {
				return matrixErrorf(opAddInto, e)
			}
			if e = dst.Set(i, j, av+bv); e != nil {
				return matrixErrorf(opAddInto, e)
			}
		}
	}
	return nil
}

// Equal reports whether a and b have identical shapes and identical elements.
// Returns (false, nil) on a plain element mismatch; errors are reserved for
// nil operands and shape mismatches.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped, matched via errors.Is).
// Complexity: Time O(r*c), Space O(1). Early-exits on the first mismatch.
func Equal(a, b Matrix) (bool, error) {
	// Validate presence and shape equality using central validators.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	// Read shape once.
	r, c := a.Rows(), a.Cols()

	// Dense fast-path: compare flat slices directly.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := r * c
			for idx := 0; idx < n; idx++ {
				if da.data[idx] != db.data[idx] {
					return false, nil // early-exit on first mismatch
				}
			}
			return true, nil
		}
	}

	// Generic fallback via At (bounds-safe; still deterministic).
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ := a.At(i, j) // read a(i,j)
			bv, _ := b.At(i, j) // read b(i,j)
			if av != bv {
				return false, nil
			}
		}
	}

	return true, nil
}
