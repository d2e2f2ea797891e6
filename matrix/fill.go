// SPDX-License-Identifier: MIT
// Package matrix: sequential fill.
//
// Purpose:
//   - Replace the classic "static counter inside the fill routine" with an
//     explicit, caller-owned Sequence value. The counter is ordinary state
//     threaded by the caller, not hidden package-level mutability.
//
// Determinism & Performance:
//   - Fill walks the matrix in fixed row-major order (i→j), one counter
//     tick per element; the Dense fast-path writes the flat buffer directly.
//   - No global state: two Sequence values never interact.

package matrix

// Sequence is a monotonically increasing int64 value source used to populate
// matrix elements deterministically. The zero value counts from 0.
//
// A single Sequence keeps counting across successive Fill calls, so filling
// two matrices back to back produces one uninterrupted run of values.
// Sequence is not safe for concurrent use; callers own the instance.
type Sequence struct {
	next int64 // value returned by the next call to Next
}

// NewSequence returns a Sequence whose first produced value is start.
// Complexity: O(1).
func NewSequence(start int64) *Sequence {
	return &Sequence{next: start}
}

// Next returns the current counter value and advances the counter by one.
// The counter wraps at the int64 boundary (two's complement), matching the
// package-wide integer policy.
// Complexity: O(1).
func (s *Sequence) Next() int64 {
	v := s.next // capture current value
	s.next++    // advance for the subsequent call
	return v
}

// Value returns the counter value the next Next call will produce,
// without advancing it. Useful for asserting counter progression.
// Complexity: O(1).
func (s *Sequence) Value() int64 {
	return s.next
}

// Fill writes Rows()*Cols() consecutive counter values into m in row-major
// order, one Next() per element. The Sequence advances by exactly
// Rows()*Cols(), so a subsequent Fill on another matrix continues the run.
//
// Implementation:
//   - Stage 1 (Validate): non-nil sequence, non-nil matrix.
//   - Stage 2 (Execute): Dense fast-path over the flat buffer; At/Set
//     fallback with fixed i→j order otherwise.
//
// An empty matrix (zero rows or columns) is a valid no-op: nothing is
// written and the counter does not advance.
//
// Errors: ErrNilSequence, ErrNilMatrix (wrapped, matched via errors.Is).
// Complexity: Time O(r*c), Space O(1).
func (s *Sequence) Fill(m Matrix) error {
	// Validate the receiver: a nil sequence has no counter to advance.
	if s == nil {
		return matrixErrorf(opFill, ErrNilSequence)
	}
	// Validate the target matrix presence.
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opFill, err)
	}
	// Read shape once (O(1)).
	r, c := m.Rows(), m.Cols()

	// Dense fast-path: single pass over the flat row-major buffer.
	if d, ok := m.(*Dense); ok {
		n := r * c
		for idx := 0; idx < n; idx++ {
			d.data[idx] = s.Next() // one counter tick per element
		}
		return nil
	}

	// Generic fallback via Set (fixed i→j order keeps row-major semantics).
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err := m.Set(i, j, s.Next()); err != nil {
				return matrixErrorf(opFill, err)
			}
		}
	}
	return nil
}
