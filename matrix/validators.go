// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for shape checks shared by the From* constructors.
//   - Return plain sentinel errors so call sites can wrap uniformly.

package matrix

import "fmt"

// squareOrder validates a row-count/row-length pair and returns the order n.
// rowLen(i) must report the length of row i.
//
// Returns ErrBadShape for zero rows and ErrNonSquare if any row length != rows.
// Complexity: O(rows).
func squareOrder(rows int, rowLen func(i int) int) (int, error) {
	if rows == 0 {
		return 0, ErrBadShape
	}

	var i int
	for i = 0; i < rows; i++ {
		if rowLen(i) != rows {
			return 0, fmt.Errorf("row %d has %d cells, want %d: %w", i, rowLen(i), rows, ErrNonSquare)
		}
	}

	return rows, nil
}

// ValidateSquare reports ErrNilMatrix for a nil matrix and nil otherwise.
// A non-nil Distance is square by construction.
func ValidateSquare(d *Distance) error {
	if d == nil || d.n < 1 {
		return fmt.Errorf("ValidateSquare: %w", ErrNilMatrix)
	}

	return nil
}
