// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and accessors return these sentinels, possibly wrapped
// with method context via fmt.Errorf("...: %w", ErrX). Callers match them
// with errors.Is. No function panics on user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested order is invalid (n<1).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside [0,n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals ragged or non-square row input.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Distance was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNegativeWeight is returned when an integer input cell is negative.
	ErrNegativeWeight = errors.New("matrix: negative weight")

	// ErrWeightOverflow is returned when an integer input cell exceeds MaxWeight.
	ErrWeightOverflow = errors.New("matrix: weight exceeds uint32 range")

	// ErrShortBuffer is returned by FromBytes when fewer than n*n bytes are supplied.
	ErrShortBuffer = errors.New("matrix: short buffer")
)
