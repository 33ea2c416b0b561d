package perm

import "errors"

var (
	// ErrOrderOutOfRange is returned when N is outside [0, MaxN] (or [1, MaxN] for an Indexer).
	ErrOrderOutOfRange = errors.New("perm: order out of range")

	// ErrIndexOutOfRange is returned when an index is >= N!.
	ErrIndexOutOfRange = errors.New("perm: index out of range")

	// ErrDimensionMismatch is returned when a buffer or permutation length differs from N.
	ErrDimensionMismatch = errors.New("perm: dimension mismatch")

	// ErrNotPermutation is returned by Encode for input that is not a permutation of {0..N-1}.
	ErrNotPermutation = errors.New("perm: not a permutation")
)
