// Package tsp — tour utilities.
//
// Helpers operating purely on tour structure (index sequences):
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - MakeTourFromPermutation: closed tour rotated to a start vertex.
//   - ReverseTour: the mirror traversal visiting the same cycle backwards.
//   - DebugString: compact printable representation.
//
// No logging, no panics on user input — only sentinel errors from types.go.
package tsp

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
// A wrong length reports ErrDimensionMismatch; an out-of-range or repeated
// element reports ErrNotPermutation.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("position %d value %d: %w", i, v, ErrNotPermutation)
		}
		seen[v] = true
	}

	return nil
}

// MakeTourFromPermutation builds a closed tour of length n+1 from a
// permutation, rotated so that tour[0] == tour[n] == start.
//
// Complexity: O(n) time, O(n) space.
func MakeTourFromPermutation(perm []int, n int, start int) ([]int, error) {
	if err := ValidatePermutation(perm, n); err != nil {
		return nil, err
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	var (
		i     int
		pivot int
	)
	for i = 0; i < n; i++ {
		if perm[i] == start {
			pivot = i
			break
		}
	}

	tour := make([]int, n+1)
	for i = 0; i < n; i++ {
		tour[i] = perm[(pivot+i)%n]
	}
	tour[n] = start

	return tour, nil
}

// ReverseTour returns a fresh slice with perm traversed backwards.
// On a symmetric matrix it has the same cyclic cost as perm.
//
// Complexity: O(n).
func ReverseTour(perm []int) []int {
	var (
		n   = len(perm)
		out = make([]int, n)
		i   int
	)
	for i = 0; i < n; i++ {
		out[i] = perm[n-1-i]
	}

	return out
}

// DebugString renders a tour as "a→b→…→a", closing the cycle if the input
// is an open permutation.
func DebugString(tour []int) string {
	if len(tour) == 0 {
		return "∅"
	}

	var (
		b strings.Builder
		i int
	)
	for i = 0; i < len(tour); i++ {
		if i > 0 {
			b.WriteString("→")
		}
		b.WriteString(strconv.Itoa(tour[i]))
	}
	if len(tour) == 1 || tour[0] != tour[len(tour)-1] {
		b.WriteString("→")
		b.WriteString(strconv.Itoa(tour[0]))
	}

	return b.String()
}
