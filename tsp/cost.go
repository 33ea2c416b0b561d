// Package tsp — cyclic tour cost.
//
// TourCost is the checked public entry point; tourCost is the unchecked hot
// path used by the sweep, whose indices and node ids are in range by
// construction and whose sums were bounded at Ingest.
//
// Complexity: O(n) time, O(1) extra space.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/lanetsp/matrix"
)

// TourCost returns Σ d[perm[i]][perm[i+1]] + d[perm[n-1]][perm[0]].
//
// Contract:
//   - len(perm) == d.N() (ErrDimensionMismatch otherwise).
//   - perm is a permutation of {0..n-1} (ErrNotPermutation otherwise).
//   - The sum must stay below SentinelCost (ErrCostOverflow otherwise).
//
// Complexity: O(n).
func TourCost(d *matrix.Distance, perm []int) (Cost, error) {
	if d == nil {
		return 0, ErrNilMatrix
	}
	var n = d.N()
	if err := ValidatePermutation(perm, n); err != nil {
		return 0, fmt.Errorf("TourCost: %w", err)
	}

	var (
		flat = d.Flat()
		sum  uint64
		i    int
	)
	for i = 0; i < n-1; i++ {
		sum += uint64(flat[perm[i]*n+perm[i+1]])
	}
	sum += uint64(flat[perm[n-1]*n+perm[0]])
	if sum >= uint64(SentinelCost) {
		return 0, fmt.Errorf("TourCost: sum %d: %w", sum, ErrCostOverflow)
	}

	return Cost(sum), nil
}

// tourCost is the unchecked kernel over a row-major n×n weight slice.
// Preconditions: perm is a permutation of {0..n-1}; n·maxWeight < SentinelCost.
func tourCost(flat []Weight, n int, perm []int) Cost {
	var (
		sum Cost
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += flat[perm[i]*n+perm[i+1]]
	}

	return sum + flat[perm[n-1]*n+perm[0]]
}
