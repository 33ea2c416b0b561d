// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/katalvlaran/lanetsp/matrix"
)

// Random returns an n×n matrix with a zero diagonal and off-diagonal weights
// drawn from the configured WeightFn. Symmetric instances draw the upper
// triangle in row-major order and mirror it; asymmetric ones draw every
// off-diagonal cell in row-major order.
// Complexity: O(n²).
func Random(n int, opts ...BuilderOption) (*matrix.Distance, error) {
	if n < MinNodes {
		return nil, builderErrorf(methodRandom, ErrTooFewNodes, "n=%d < min=%d", n, MinNodes)
	}
	cfg := newBuilderConfig(opts...)
	d, err := matrix.NewDistance(n)
	if err != nil {
		return nil, builderErrorf(methodRandom, err, "n=%d", n)
	}

	var (
		i, j int
		w    matrix.Weight
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j || (cfg.symmetric && j < i) {
				continue
			}
			w = cfg.weightFn(cfg.rng)
			_ = d.Set(i, j, w)
			if cfg.symmetric {
				_ = d.Set(j, i, w)
			}
		}
	}

	return d, nil
}

// Ring returns the ring metric on n nodes: d[i][j] = w·min(|i-j|, n-|i-j|).
// Visiting the nodes in index order is optimal with cost n·w for n ≥ 2.
// Complexity: O(n²).
func Ring(n int, w matrix.Weight) (*matrix.Distance, error) {
	if n < MinNodes {
		return nil, builderErrorf(methodRing, ErrTooFewNodes, "n=%d < min=%d", n, MinNodes)
	}
	d, err := matrix.NewDistance(n)
	if err != nil {
		return nil, builderErrorf(methodRing, err, "n=%d", n)
	}

	var i, j, gap int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			gap = i - j
			if gap < 0 {
				gap = -gap
			}
			if n-gap < gap {
				gap = n - gap
			}
			_ = d.Set(i, j, w*matrix.Weight(gap))
		}
	}

	return d, nil
}

// Grid places n points uniformly on a span×span lattice and returns their
// Manhattan distances. The result is symmetric; coincident points are 0 apart.
// Complexity: O(n²).
func Grid(n int, opts ...BuilderOption) (*matrix.Distance, error) {
	if n < MinNodes {
		return nil, builderErrorf(methodGrid, ErrTooFewNodes, "n=%d < min=%d", n, MinNodes)
	}
	cfg := newBuilderConfig(opts...)
	d, err := matrix.NewDistance(n)
	if err != nil {
		return nil, builderErrorf(methodGrid, err, "n=%d", n)
	}

	xs := make([]int, n)
	ys := make([]int, n)
	var i, j int
	for i = 0; i < n; i++ {
		xs[i] = cfg.rng.Intn(cfg.span)
		ys[i] = cfg.rng.Intn(cfg.span)
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w := matrix.Weight(absInt(xs[i]-xs[j]) + absInt(ys[i]-ys[j]))
			_ = d.Set(i, j, w)
			_ = d.Set(j, i, w)
		}
	}

	return d, nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
