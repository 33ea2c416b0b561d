// Package tsp_test provides helpers shared across *_test.go files.
package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lanetsp/matrix"
	"github.com/stretchr/testify/require"
)

// fiveCity is the reference N=5 instance; its optimal tour costs 80.
var fiveCity = [][]uint32{
	{0, 10, 15, 20, 25},
	{10, 0, 35, 25, 30},
	{15, 35, 0, 30, 20},
	{20, 25, 30, 0, 10},
	{25, 30, 20, 10, 0},
}

// mustDistance builds a matrix or fails the test.
func mustDistance(t testing.TB, rows [][]uint32) *matrix.Distance {
	t.Helper()
	d, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return d
}

// lcg is a tiny deterministic generator so tests do not depend on math/rand streams.
type lcg uint64

func (g *lcg) next(bound uint32) uint32 {
	*g = *g*6364136223846793005 + 1442695040888963407
	return uint32(uint64(*g)>>33) % bound
}

// randomRows returns an n×n matrix with weights in [1,bound]; symmetric if sym.
func randomRows(n int, seed uint64, bound uint32, sym bool) [][]uint32 {
	g := lcg(seed)
	rows := make([][]uint32, n)
	for i := range rows {
		rows[i] = make([]uint32, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if sym && j < i {
				rows[i][j] = rows[j][i]
				continue
			}
			rows[i][j] = 1 + g.next(bound)
		}
	}

	return rows
}

// naiveOptimum enumerates every Hamiltonian cycle through node 0 by
// recursive extension, independent of the permutation index machinery.
// With directed=false only one orientation of each cycle is visited, i.e.
// the (n-1)!/2 distinct undirected cycles.
func naiveOptimum(rows [][]uint32, directed bool) (best uint64, cycles int) {
	n := len(rows)
	if n == 1 {
		return uint64(rows[0][0]), 1
	}
	if n == 2 {
		return uint64(rows[0][1]) + uint64(rows[1][0]), 1
	}

	best = math.MaxUint64
	path := []int{0}
	used := make([]bool, n)
	used[0] = true

	var rec func(cost uint64)
	rec = func(cost uint64) {
		if len(path) == n {
			if !directed && path[1] > path[n-1] {
				return // mirror of a cycle already counted
			}
			cycles++
			total := cost + uint64(rows[path[n-1]][0])
			if total < best {
				best = total
			}
			return
		}
		last := path[len(path)-1]
		for v := 1; v < n; v++ {
			if used[v] {
				continue
			}
			used[v] = true
			path = append(path, v)
			rec(cost + uint64(rows[last][v]))
			path = path[:len(path)-1]
			used[v] = false
		}
	}
	rec(0)

	return best, cycles
}
