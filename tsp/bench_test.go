// Package tsp_test: benchmarks for the lane sweep.
//
// Inputs are built outside the timer; only the sweep itself is measured.
package tsp_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/lanetsp/tsp"
)

func BenchmarkSweep(b *testing.B) {
	for _, n := range []int{7, 8, 9} {
		for _, p := range []int{1, 4, 16} {
			d := mustDistance(b, randomRows(n, 7, 255, true))
			b.Run(fmt.Sprintf("n=%d/p=%d", n, p), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, _, err := tsp.Sweep(context.Background(), d, tsp.WithLanes(p)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkTourCost(b *testing.B) {
	d := mustDistance(b, randomRows(20, 3, 255, true))
	perm := make([]int, 20)
	for i := range perm {
		perm[i] = i
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.TourCost(d, perm); err != nil {
			b.Fatal(err)
		}
	}
}
