// Package tsp — lane-partitioned sweep over the permutation index space.
//
// Lane j of P visits j, j+P, j+2P, … while the index is < N!. The bound is
// checked on every step, so a final partial stride never evaluates an index
// outside the space. Each lane owns its scratch permutation and its
// Candidate slot; lanes never write shared state, so no locking is needed.
// errgroup.Wait is the single barrier before reduction.
package tsp

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lanetsp/matrix"
	"github.com/katalvlaran/lanetsp/perm"
)

// Sweep runs the lane sweep over d and returns the per-lane Candidates in
// lane order together with aggregate work counters. It performs no
// reduction; pass the result to Reduce.
//
// Only the sweep-related options apply (lanes, workers, batch, filter).
// Sweep validates N against perm.MaxN but not the cost width; use Engine for
// fully validated runs.
func Sweep(ctx context.Context, d *matrix.Distance, opts ...Option) ([]Candidate, SweepStats, error) {
	if d == nil {
		return nil, SweepStats{}, ErrNilMatrix
	}
	ix, err := perm.NewIndexer(d.N())
	if err != nil {
		return nil, SweepStats{}, fmt.Errorf("Sweep: %w", err)
	}

	return sweep(ctx, d.Flat(), ix, gatherOptions(opts...))
}

// sweep fans the lanes out over a bounded worker pool.
func sweep(ctx context.Context, flat []Weight, ix *perm.Indexer, o Options) ([]Candidate, SweepStats, error) {
	var (
		cands   = make([]Candidate, o.lanes)
		stats   = make([]SweepStats, o.lanes)
		total   SweepStats
		g, gctx = errgroup.WithContext(ctx)
		j       int
	)
	g.SetLimit(o.workers)

	for j = 0; j < o.lanes; j++ {
		lane := j
		g.Go(func() error {
			var err error
			cands[lane], stats[lane], err = runLane(gctx, flat, ix, lane, o)
			return err
		})
	}
	err := g.Wait()

	for j = range stats {
		total.Visited += stats[j].Visited
		total.Evaluated += stats[j].Evaluated
	}
	if err != nil {
		return nil, total, err
	}

	return cands, total, nil
}

// runLane sweeps one lane: decode → filter → evaluate → keep the strict minimum.
// The context is polled every o.batch indices.
func runLane(ctx context.Context, flat []Weight, ix *perm.Indexer, lane int, o Options) (Candidate, SweepStats, error) {
	var (
		n     = ix.N()
		count = ix.Count()
		step  = uint64(o.lanes)
		buf   = make([]int, n)
		best  = Candidate{Cost: SentinelCost}
		st    SweepStats
		since uint64
		c     Cost
		i     uint64
	)
	if err := ctx.Err(); err != nil {
		return best, st, err
	}

	for i = uint64(lane); i < count; i += step {
		since++
		if since == o.batch {
			since = 0
			if err := ctx.Err(); err != nil {
				return best, st, err
			}
		}

		st.Visited++
		if o.visit != nil {
			o.visit(lane, i)
		}

		ix.DecodeUnchecked(i, buf)
		if o.filter && !Accept(buf) {
			continue
		}

		st.Evaluated++
		c = tourCost(flat, n, buf)
		if c < best.Cost {
			best = Candidate{Cost: c, Index: i}
		}
	}

	return best, st, nil
}
