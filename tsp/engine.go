// Package tsp — SearchEngine.
//
// Engine owns one distance matrix at a time and drives
//
//	Idle → Loading → Searching → Reducing → Done
//
// Ingest copies the caller's matrix (lanes never alias caller memory),
// validates N and the cost width, and leaves the engine in Loading. Run
// executes Searching and Reducing and leaves it in Done; it may be repeated
// on the same matrix. A cancelled Run discards the partial sweep and returns
// the engine to Loading. Ingest of a new matrix or Reset discards all
// per-run state.
//
// Engine methods are safe for concurrent use. Only one Run executes at a
// time; concurrent Run or Ingest calls get ErrBusy.
package tsp

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lanetsp/logging"
	"github.com/katalvlaran/lanetsp/matrix"
	"github.com/katalvlaran/lanetsp/perm"
)

// Engine is the exhaustive search orchestrator.
type Engine struct {
	opts Options

	mu    sync.Mutex
	state State
	dist  *matrix.Distance
	ix    *perm.Indexer
	last  *SearchResult
}

// NewEngine returns an idle engine configured by opts.
func NewEngine(opts ...Option) *Engine {
	return &Engine{opts: gatherOptions(opts...)}
}

// State returns the current lifecycle phase.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state
}

// N returns the node count of the loaded matrix, or 0 when idle.
func (e *Engine) N() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.dist.N()
}

// Lanes returns the configured lane count P.
func (e *Engine) Lanes() int { return e.opts.lanes }

// Result returns the last completed result, if any.
func (e *Engine) Result() (SearchResult, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.last == nil {
		return SearchResult{}, false
	}

	return *e.last, true
}

// Ingest replaces the loaded matrix with a private copy of d.
//
// Validation (all failures also match ErrConfig):
//   - d non-nil and N ≥ 1 (ErrNilMatrix, ErrTooFewNodes),
//   - N ≤ configured max nodes (ErrTooManyNodes),
//   - every weight ≤ the configured bound, if any (ErrWeightOutOfBound),
//   - N·maxWeight < SentinelCost (ErrCostOverflow).
//
// On failure the engine returns to Idle with nothing loaded.
func (e *Engine) Ingest(d *matrix.Distance) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == StateSearching || e.state == StateReducing {
		return ErrBusy
	}

	// Entering Loading discards everything from the previous run.
	e.state = StateLoading
	e.dist, e.ix, e.last = nil, nil, nil

	var n = d.N()
	err := e.validate(d)
	if err == nil {
		var ix *perm.Indexer
		if ix, err = perm.NewIndexer(n); err == nil {
			e.dist, e.ix = d.Clone(), ix
		} else {
			err = fmt.Errorf("%w: %w", ErrConfig, err)
		}
	}

	e.opts.metrics.RecordIngest(n, err)
	e.opts.log.LogIngest(context.Background(), n, err == nil && d.IsSymmetric(), err)
	if err != nil {
		e.state = StateIdle
		return fmt.Errorf("Ingest: %w", err)
	}
	if e.opts.filter && !e.dist.IsSymmetric() {
		e.opts.log.Warn("asymmetric matrix with symmetry filter enabled; mirrored tours may differ in cost", "n", n)
	}

	return nil
}

// validate applies the Loading checks. Caller holds e.mu.
func (e *Engine) validate(d *matrix.Distance) error {
	if d == nil {
		return fmt.Errorf("%w: %w", ErrConfig, ErrNilMatrix)
	}
	var n = d.N()
	if n < 1 {
		return fmt.Errorf("%w: n=%d: %w", ErrConfig, n, ErrTooFewNodes)
	}
	if n > e.opts.maxNodes {
		return fmt.Errorf("%w: n=%d > max=%d: %w", ErrConfig, n, e.opts.maxNodes, ErrTooManyNodes)
	}

	var worst = d.MaxWeight()
	if b := e.opts.weightBound; b > 0 {
		if top := maxCell(d); top > b {
			return fmt.Errorf("%w: weight %d > bound %d: %w", ErrConfig, top, b, ErrWeightOutOfBound)
		}
		worst = b
	}
	if uint64(n)*uint64(worst) >= uint64(SentinelCost) {
		return fmt.Errorf("%w: n=%d max weight=%d: %w", ErrConfig, n, worst, ErrCostOverflow)
	}

	return nil
}

// maxCell returns the largest cell including the diagonal.
func maxCell(d *matrix.Distance) Weight {
	var top Weight
	for _, v := range d.Flat() {
		if v > top {
			top = v
		}
	}

	return top
}

// Reset discards the loaded matrix and any result, returning to Idle.
func (e *Engine) Reset() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == StateSearching || e.state == StateReducing {
		return ErrBusy
	}
	e.state = StateIdle
	e.dist, e.ix, e.last = nil, nil, nil

	return nil
}

// Run sweeps the loaded matrix and reduces the lane candidates to the global
// optimum. The returned Tour is BestIndex decoded.
//
// Errors: ErrNotLoaded, ErrBusy, ErrNoTour, or the context error when the run
// is cancelled (the engine then returns to Loading).
func (e *Engine) Run(ctx context.Context) (SearchResult, error) {
	e.mu.Lock()
	switch e.state {
	case StateIdle:
		e.mu.Unlock()
		return SearchResult{}, ErrNotLoaded
	case StateSearching, StateReducing:
		e.mu.Unlock()
		return SearchResult{}, ErrBusy
	}
	var (
		dist = e.dist
		ix   = e.ix
	)
	e.state = StateSearching
	e.last = nil
	e.mu.Unlock()

	var (
		runID = uuid.NewString()
		log   = e.opts.log.WithRun(runID)
		start = time.Now()
	)
	log.DebugContext(ctx, "search started", "n", ix.N(), "lanes", e.opts.lanes, "indices", ix.Count())

	cands, stats, err := sweep(ctx, dist.Flat(), ix, e.opts)
	if err != nil {
		e.abort(ctx, log, ix.N(), stats, start, err)
		return SearchResult{}, fmt.Errorf("Run: %w", err)
	}

	e.setState(StateReducing)
	best, lane := Reduce(cands)
	if lane < 0 {
		e.abort(ctx, log, ix.N(), stats, start, ErrNoTour)
		return SearchResult{}, ErrNoTour
	}
	tour, err := ix.Decode(best.Index)
	if err != nil {
		// Unreachable: every lane index is < N!.
		e.finish(StateLoading, nil)
		return SearchResult{}, fmt.Errorf("Run: %w", err)
	}

	res := SearchResult{
		RunID:      runID,
		N:          ix.N(),
		Lanes:      e.opts.lanes,
		BestCost:   best.Cost,
		BestIndex:  best.Index,
		BestLane:   lane,
		Tour:       tour,
		SweepStats: stats,
		Elapsed:    time.Since(start),
	}
	e.finish(StateDone, &res)
	e.opts.metrics.RecordRun(res.N, res.Lanes, stats, res.Elapsed, nil)
	log.LogRun(ctx, res.BestCost, res.BestIndex, stats.Visited, res.Elapsed, nil)

	return res, nil
}

// Decode maps an index of the loaded order back to its visiting sequence.
func (e *Engine) Decode(index uint64) ([]int, error) {
	e.mu.Lock()
	ix := e.ix
	e.mu.Unlock()
	if ix == nil {
		return nil, ErrNotLoaded
	}

	return ix.Decode(index)
}

// abort returns the engine to Loading and reports a failed run.
func (e *Engine) abort(ctx context.Context, log *logging.Logger, n int, stats SweepStats, start time.Time, err error) {
	e.finish(StateLoading, nil)
	e.opts.metrics.RecordRun(n, e.opts.lanes, stats, time.Since(start), err)
	log.LogRun(ctx, 0, 0, stats.Visited, time.Since(start), err)
}

func (e *Engine) setState(s State) {
	e.mu.Lock()
	e.state = s
	e.mu.Unlock()
}

func (e *Engine) finish(s State, res *SearchResult) {
	e.mu.Lock()
	e.state = s
	e.last = res
	e.mu.Unlock()
}
