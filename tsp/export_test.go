package tsp

import (
	"context"
	"time"
)

// WithVisitHook exposes the per-index visit callback to tests.
// The hook runs concurrently from every lane; it must be goroutine-safe.
func WithVisitHook(fn func(lane int, index uint64)) Option {
	return func(o *Options) { o.visit = fn }
}

// AbortRun fails a run with err the way Run does when no lane produced a
// candidate or the sweep was cancelled.
func AbortRun(e *Engine, err error) {
	e.abort(context.Background(), e.opts.log.WithRun("abort"), e.N(), SweepStats{Visited: 7}, time.Now(), err)
}
