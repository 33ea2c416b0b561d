// Package tsp: functional configuration for Engine and Sweep.
//
// Defaults are single-sourced in the constants below. WithX constructors
// panic only on nonsensical values (programmer error); runtime input problems
// are reported as sentinel errors by Ingest/Run.
package tsp

import (
	"runtime"

	"github.com/katalvlaran/lanetsp/logging"
	"github.com/katalvlaran/lanetsp/perm"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultLanes is the number of interleaved lanes P.
	DefaultLanes = 4

	// MaxLanes bounds P so the lane stride never overflows the index space.
	MaxLanes = 1 << 16

	// DefaultBatchSize is the number of indices a lane processes between
	// cancellation checks.
	DefaultBatchSize uint64 = 4096

	// DefaultMaxNodes is the largest accepted N.
	DefaultMaxNodes = perm.MaxN

	// DefaultSymmetryFilter enables the perm[1] < perm[N-1] pruning rule.
	DefaultSymmetryFilter = true
)

// ---------- Internal panic messages ----------

const (
	panicLanesInvalid    = "tsp: WithLanes: lanes must be in [1, MaxLanes]"
	panicWorkersInvalid  = "tsp: WithWorkers: workers must be >= 1"
	panicBatchInvalid    = "tsp: WithBatchSize: batch must be >= 1"
	panicMaxNodesInvalid = "tsp: WithMaxNodes: n must be in [1, perm.MaxN]"
)

// ---------- Public option type (functional) ----------

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	lanes       int
	workers     int
	batch       uint64
	maxNodes    int
	weightBound Weight // 0 ⇒ no explicit bound
	filter      bool

	log     *logging.Logger
	metrics MetricsCollector

	// visit is a test hook called for every visited index; nil in production.
	visit func(lane int, index uint64)
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		lanes:    DefaultLanes,
		workers:  runtime.GOMAXPROCS(0),
		batch:    DefaultBatchSize,
		maxNodes: DefaultMaxNodes,
		filter:   DefaultSymmetryFilter,
		log:      logging.NoopLogger(),
		metrics:  NoopMetricsCollector{},
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// ---------- Constructors (WithX) ----------

// WithLanes sets the lane count P ∈ [1, MaxLanes].
// P changes which index wins among equal-cost optima, never the optimal cost.
func WithLanes(p int) Option {
	if p < 1 || p > MaxLanes {
		panic(panicLanesInvalid)
	}

	return func(o *Options) { o.lanes = p }
}

// WithWorkers bounds how many lanes execute concurrently (default GOMAXPROCS).
// Lanes beyond the limit queue until a worker frees up.
func WithWorkers(w int) Option {
	if w < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = w }
}

// WithBatchSize sets how many indices a lane processes between cancellation checks.
func WithBatchSize(b uint64) Option {
	if b < 1 {
		panic(panicBatchInvalid)
	}

	return func(o *Options) { o.batch = b }
}

// WithMaxNodes lowers the accepted node bound (default perm.MaxN).
func WithMaxNodes(n int) Option {
	if n < 1 || n > perm.MaxN {
		panic(panicMaxNodesInvalid)
	}

	return func(o *Options) { o.maxNodes = n }
}

// WithWeightBound declares the largest legal edge weight. Ingest rejects
// heavier edges with ErrWeightOutOfBound and sizes the overflow check on the
// bound instead of the observed maximum. Zero removes the bound.
func WithWeightBound(w Weight) Option {
	return func(o *Options) { o.weightBound = w }
}

// WithSymmetryFilter toggles mirror pruning. Disable it for asymmetric
// matrices, where a tour and its reverse may differ in cost.
func WithSymmetryFilter(on bool) Option {
	return func(o *Options) { o.filter = on }
}

// WithLogger sets the structured logger. nil restores the no-op logger.
func WithLogger(l *logging.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = logging.NoopLogger()
		}
		o.log = l
	}
}

// WithMetrics sets the metrics collector. nil restores the no-op collector.
func WithMetrics(m MetricsCollector) Option {
	return func(o *Options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}
