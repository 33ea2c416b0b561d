package tsp

import (
	"errors"
	"math"
	"time"

	"github.com/katalvlaran/lanetsp/matrix"
)

// Sentinel errors. Configuration failures wrap ErrConfig together with the
// specific cause, so both errors.Is(err, ErrConfig) and
// errors.Is(err, ErrTooManyNodes) hold.
var (
	// ErrConfig marks any rejection raised while loading a matrix.
	ErrConfig = errors.New("tsp: invalid configuration")

	// ErrTooFewNodes is returned for an empty matrix.
	ErrTooFewNodes = errors.New("tsp: too few nodes")

	// ErrTooManyNodes is returned when N exceeds the configured bound.
	ErrTooManyNodes = errors.New("tsp: too many nodes")

	// ErrCostOverflow is returned when N·maxWeight does not fit below SentinelCost.
	ErrCostOverflow = errors.New("tsp: worst-case tour cost overflows cost type")

	// ErrWeightOutOfBound is returned when a weight exceeds the configured bound.
	ErrWeightOutOfBound = errors.New("tsp: weight exceeds configured bound")

	// ErrNilMatrix is returned when a nil matrix is ingested.
	ErrNilMatrix = errors.New("tsp: nil matrix")

	// ErrNotLoaded is returned by Run/Decode before a successful Ingest.
	ErrNotLoaded = errors.New("tsp: no matrix loaded")

	// ErrBusy is returned when the engine is already searching.
	ErrBusy = errors.New("tsp: search in progress")

	// ErrNoTour is returned when no lane produced a candidate.
	ErrNoTour = errors.New("tsp: no candidate tour")

	// ErrDimensionMismatch reports a tour or permutation of the wrong length.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNotPermutation reports an out-of-range or repeated node id.
	ErrNotPermutation = errors.New("tsp: not a permutation")

	// ErrStartOutOfRange reports a start vertex outside [0,n).
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")
)

// Cost is a tour length. The width is validated at Ingest against
// N·maxWeight.
type Cost = uint32

// SentinelCost exceeds every achievable tour cost of a loaded matrix.
const SentinelCost Cost = math.MaxUint32

// Weight aliases the matrix edge weight.
type Weight = matrix.Weight

// Candidate is a lane-local best: the cheapest (Cost, Index) seen so far.
// A lane that evaluated nothing holds {SentinelCost, 0}.
type Candidate struct {
	Cost  Cost
	Index uint64
}

// SweepStats counts the work done by a sweep.
type SweepStats struct {
	// Visited is the number of indices decoded.
	Visited uint64

	// Evaluated is the number of indices that passed the filter and were costed.
	Evaluated uint64
}

// SearchResult is the outcome of one Engine.Run.
type SearchResult struct {
	// RunID identifies the run in logs.
	RunID string

	// N is the node count, Lanes the lane count P.
	N     int
	Lanes int

	// BestCost and BestIndex are the reduced global optimum.
	BestCost  Cost
	BestIndex uint64

	// BestLane is the lane that produced the optimum.
	BestLane int

	// Tour is BestIndex decoded: N distinct node ids, closed implicitly.
	Tour []int

	SweepStats

	// Elapsed is the wall time of the Searching and Reducing phases.
	Elapsed time.Duration
}

// State is the engine lifecycle phase.
type State uint8

const (
	// StateIdle: no matrix loaded.
	StateIdle State = iota
	// StateLoading: a matrix is ingested and validated; Run may start.
	StateLoading
	// StateSearching: lanes are sweeping.
	StateSearching
	// StateReducing: lane candidates are being reduced.
	StateReducing
	// StateDone: a result is available; Run may be repeated.
	StateDone
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSearching:
		return "searching"
	case StateReducing:
		return "reducing"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}
