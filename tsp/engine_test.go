package tsp_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/katalvlaran/lanetsp/logging"
	"github.com/katalvlaran/lanetsp/matrix"
	"github.com/katalvlaran/lanetsp/tsp"
	"github.com/stretchr/testify/require"
)

// TestEngine_FiveCity runs the reference instance; the optimum is 80 and the
// winning index depends on P only through tie-breaking.
func TestEngine_FiveCity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lanes     int
		wantIndex uint64
		wantLane  int
	}{
		{1, 3, 0},
		{2, 48, 0},
		{3, 3, 0},
		{4, 48, 0},
		{7, 78, 1},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(fmt.Sprintf("p=%d", tc.lanes), func(t *testing.T) {
			t.Parallel()
			e := tsp.NewEngine(tsp.WithLanes(tc.lanes))
			require.NoError(t, e.Ingest(mustDistance(t, fiveCity)))

			res, err := e.Run(context.Background())
			require.NoError(t, err)
			require.Equal(t, tsp.Cost(80), res.BestCost)
			require.Equal(t, tc.wantIndex, res.BestIndex)
			require.Equal(t, tc.wantLane, res.BestLane)
			require.Equal(t, 5, res.N)
			require.Equal(t, uint64(120), res.Visited)
			require.Equal(t, uint64(60), res.Evaluated)
			require.NotEmpty(t, res.RunID)

			c, err := tsp.TourCost(mustDistance(t, fiveCity), res.Tour)
			require.NoError(t, err)
			require.Equal(t, res.BestCost, c)

			tour, err := e.Decode(res.BestIndex)
			require.NoError(t, err)
			require.Equal(t, res.Tour, tour)
		})
	}
}

// TestEngine_MatchesNaive compares against independent enumeration of all
// (N-1)!/2 undirected cycles on random symmetric instances.
func TestEngine_MatchesNaive(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 8; n++ {
		for seed := uint64(1); seed <= 3; seed++ {
			n, seed := n, seed
			t.Run(fmt.Sprintf("n=%d/seed=%d", n, seed), func(t *testing.T) {
				t.Parallel()
				rows := randomRows(n, seed, 100, true)
				want, cycles := naiveOptimum(rows, false)
				if n >= 3 {
					require.Equal(t, factorial(n-1)/2, cycles)
				}

				e := tsp.NewEngine(tsp.WithLanes(int(seed) + 2))
				require.NoError(t, e.Ingest(mustDistance(t, rows)))
				res, err := e.Run(context.Background())
				require.NoError(t, err)
				require.Equal(t, want, uint64(res.BestCost))
			})
		}
	}
}

// TestEngine_AsymmetricWithoutFilter checks that disabling the filter finds
// the directed optimum.
func TestEngine_AsymmetricWithoutFilter(t *testing.T) {
	t.Parallel()

	for seed := uint64(1); seed <= 4; seed++ {
		rows := randomRows(6, seed, 200, false)
		want, _ := naiveOptimum(rows, true)

		e := tsp.NewEngine(tsp.WithSymmetryFilter(false), tsp.WithLanes(5))
		require.NoError(t, e.Ingest(mustDistance(t, rows)))
		res, err := e.Run(context.Background())
		require.NoError(t, err)
		require.Equal(t, want, uint64(res.BestCost), "seed %d", seed)
		require.Equal(t, uint64(720), res.Evaluated)
	}
}

func TestEngine_Deterministic(t *testing.T) {
	t.Parallel()

	// Ties are frequent with a narrow weight range.
	d := mustDistance(t, randomRows(8, 42, 3, true))
	var first tsp.SearchResult
	for run := 0; run < 3; run++ {
		e := tsp.NewEngine(tsp.WithLanes(6), tsp.WithWorkers(run+1))
		require.NoError(t, e.Ingest(d))
		res, err := e.Run(context.Background())
		require.NoError(t, err)
		// A second run on the same engine must agree as well.
		again, err := e.Run(context.Background())
		require.NoError(t, err)
		require.Equal(t, res.BestIndex, again.BestIndex)

		if run == 0 {
			first = res
			continue
		}
		require.Equal(t, first.BestCost, res.BestCost)
		require.Equal(t, first.BestIndex, res.BestIndex)
		require.Equal(t, first.BestLane, res.BestLane)
	}
}

func TestEngine_IngestValidation(t *testing.T) {
	t.Parallel()

	big := make([][]uint32, 3)
	for i := range big {
		big[i] = []uint32{matrix.MaxWeight / 2, matrix.MaxWeight / 2, matrix.MaxWeight / 2}
	}

	tests := []struct {
		name string
		opts []tsp.Option
		d    *matrix.Distance
		want error
	}{
		{"nil", nil, nil, tsp.ErrNilMatrix},
		{"too many nodes", []tsp.Option{tsp.WithMaxNodes(4)}, mustDistance(t, fiveCity), tsp.ErrTooManyNodes},
		{"weight bound", []tsp.Option{tsp.WithWeightBound(30)}, mustDistance(t, fiveCity), tsp.ErrWeightOutOfBound},
		{"bound overflows", []tsp.Option{tsp.WithWeightBound(matrix.MaxWeight / 4)}, mustDistance(t, fiveCity), tsp.ErrCostOverflow},
		{"observed overflow", nil, mustDistance(t, big), tsp.ErrCostOverflow},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			e := tsp.NewEngine(tc.opts...)
			err := e.Ingest(tc.d)
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, tsp.ErrConfig)
			require.Equal(t, tsp.StateIdle, e.State())

			_, err = e.Run(context.Background())
			require.ErrorIs(t, err, tsp.ErrNotLoaded)
		})
	}

	e := tsp.NewEngine(tsp.WithWeightBound(35))
	require.NoError(t, e.Ingest(mustDistance(t, fiveCity)))
}

func TestEngine_Lifecycle(t *testing.T) {
	t.Parallel()

	e := tsp.NewEngine()
	require.Equal(t, tsp.StateIdle, e.State())
	_, err := e.Decode(0)
	require.ErrorIs(t, err, tsp.ErrNotLoaded)
	_, ok := e.Result()
	require.False(t, ok)

	require.NoError(t, e.Ingest(mustDistance(t, fiveCity)))
	require.Equal(t, tsp.StateLoading, e.State())
	require.Equal(t, 5, e.N())

	res, err := e.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, tsp.StateDone, e.State())
	last, ok := e.Result()
	require.True(t, ok)
	require.Equal(t, res.BestIndex, last.BestIndex)

	// New matrix discards the previous result.
	require.NoError(t, e.Ingest(mustDistance(t, [][]uint32{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}})))
	_, ok = e.Result()
	require.False(t, ok)
	require.Equal(t, 3, e.N())
	res, err = e.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, tsp.Cost(6), res.BestCost)

	_, err = e.Decode(6)
	require.Error(t, err)

	require.NoError(t, e.Reset())
	require.Equal(t, tsp.StateIdle, e.State())
	require.Equal(t, 0, e.N())
}

func TestEngine_IngestCopiesMatrix(t *testing.T) {
	t.Parallel()

	d := mustDistance(t, fiveCity)
	e := tsp.NewEngine()
	require.NoError(t, e.Ingest(d))
	// Poison the caller's copy; the engine must not see it.
	require.NoError(t, d.Set(0, 1, 1000))
	require.NoError(t, d.Set(1, 0, 1000))

	res, err := e.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, tsp.Cost(80), res.BestCost)
}

func TestEngine_CancelReturnsToLoading(t *testing.T) {
	t.Parallel()

	e := tsp.NewEngine(tsp.WithBatchSize(64), tsp.WithLanes(2))
	require.NoError(t, e.Ingest(mustDistance(t, randomRows(12, 9, 50, true))))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := e.Run(ctx)
	require.True(t, errors.Is(err, context.DeadlineExceeded), "got %v", err)
	require.Equal(t, tsp.StateLoading, e.State())
	_, ok := e.Result()
	require.False(t, ok)
}

func TestEngine_BusyWhileSearching(t *testing.T) {
	t.Parallel()

	var (
		once    sync.Once
		started = make(chan struct{})
		release = make(chan struct{})
	)
	hook := func(int, uint64) {
		once.Do(func() {
			close(started)
			<-release
		})
	}
	e := tsp.NewEngine(tsp.WithLanes(1), tsp.WithVisitHook(hook))
	require.NoError(t, e.Ingest(mustDistance(t, fiveCity)))

	done := make(chan error, 1)
	go func() {
		_, err := e.Run(context.Background())
		done <- err
	}()
	<-started
	require.Equal(t, tsp.StateSearching, e.State())
	_, err := e.Run(context.Background())
	require.ErrorIs(t, err, tsp.ErrBusy)
	require.ErrorIs(t, e.Ingest(mustDistance(t, fiveCity)), tsp.ErrBusy)
	require.ErrorIs(t, e.Reset(), tsp.ErrBusy)

	close(release)
	require.NoError(t, <-done)
	require.Equal(t, tsp.StateDone, e.State())
}

type recordingMetrics struct {
	mu      sync.Mutex
	ingests int
	runs    int
	visited uint64
	errs    int
}

func (r *recordingMetrics) RecordIngest(_ int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ingests++
	if err != nil {
		r.errs++
	}
}

func (r *recordingMetrics) RecordRun(_, _ int, s tsp.SweepStats, _ time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs++
	r.visited += s.Visited
	if err != nil {
		r.errs++
	}
}

func TestEngine_Metrics(t *testing.T) {
	t.Parallel()

	m := &recordingMetrics{}
	e := tsp.NewEngine(tsp.WithMetrics(m))
	require.Error(t, e.Ingest(nil))
	require.NoError(t, e.Ingest(mustDistance(t, fiveCity)))
	_, err := e.Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, 2, m.ingests)
	require.Equal(t, 1, m.runs)
	require.Equal(t, 1, m.errs)
	require.Equal(t, uint64(120), m.visited)
}

// TestEngine_NoTourIsLogged checks that a run ending without a candidate is
// both counted and logged before the engine returns to Loading.
func TestEngine_NoTourIsLogged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l, err := logging.New(&buf, "info", "json")
	require.NoError(t, err)
	m := &recordingMetrics{}
	e := tsp.NewEngine(tsp.WithLogger(l), tsp.WithMetrics(m))
	require.NoError(t, e.Ingest(mustDistance(t, fiveCity)))

	tsp.AbortRun(e, tsp.ErrNoTour)

	require.Equal(t, tsp.StateLoading, e.State())
	require.Equal(t, 1, m.runs)
	require.Equal(t, 1, m.errs)
	require.Contains(t, buf.String(), "search aborted")
	require.Contains(t, buf.String(), `"run_id":"abort"`)
	require.Contains(t, buf.String(), tsp.ErrNoTour.Error())
	require.Contains(t, buf.String(), `"visited":7`)
}

func factorial(n int) int {
	f := 1
	for k := 2; k <= n; k++ {
		f *= k
	}
	return f
}
