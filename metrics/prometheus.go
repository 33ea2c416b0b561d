// Package metrics exports engine and protocol activity as Prometheus metrics.
package metrics

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lanetsp/tsp"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "lanetsp"

// Outcome label values.
const (
	OutcomeOK        = "ok"
	OutcomeCancelled = "cancelled"
	OutcomeError     = "error"
)

// Prometheus implements tsp.MetricsCollector and the remote datagram hooks.
//
// Thread Safety: all methods are safe for concurrent use.
type Prometheus struct {
	ingests    *prometheus.CounterVec
	runs       *prometheus.CounterVec
	visited    prometheus.Counter
	evaluated  prometheus.Counter
	runSeconds *prometheus.HistogramVec
	datagrams  *prometheus.CounterVec
}

var _ tsp.MetricsCollector = (*Prometheus)(nil)

// New registers the collectors on reg. A nil reg creates unregistered
// collectors, which is useful in tests.
func New(reg prometheus.Registerer, namespace string) *Prometheus {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	f := promauto.With(reg)

	return &Prometheus{
		ingests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingests_total",
			Help:      "Matrix ingestions by outcome.",
		}, []string{"outcome"}),
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Search runs by outcome.",
		}, []string{"outcome"}),
		visited: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "indices_visited_total",
			Help:      "Permutation indices visited by all lanes.",
		}),
		evaluated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tours_evaluated_total",
			Help:      "Tours whose cost was computed after the symmetry filter.",
		}),
		runSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of completed search runs by node count.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 14),
		}, []string{"nodes"}),
		datagrams: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "datagrams_total",
			Help:      "Protocol datagrams by kind and outcome.",
		}, []string{"kind", "outcome"}),
	}
}

// RecordIngest implements tsp.MetricsCollector.
func (p *Prometheus) RecordIngest(_ int, err error) {
	p.ingests.WithLabelValues(outcome(err)).Inc()
}

// RecordRun implements tsp.MetricsCollector.
func (p *Prometheus) RecordRun(n, _ int, stats tsp.SweepStats, elapsed time.Duration, err error) {
	p.runs.WithLabelValues(outcome(err)).Inc()
	p.visited.Add(float64(stats.Visited))
	p.evaluated.Add(float64(stats.Evaluated))
	if err == nil {
		p.runSeconds.WithLabelValues(strconv.Itoa(n)).Observe(elapsed.Seconds())
	}
}

// RecordDatagram counts one inbound datagram; err is the reason it was dropped.
func (p *Prometheus) RecordDatagram(kind string, err error) {
	p.datagrams.WithLabelValues(kind, outcome(err)).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCancelled
	default:
		return OutcomeError
	}
}
