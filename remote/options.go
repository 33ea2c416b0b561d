package remote

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/katalvlaran/lanetsp/logging"
	"github.com/katalvlaran/lanetsp/tsp"
	"github.com/katalvlaran/lanetsp/wire"
)

const (
	DefaultTimeout = 2 * time.Second
	DefaultRetries = 3
	DefaultRate    = 50
	DefaultBurst   = 10

	// DefaultWorkers bounds concurrent server handlers.
	DefaultWorkers = 4

	// DefaultVerifyNodes is the largest scenario a Server verifies; larger
	// submissions are acked as unknown instead of pinning a worker on the sweep.
	DefaultVerifyNodes = 12

	// maxDatagram fits the largest delivery (255 nodes).
	maxDatagram = wire.HeaderSize + 255*255
)

// Option configures a Client or a Server.
type Option func(*options)

type options struct {
	timeout    time.Duration
	retries    int
	limit      rate.Limit
	burst      int
	workers    int
	verify     int
	log        *logging.Logger
	metrics    MetricsCollector
	engineOpts []tsp.Option
}

func gatherOptions(opts ...Option) options {
	o := options{
		timeout: DefaultTimeout,
		retries: DefaultRetries,
		limit:   DefaultRate,
		burst:   DefaultBurst,
		workers: DefaultWorkers,
		verify:  DefaultVerifyNodes,
		log:     logging.NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithTimeout sets the per-attempt reply timeout. Panics if d <= 0.
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("remote: WithTimeout: d must be > 0")
	}
	return func(o *options) { o.timeout = d }
}

// WithRetries sets the number of retransmissions after the first attempt.
func WithRetries(n int) Option {
	if n < 0 {
		panic("remote: WithRetries: n must be >= 0")
	}
	return func(o *options) { o.retries = n }
}

// WithRate paces client transmissions and server datagram handling.
func WithRate(perSecond float64, burst int) Option {
	if perSecond <= 0 || burst < 1 {
		panic("remote: WithRate: require perSecond > 0 and burst >= 1")
	}
	return func(o *options) {
		o.limit = rate.Limit(perSecond)
		o.burst = burst
	}
}

// WithWorkers bounds how many datagrams a Server handles concurrently.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("remote: WithWorkers: n must be >= 1")
	}
	return func(o *options) { o.workers = n }
}

// WithVerifyNodes sets the largest node count a Server verifies.
// Panics unless n is in [wire.MinNodes, wire.MaxNodes].
func WithVerifyNodes(n int) Option {
	if wire.CheckNodes(n) != nil {
		panic("remote: WithVerifyNodes: n must be in [wire.MinNodes, wire.MaxNodes]")
	}
	return func(o *options) { o.verify = n }
}

// WithLogger sets the logger; nil restores the no-op logger.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = logging.NoopLogger()
		}
		o.log = l
	}
}

// WithMetrics sets the datagram collector; nil restores the no-op collector.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

// WithEngineOptions configures the engines a Server builds for verification.
func WithEngineOptions(opts ...tsp.Option) Option {
	return func(o *options) { o.engineOpts = append(o.engineOpts, opts...) }
}
