package tsp

import "time"

// MetricsCollector receives engine operational metrics.
// Implement it to integrate with a monitoring system; package metrics
// provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordIngest is called after every Ingest; err is nil on success.
	RecordIngest(n int, err error)

	// RecordRun is called after every Run with the sweep work done so far.
	RecordRun(n, lanes int, stats SweepStats, elapsed time.Duration, err error)
}

// NoopMetricsCollector discards all metrics.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIngest(int, error)                              {}
func (NoopMetricsCollector) RecordRun(int, int, SweepStats, time.Duration, error) {}
