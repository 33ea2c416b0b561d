package remote

import "github.com/katalvlaran/lanetsp/wire"

// MetricsCollector observes inbound datagrams. err is nil for accepted
// datagrams and the drop reason otherwise.
type MetricsCollector interface {
	RecordDatagram(kind string, err error)
}

// NoopMetricsCollector discards everything.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordDatagram(string, error) {}

// kindLabel names a raw datagram for metrics, tolerating empty input.
func kindLabel(b []byte) string {
	if len(b) == 0 {
		return "empty"
	}

	return wire.Kind(b[0]).String()
}
