package metrics

import "github.com/arloliu/parfill/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	metrics := metrics.NewNop()
//	f, err := parfill.NewFiller(&cfg, src, parfill.WithMetrics(metrics))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// FillMetrics implementation

// RecordFillDuration discards the fill duration metric.
func (n *NopMetrics) RecordFillDuration(_ /* mode */ string, _ /* duration */ float64) {
	// No-op
}

// RecordFillResult discards the fill result metric.
func (n *NopMetrics) RecordFillResult(_ /* mode */ string, _ /* success */ bool) {
	// No-op
}

// RecordElements discards the element counter.
func (n *NopMetrics) RecordElements(_ /* mode */ string, _ /* count */ int) {
	// No-op
}

// WorkerMetrics implementation

// RecordWorkers discards the worker count metric.
func (n *NopMetrics) RecordWorkers(_ /* count */ int) {
	// No-op
}

// RecordPartitionSize discards the partition size metric.
func (n *NopMetrics) RecordPartitionSize(_ /* size */ int) {
	// No-op
}

// RecordTaskFailure discards the task failure counter.
func (n *NopMetrics) RecordTaskFailure(_ /* reason */ string) {
	// No-op
}
