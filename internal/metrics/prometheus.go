package metrics

import (
	"sync"

	"github.com/arloliu/parfill/types"
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace is the metrics namespace used when none is given.
const DefaultNamespace = "parfill"

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered on first use, so constructing a
// collector that is never exercised leaves the registry untouched.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	// Fill metrics
	fillDuration *prometheus.HistogramVec
	fillResults  *prometheus.CounterVec
	elements     *prometheus.CounterVec

	// Worker metrics
	workers       prometheus.Gauge
	partitionSize prometheus.Histogram
	taskFailures  *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "parfill" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.fillDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "fill",
			Name:      "duration_seconds",
			Help:      "Wall time of fill calls in seconds by mode.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 100µs .. ~26s
		}, []string{"mode"})

		p.fillResults = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "fill",
			Name:      "results_total",
			Help:      "Total fill outcomes (success,failure) by mode.",
		}, []string{"mode", "result"})

		p.elements = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "fill",
			Name:      "elements_total",
			Help:      "Total elements written by successful fills by mode.",
		}, []string{"mode"})

		p.workers = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "worker",
			Name:      "count",
			Help:      "Effective worker count of the latest parallel fill.",
		})

		p.partitionSize = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "worker",
			Name:      "partition_size",
			Help:      "Number of indices assigned to each worker task.",
			Buckets:   prometheus.ExponentialBuckets(1, 8, 10), // 1 .. ~134M
		})

		p.taskFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "worker",
			Name:      "task_failures_total",
			Help:      "Total failed worker tasks by reason (source,canceled).",
		}, []string{"reason"})

		p.reg.MustRegister(p.fillDuration)
		p.reg.MustRegister(p.fillResults)
		p.reg.MustRegister(p.elements)
		p.reg.MustRegister(p.workers)
		p.reg.MustRegister(p.partitionSize)
		p.reg.MustRegister(p.taskFailures)
	})
}

// FillMetrics implementation

// RecordFillDuration observes the wall time of a fill call.
func (p *PrometheusCollector) RecordFillDuration(mode string, duration float64) {
	p.ensureRegistered()
	p.fillDuration.WithLabelValues(mode).Observe(duration)
}

// RecordFillResult increments the fill outcome counter.
func (p *PrometheusCollector) RecordFillResult(mode string, success bool) {
	p.ensureRegistered()
	result := "success"
	if !success {
		result = "failure"
	}
	p.fillResults.WithLabelValues(mode, result).Inc()
}

// RecordElements adds count to the written elements counter.
func (p *PrometheusCollector) RecordElements(mode string, count int) {
	if count <= 0 {
		return
	}
	p.ensureRegistered()
	p.elements.WithLabelValues(mode).Add(float64(count))
}

// WorkerMetrics implementation

// RecordWorkers sets the worker count gauge.
func (p *PrometheusCollector) RecordWorkers(count int) {
	p.ensureRegistered()
	p.workers.Set(float64(count))
}

// RecordPartitionSize observes the size of one dispatched partition.
func (p *PrometheusCollector) RecordPartitionSize(size int) {
	p.ensureRegistered()
	p.partitionSize.Observe(float64(size))
}

// RecordTaskFailure increments the task failure counter.
func (p *PrometheusCollector) RecordTaskFailure(reason string) {
	p.ensureRegistered()
	p.taskFailures.WithLabelValues(reason).Inc()
}
