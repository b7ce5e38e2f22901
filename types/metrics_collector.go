package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Worker methods are called from worker goroutines and must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	FillMetrics
	WorkerMetrics
}

// FillMetrics defines metrics for whole fill calls.
type FillMetrics interface {
	// RecordFillDuration records the wall time of a fill call.
	//
	// Parameters:
	//   - mode: Fill mode ("single", "multi")
	//   - duration: Time taken in seconds
	RecordFillDuration(mode string, duration float64)

	// RecordFillResult records the outcome of a fill call.
	//
	// Parameters:
	//   - mode: Fill mode ("single", "multi")
	//   - success: true if every index was written
	RecordFillResult(mode string, success bool)

	// RecordElements adds the number of elements written by a successful fill.
	RecordElements(mode string, count int)
}

// WorkerMetrics defines metrics for the workers of a parallel fill.
type WorkerMetrics interface {
	// RecordWorkers sets the effective worker count of the latest parallel fill (gauge metric).
	RecordWorkers(count int)

	// RecordPartitionSize records the size of one dispatched partition.
	RecordPartitionSize(size int)

	// RecordTaskFailure records a failed worker task.
	//
	// Parameters:
	//   - reason: Failure reason ("source", "canceled")
	RecordTaskFailure(reason string)
}
