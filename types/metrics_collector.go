package types

// MetricsCollector defines methods for recording benchmark metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Methods may be called from multiple goroutines and must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	RunnerMetrics
	StrategyMetrics
}

// RunnerMetrics defines metrics for benchmark rounds.
type RunnerMetrics interface {
	// RecordInputSize records the element count of a generated input (gauge metric).
	//
	// Parameters:
	//   - size: Number of elements in the current input
	RecordInputSize(size int)

	// RecordMismatch records a strategy total that disagreed with the sequential total.
	//
	// Parameters:
	//   - strategy: Name of the disagreeing strategy
	RecordMismatch(strategy string)
}

// StrategyMetrics defines metrics for individual summation strategies.
type StrategyMetrics interface {
	// RecordSummation records the time taken by one summation.
	//
	// Parameters:
	//   - strategy: Strategy name ("Sequential", "Threads", "Tasks", "ParallelReduce")
	//   - size: Number of summed elements
	//   - duration: Time taken in seconds
	RecordSummation(strategy string, size int, duration float64)

	// RecordPartitionCount sets the number of partitions a strategy used (gauge metric).
	//
	// Parameters:
	//   - strategy: Strategy name
	//   - count: Number of partitions (workers)
	RecordPartitionCount(strategy string, count int)
}
