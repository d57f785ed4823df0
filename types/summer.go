package types

import "context"

// Summer computes the total of an integer sequence.
//
// Implementations differ only in how the work is executed:
//   - Sequential: Single pass with one accumulator (correctness oracle)
//   - Threads: One dedicated OS thread per partition
//   - Tasks: One task per partition submitted to a bounded pool
//   - ParallelReduce: Library-level parallel map/reduce
//
// Implementations must:
//   - Treat data as read-only
//   - Accumulate in int64 regardless of element width
//   - Return 0 for an empty sequence
//   - Return the same total for the same input on every call
type Summer interface {
	// Name returns the strategy name used in reports and metrics.
	Name() string

	// Sum returns the int64 total of data.
	//
	// Parameters:
	//   - ctx: Context checked before workers are launched
	//   - data: Input sequence (not modified)
	//
	// Returns:
	//   - int64: Total of all elements
	//   - error: Context error, nil otherwise
	Sum(ctx context.Context, data []int32) (int64, error)
}

// PartialSummer is a Summer that exposes its per-partition partial sums.
type PartialSummer interface {
	Summer

	// Workers returns the configured worker (partition) count.
	Workers() int

	// Partials returns one partial sum per partition, in partition order.
	Partials(ctx context.Context, data []int32) ([]int64, error)
}
