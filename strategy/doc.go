// Package strategy provides the built-in summation strategies.
//
// Every strategy computes the same int64 total; they differ only in how the
// work is executed:
//
//   - Sequential: Single pass with one accumulator (baseline and oracle)
//   - Threads: One partition per dedicated OS thread, joined with a WaitGroup
//   - Tasks: One partition per task on a bounded errgroup pool
//   - ParallelReduce: pargo range reduction that batches the input itself
//
// # Partitioning
//
// Threads and Tasks split the input with partition.Plan: W contiguous ranges
// of floor(N/W) elements, the last range absorbing the remainder. Each worker
// writes only its own partial-sum slot, and the slots are combined in index
// order after every worker finished, so no locks or atomics are involved.
//
// # Worker count
//
// Constructors reject a worker count <= 0 with types.ErrInvalidWorkerCount.
// A worker count larger than the input length is allowed: the surplus
// partitions are empty and contribute 0.
//
// Custom strategies can be implemented by satisfying the types.Summer
// interface and added to a Registry.
package strategy
