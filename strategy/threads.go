package strategy

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/arloliu/parsum/internal/reduce"
	"github.com/arloliu/parsum/partition"
	"github.com/arloliu/parsum/types"
)

// Threads sums the sequence with one dedicated OS thread per partition.
//
// Each worker goroutine locks itself to an OS thread for its whole lifetime
// and never unlocks, so the runtime retires the thread when the worker
// returns. This is the closest Go equivalent of spawning and joining raw
// threads.
type Threads struct {
	workers int
}

var _ types.PartialSummer = (*Threads)(nil)

// NewThreads creates a new thread-partitioned strategy.
//
// Parameters:
//   - workers: Number of partitions and threads (must be > 0)
//
// Returns:
//   - *Threads: Initialized strategy
//   - error: ErrInvalidWorkerCount if workers <= 0
//
// Example:
//
//	summer, err := strategy.NewThreads(4)
//	total, err := summer.Sum(ctx, data)
func NewThreads(workers int) (*Threads, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("threads strategy with %d workers: %w", workers, types.ErrInvalidWorkerCount)
	}

	return &Threads{workers: workers}, nil
}

// Name returns "Threads".
func (t *Threads) Name() string {
	return ThreadsName
}

// Workers returns the configured thread count.
func (t *Threads) Workers() int {
	return t.workers
}

// Sum returns the int64 total of data.
//
// Parameters:
//   - ctx: Checked once before threads are started
//   - data: Input sequence (not modified)
//
// Returns:
//   - int64: Total of all elements
//   - error: Context error, nil otherwise
func (t *Threads) Sum(ctx context.Context, data []int32) (int64, error) {
	partials, err := t.Partials(ctx, data)
	if err != nil {
		return 0, err
	}

	return reduce.Combine(partials), nil
}

// Partials returns the per-thread partial sums in partition order.
//
// The algorithm:
//  1. Plan one partition per worker
//  2. Start one locked thread per partition, each writing only its own slot
//  3. Wait for every thread before returning the slots
func (t *Threads) Partials(ctx context.Context, data []int32) ([]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("threads sum: %w", err)
	}

	parts, err := partition.Plan(len(data), t.workers)
	if err != nil {
		return nil, err
	}

	partials := make([]int64, len(parts))

	var wg sync.WaitGroup
	wg.Add(len(parts))
	for _, p := range parts {
		go func() {
			defer wg.Done()
			runtime.LockOSThread()

			partials[p.Index] = reduce.Accumulate(data[p.Start:p.End])
		}()
	}
	wg.Wait()

	return partials, nil
}
