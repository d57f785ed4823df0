package strategy

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/parsum/internal/reduce"
	"github.com/arloliu/parsum/partition"
	"github.com/arloliu/parsum/types"
)

// Tasks sums the sequence by submitting one task per partition to a bounded pool.
//
// The pool runs at most poolSize tasks at once (GOMAXPROCS by default), so a
// worker count larger than the pool queues tasks instead of creating more
// concurrent executions.
type Tasks struct {
	workers  int
	poolSize int
}

var _ types.PartialSummer = (*Tasks)(nil)

// TasksOption configures a Tasks strategy.
type TasksOption func(*Tasks)

// WithPoolSize sets the maximum number of tasks executing concurrently.
//
// Values <= 0 select runtime.GOMAXPROCS(0) at call time.
//
// Parameters:
//   - size: Pool size
//
// Returns:
//   - TasksOption: Configuration option
func WithPoolSize(size int) TasksOption {
	return func(t *Tasks) {
		t.poolSize = size
	}
}

// NewTasks creates a new task-pool strategy.
//
// Parameters:
//   - workers: Number of partitions and tasks (must be > 0)
//   - opts: Optional configuration (WithPoolSize)
//
// Returns:
//   - *Tasks: Initialized strategy
//   - error: ErrInvalidWorkerCount if workers <= 0
//
// Example:
//
//	summer, err := strategy.NewTasks(4, strategy.WithPoolSize(2))
//	total, err := summer.Sum(ctx, data)
func NewTasks(workers int, opts ...TasksOption) (*Tasks, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("tasks strategy with %d workers: %w", workers, types.ErrInvalidWorkerCount)
	}

	t := &Tasks{workers: workers}
	for _, opt := range opts {
		opt(t)
	}

	return t, nil
}

// Name returns "Tasks".
func (t *Tasks) Name() string {
	return TasksName
}

// Workers returns the configured task count.
func (t *Tasks) Workers() int {
	return t.workers
}

// Sum returns the int64 total of data.
func (t *Tasks) Sum(ctx context.Context, data []int32) (int64, error) {
	partials, err := t.Partials(ctx, data)
	if err != nil {
		return 0, err
	}

	return reduce.Combine(partials), nil
}

// Partials returns the per-task partial sums in partition order.
//
// Tasks that have not started when ctx is canceled are skipped and the
// context error is returned after every started task finished.
func (t *Tasks) Partials(ctx context.Context, data []int32) ([]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("tasks sum: %w", err)
	}

	parts, err := partition.Plan(len(data), t.workers)
	if err != nil {
		return nil, err
	}

	poolSize := t.poolSize
	if poolSize <= 0 {
		poolSize = runtime.GOMAXPROCS(0)
	}

	partials := make([]int64, len(parts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(poolSize)
	for _, p := range parts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			partials[p.Index] = reduce.Accumulate(data[p.Start:p.End])

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("tasks sum: %w", err)
	}

	return partials, nil
}
