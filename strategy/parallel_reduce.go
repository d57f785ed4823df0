package strategy

import (
	"context"
	"fmt"

	"github.com/exascience/pargo/parallel"

	"github.com/arloliu/parsum/internal/reduce"
	"github.com/arloliu/parsum/types"
)

// ParallelReduce sums the sequence with pargo's parallel range reduction.
//
// Every element is widened to int64 and the batches are combined with
// integer addition. pargo decides the batch boundaries itself, so no
// partition plan is involved and no remainder handling applies.
type ParallelReduce struct {
	batches int
}

var _ types.Summer = (*ParallelReduce)(nil)

// ParallelReduceOption configures a ParallelReduce strategy.
type ParallelReduceOption func(*ParallelReduce)

// WithBatches sets the number of batches pargo splits the range into.
//
// 0 (default) lets pargo derive the count from GOMAXPROCS. Negative values
// are treated as 0.
func WithBatches(n int) ParallelReduceOption {
	return func(p *ParallelReduce) {
		p.batches = max(n, 0)
	}
}

// NewParallelReduce creates a new declarative parallel-reduce strategy.
func NewParallelReduce(opts ...ParallelReduceOption) *ParallelReduce {
	p := &ParallelReduce{}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Name returns "ParallelReduce".
func (p *ParallelReduce) Name() string {
	return ParallelReduceName
}

// Sum returns the int64 total of data.
func (p *ParallelReduce) Sum(ctx context.Context, data []int32) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("parallel reduce sum: %w", err)
	}
	if len(data) == 0 {
		return 0, nil
	}

	total := parallel.RangeReduce(0, len(data), p.batches,
		func(low, high int) interface{} {
			return reduce.Accumulate(data[low:high])
		},
		func(x, y interface{}) interface{} {
			return x.(int64) + y.(int64)
		},
	)

	return total.(int64), nil
}
