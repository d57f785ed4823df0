package strategy

import (
	"context"
	"fmt"

	"github.com/arloliu/parsum/internal/reduce"
	"github.com/arloliu/parsum/types"
)

// Sequential sums the sequence in a single pass with one accumulator.
//
// It is the baseline for timing comparisons and the correctness oracle for
// every parallel strategy.
type Sequential struct{}

var _ types.Summer = (*Sequential)(nil)

// NewSequential creates a new sequential strategy.
func NewSequential() *Sequential {
	return &Sequential{}
}

// Name returns "Sequential".
func (s *Sequential) Name() string {
	return SequentialName
}

// Sum returns the int64 total of data.
func (s *Sequential) Sum(ctx context.Context, data []int32) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("sequential sum: %w", err)
	}

	return reduce.Accumulate(data), nil
}
