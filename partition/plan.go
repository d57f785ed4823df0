package partition

import (
	"fmt"

	"github.com/arloliu/parsum/types"
)

// Plan splits [0, n) into exactly workers contiguous partitions.
//
// Every partition holds n/workers elements (floor division) and the last one
// also takes the remainder. When n < workers the leading partitions are
// empty and the last partition covers the whole sequence.
//
// Parameters:
//   - n: Sequence length (must be >= 0)
//   - workers: Worker count (must be > 0)
//
// Returns:
//   - []types.Partition: Partitions ordered by Index
//   - error: ErrInvalidWorkerCount or ErrInvalidLength
//
// Example:
//
//	parts, err := partition.Plan(len(data), 4)
//	for _, p := range parts {
//	    go sum(data[p.Start:p.End])
//	}
func Plan(n, workers int) ([]types.Partition, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("plan %d workers: %w", workers, types.ErrInvalidWorkerCount)
	}
	if n < 0 {
		return nil, fmt.Errorf("plan length %d: %w", n, types.ErrInvalidLength)
	}

	chunk := n / workers
	parts := make([]types.Partition, workers)
	for i := range parts {
		parts[i] = types.Partition{
			Index: i,
			Start: i * chunk,
			End:   (i + 1) * chunk,
		}
	}
	parts[workers-1].End = n

	return parts, nil
}

// Validate checks that parts is an ordered, gap-free, non-overlapping cover of [0, n).
//
// Parameters:
//   - parts: Partitions to check
//   - n: Expected sequence length
//
// Returns:
//   - error: Description of the first violation, nil if the plan is valid
func Validate(parts []types.Partition, n int) error {
	if len(parts) == 0 {
		return fmt.Errorf("empty plan: %w", types.ErrInvalidWorkerCount)
	}

	next := 0
	for i, p := range parts {
		if p.Index != i {
			return fmt.Errorf("partition %d has index %d", i, p.Index)
		}
		if p.End < p.Start {
			return fmt.Errorf("partition %d is inverted: %s", i, p)
		}
		// empty partitions carry no position
		if p.Empty() {
			continue
		}
		if p.Start != next {
			return fmt.Errorf("partition %d starts at %d, expected %d", i, p.Start, next)
		}
		next = p.End
	}

	if next != n {
		return fmt.Errorf("plan covers [0,%d), expected [0,%d)", next, n)
	}

	return nil
}
