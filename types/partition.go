package types

import "fmt"

// Partition is a contiguous half-open index range [Start, End) of the input
// sequence assigned to exactly one worker.
//
// Partitions produced by a single plan are disjoint, ordered by Index, and
// their union is the full input range.
type Partition struct {
	// Index is the worker slot that owns this range (0-based).
	Index int `json:"index"`

	// Start is the first index covered by the partition (inclusive).
	Start int `json:"start"`

	// End is one past the last index covered by the partition (exclusive).
	End int `json:"end"`
}

// Len returns the number of elements covered by the partition.
//
// Returns:
//   - int: End - Start (0 for an empty partition)
func (p Partition) Len() int {
	return p.End - p.Start
}

// Empty reports whether the partition covers no elements.
func (p Partition) Empty() bool {
	return p.End <= p.Start
}

// String renders the partition as a half-open interval, e.g. "[0,2)".
func (p Partition) String() string {
	return fmt.Sprintf("[%d,%d)", p.Start, p.End)
}
