package source

import (
	"context"
	"fmt"
	"sync"

	"github.com/arloliu/parsum/types"
)

// Static implements a data source backed by a fixed list of values.
type Static struct {
	mu     sync.RWMutex
	values []int32
}

var _ types.DataSource = (*Static)(nil)

// NewStatic creates a new static data source.
//
// Generate returns the first n values, repeating the list cyclically when n
// exceeds its length. An empty list yields zero-valued elements.
//
// Parameters:
//   - values: Fixed values (copied)
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := source.NewStatic([]int32{1, 2, 3, 4, 5, 6, 7, 8})
//	runner, err := parsum.NewRunner(&cfg, src, summers)
func NewStatic(values []int32) *Static {
	s := &Static{}
	s.Update(values)

	return s
}

// Generate returns n elements taken cyclically from the static values.
//
// Returns:
//   - []int32: A fresh slice owned by the caller
//   - error: ErrInvalidLength for negative n
func (s *Static) Generate(_ context.Context, n int) ([]int32, error) {
	if n < 0 {
		return nil, fmt.Errorf("static source length %d: %w", n, types.ErrInvalidLength)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]int32, n)
	if len(s.values) == 0 {
		return result, nil
	}

	for off := 0; off < n; off += len(s.values) {
		copy(result[off:], s.values)
	}

	return result, nil
}

// Update replaces the static values.
//
// Parameters:
//   - values: New values (copied)
func (s *Static) Update(values []int32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = make([]int32, len(values))
	copy(s.values, values)
}
