package types

import "context"

// DataSource produces the input sequence for one benchmark round.
//
// Implementations:
//   - Static: Fixed sequence for testing
//   - Random: Seeded uniform random integers
type DataSource interface {
	// Generate returns a sequence of exactly n elements.
	//
	// Parameters:
	//   - ctx: Context for cancellation
	//   - n: Number of elements (must be >= 0)
	//
	// Returns:
	//   - []int32: Generated sequence, owned by the caller
	//   - error: ErrInvalidLength for negative n, or a context error
	Generate(ctx context.Context, n int) ([]int32, error)
}
