package source

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/arloliu/parsum/types"
)

// cancelCheckInterval is how many elements are generated between context checks.
const cancelCheckInterval = 1 << 16

// Random generates uniformly distributed values in [0, maxValue).
//
// Two calls with the same seed and length return identical sequences.
type Random struct {
	seed     uint64
	maxValue int32
}

var _ types.DataSource = (*Random)(nil)

// RandomOption configures a Random source.
type RandomOption func(*Random)

// WithSeed sets the generator seed. 0 (default) seeds from the current time.
func WithSeed(seed uint64) RandomOption {
	return func(r *Random) {
		r.seed = seed
	}
}

// WithMaxValue sets the exclusive upper bound of generated values.
//
// Values <= 0 keep the default math.MaxInt32.
func WithMaxValue(maxValue int32) RandomOption {
	return func(r *Random) {
		if maxValue > 0 {
			r.maxValue = maxValue
		}
	}
}

// NewRandom creates a new random data source.
//
// Parameters:
//   - opts: Optional configuration (WithSeed, WithMaxValue)
//
// Returns:
//   - *Random: Initialized source
//
// Example:
//
//	src := source.NewRandom(source.WithSeed(42))
//	data, err := src.Generate(ctx, 1_000_000)
func NewRandom(opts ...RandomOption) *Random {
	r := &Random{maxValue: math.MaxInt32}
	for _, opt := range opts {
		opt(r)
	}
	if r.seed == 0 {
		r.seed = uint64(time.Now().UnixNano()) //nolint:gosec
	}

	return r
}

// Seed returns the effective seed, including a time-derived one.
func (r *Random) Seed() uint64 {
	return r.seed
}

// MaxValue returns the exclusive upper bound of generated values.
func (r *Random) MaxValue() int32 {
	return r.maxValue
}

// Generate returns n uniformly random values.
//
// Returns:
//   - []int32: A fresh slice owned by the caller
//   - error: ErrInvalidLength for negative n, or the context error if ctx is
//     canceled while generating
func (r *Random) Generate(ctx context.Context, n int) ([]int32, error) {
	if n < 0 {
		return nil, fmt.Errorf("random source length %d: %w", n, types.ErrInvalidLength)
	}

	rng := rand.New(rand.NewPCG(r.seed, uint64(n))) //nolint:gosec
	data := make([]int32, n)
	for i := range data {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("generate %d values: %w", n, err)
			}
		}
		data[i] = rng.Int32N(r.maxValue)
	}

	return data, nil
}
