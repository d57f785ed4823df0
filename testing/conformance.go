package testing

import (
	"context"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/parsum/internal/reduce"
	"github.com/arloliu/parsum/types"
)

// Sequence returns the values 1..n.
func Sequence(n int) []int32 {
	data := make([]int32, n)
	for i := range data {
		data[i] = int32(i + 1)
	}

	return data
}

// Repeat returns n copies of v.
func Repeat(v int32, n int) []int32 {
	data := make([]int32, n)
	for i := range data {
		data[i] = v
	}

	return data
}

// RequireConformance checks that s returns the sequential total for the
// standard input fixtures and leaves its input untouched.
//
// Covered cases:
//   - 1..8 sums to 36
//   - ten ones sum to 10 (remainder on the last partition)
//   - empty input sums to 0
//   - fewer elements than typical worker counts
//   - totals beyond the int32 range
//   - seeded random input, summed twice
//   - canceled context returns context.Canceled
func RequireConformance(t *testing.T, s types.Summer) {
	t.Helper()

	cases := []struct {
		name string
		data []int32
	}{
		{name: "one to eight", data: Sequence(8)},
		{name: "ten ones", data: Repeat(1, 10)},
		{name: "empty", data: []int32{}},
		{name: "nil", data: nil},
		{name: "shorter than workers", data: Sequence(3)},
		{name: "beyond int32", data: Repeat(math.MaxInt32, 16)},
		{name: "negative values", data: []int32{-5, 3, -1, 7, math.MinInt32}},
		{name: "random", data: random(10_007, 1)},
	}

	for _, tc := range cases {
		t.Run(s.Name()+"/"+tc.name, func(t *testing.T) {
			input := slices.Clone(tc.data)
			want := reduce.Accumulate(tc.data)

			got, err := s.Sum(context.Background(), input)
			require.NoError(t, err)
			require.Equal(t, want, got)
			require.Equal(t, tc.data, input, "input was modified")

			again, err := s.Sum(context.Background(), input)
			require.NoError(t, err)
			require.Equal(t, got, again)
		})
	}

	t.Run(s.Name()+"/canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := s.Sum(ctx, Sequence(8))
		require.ErrorIs(t, err, context.Canceled)
	})
}

func random(n int, seed uint64) []int32 {
	rng := rand.New(rand.NewPCG(seed, 0))
	data := make([]int32, n)
	for i := range data {
		data[i] = rng.Int32()
	}

	return data
}
