// Package reduce provides the accumulation kernels shared by all summation strategies.
package reduce

import "golang.org/x/exp/constraints"

// Accumulate returns the sum of data using a single int64 accumulator.
//
// Elements are widened to int64 before addition. Overflow of the int64
// accumulator is not detected.
func Accumulate[T constraints.Integer](data []T) int64 {
	var total int64
	for _, v := range data {
		total += int64(v)
	}

	return total
}

// Combine joins partial sums in index order.
func Combine(partials []int64) int64 {
	return Accumulate(partials)
}
