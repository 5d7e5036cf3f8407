// Package euler solves Project Euler puzzles with the undergo utilities.
package euler

import (
	"undergo/sliceutil"
)

// SumOfMultiples returns the sum of the natural numbers below limit that are
// multiples of at least one of factors. Non-positive factors contribute
// nothing.
func SumOfMultiples(limit int, factors ...int) int {
	multiples := sliceutil.Map(factors, func(f int) []int {
		if f <= 0 {
			return nil
		}
		return sliceutil.RangeStep(f, limit, f)
	})
	return sliceutil.Sum(sliceutil.UniqueSorted(sliceutil.Flat(multiples)))
}

// Problem1 is the sum of all the multiples of 3 or 5 below limit.
func Problem1(limit int) int {
	return SumOfMultiples(limit, 3, 5)
}
