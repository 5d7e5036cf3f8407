package seqs

import "iter"

// Range yields start, start+step, ... stopping before end.
// The interval is half-open: end itself is never produced.
// A negative step counts down while the value is greater than end.
// A zero step yields nothing. The sequence also ends when the next value
// would wrap around the bounds of T or fail to move (a float step below
// the precision of the current value).
func Range[T Number](start, end, step T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if step == 0 {
			return
		}
		up := step > 0
		for i := start; up && i < end || !up && i > end; {
			if !yield(i) {
				return
			}
			next := i + step
			if up && next <= i || !up && next >= i {
				return
			}
			i = next
		}
	}
}

// Times yields the indexes 0..n-1.
func Times(n int) iter.Seq[int] {
	return Range(0, n, 1)
}

// Repeat yields value count times.
func Repeat[T any](value T, count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for range count {
			if !yield(value) {
				return
			}
		}
	}
}
