package seqs

import "iter"

// First returns the first element of seq, reporting false when it is empty.
// Only one element is pulled from seq.
func First[T any](seq iter.Seq[T]) (T, bool) {
	for v := range seq {
		return v, true
	}
	var zero T
	return zero, false
}

// Last drains seq and returns its final element.
func Last[T any](seq iter.Seq[T]) (last T, ok bool) {
	for v := range seq {
		last, ok = v, true
	}
	return last, ok
}

// Any reports whether some element satisfies predicate, stopping at the first match.
func Any[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	_, ok := First(Filter(seq, predicate))
	return ok
}

// All reports whether every element satisfies predicate. It is true for an
// empty seq.
func All[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	return !Any(Reject(seq, predicate), func(T) bool { return true })
}

func Count[T any](seq iter.Seq[T]) int {
	return Reduce(seq, 0, func(n int, _ T) int { return n + 1 })
}
