package seqs

import "iter"

// Each calls action for every element of seq, in order.
func Each[T any](seq iter.Seq[T], action func(T)) {
	for v := range seq {
		action(v)
	}
}

// Filter yields only the elements that satisfy predicate.
func Filter[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if predicate(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Reject is the complement of Filter: it yields the elements for which
// predicate returns false.
func Reject[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return Filter(seq, func(v T) bool { return !predicate(v) })
}

// Map applies transform to each element of seq.
func Map[T, R any](seq iter.Seq[T], transform func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// Reduce folds seq from left to right, starting from initial.
// An empty sequence returns initial unchanged.
func Reduce[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) R) R {
	acc := initial
	for v := range seq {
		acc = reducer(acc, v)
	}
	return acc
}
