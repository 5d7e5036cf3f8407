package sliceutil

import (
	"slices"

	"undergo/seqs"
)

// ==========================================
//  Iteration and Folds
// ==========================================

// Each calls action once per element, in source order.
func Each[T any](collection []T, action func(T)) {
	seqs.Each(slices.Values(collection), action)
}

// EachIndex is Each with the element's index passed alongside it.
func EachIndex[T any](collection []T, action func(int, T)) {
	for i, v := range collection {
		action(i, v)
	}
}

// Filter returns the elements that satisfy predicate in a new slice.
// The result is never nil.
func Filter[T any](collection []T, predicate func(T) bool) []T {
	res := make([]T, 0, len(collection)/2)
	return slices.AppendSeq(res, seqs.Filter(slices.Values(collection), predicate))
}

// Reject returns the elements that do not satisfy predicate.
func Reject[T any](collection []T, predicate func(T) bool) []T {
	return Filter(collection, func(v T) bool { return !predicate(v) })
}

// FilterInPlace compacts the elements that satisfy predicate to the front
// of collection and returns that prefix. Nothing is allocated, and the
// vacated tail is zeroed.
func FilterInPlace[T any](collection []T, predicate func(T) bool) []T {
	kept := 0
	for _, v := range collection {
		if predicate(v) {
			collection[kept] = v
			kept++
		}
	}
	clear(collection[kept:])
	return collection[:kept]
}

// Map returns transform applied to every element, in order. The input is
// never modified, the result has the same length and is never nil.
func Map[T any, R any](collection []T, transform func(T) R) []R {
	res := make([]R, len(collection))
	for i, v := range collection {
		res[i] = transform(v)
	}
	return res
}

// Reduce folds the slice from left to right, starting from initial.
func Reduce[T any, R any](collection []T, accumulator func(R, T) R, initial R) R {
	return seqs.Reduce(slices.Values(collection), initial, accumulator)
}

// Sum adds up the elements of a numeric slice.
func Sum[T seqs.Number](collection []T) T {
	return seqs.Sum(slices.Values(collection))
}

// Times calls fn with every index in [0, n) and collects the results.
func Times[T any](n int, fn func(int) T) []T {
	return Map(Range(n), fn)
}

// ==========================================
//  Fallible Variants
//  The first error stops the walk and is returned.
// ==========================================

// TryFilter is Filter with a predicate that may fail.
func TryFilter[T any](collection []T, predicate func(T) (bool, error)) ([]T, error) {
	res, err := TryReduce(collection, func(acc []T, v T) ([]T, error) {
		ok, err := predicate(v)
		if ok && err == nil {
			acc = append(acc, v)
		}
		return acc, err
	}, make([]T, 0, len(collection)/2))
	if err != nil {
		return nil, err
	}
	return res, nil
}

// TryMap is Map with a transform that may fail.
func TryMap[T any, R any](collection []T, transform func(T) (R, error)) ([]R, error) {
	res := make([]R, len(collection))
	for i, v := range collection {
		out, err := transform(v)
		if err != nil {
			return nil, err
		}
		res[i] = out
	}
	return res, nil
}

// TryReduce is Reduce with an accumulator that may fail. On failure the
// accumulator's last result is returned with the error.
func TryReduce[T any, R any](collection []T, accumulator func(R, T) (R, error), initial R) (R, error) {
	acc := initial
	for _, v := range collection {
		var err error
		if acc, err = accumulator(acc, v); err != nil {
			return acc, err
		}
	}
	return acc, nil
}

// Chunk splits collection into consecutive pieces of size elements; the
// last piece may be shorter. Pieces share collection's backing array.
func Chunk[T any](collection []T, size int) [][]T {
	if size <= 0 {
		panic("sliceutil.Chunk: size must be greater than 0")
	}
	res := make([][]T, 0, (len(collection)+size-1)/size)
	return slices.AppendSeq(res, slices.Chunk(collection, size))
}
