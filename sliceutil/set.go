package sliceutil

import (
	"cmp"
	"slices"
)

// Intersection returns the distinct elements of a that also occur in b,
// in the order they first appear in a.
func Intersection[T comparable](a, b []T) []T {
	inB := make(map[T]struct{}, len(b))
	for _, v := range b {
		inB[v] = struct{}{}
	}
	return Unique(Filter(a, func(v T) bool {
		_, ok := inB[v]
		return ok
	}))
}

// Difference returns the difference between two slices (a - b).
// The result contains elements from 'a' that are not in 'b', with duplicates removed.
func Difference[T comparable](a, b []T) []T {
	return Unique(Without(a, b...))
}

// Without returns the elements of collection not equal to any excluded value.
// Unlike Difference, duplicates that survive are kept.
func Without[T comparable](collection []T, excluded ...T) []T {
	return WithoutBy(collection, excluded, func(v T) T { return v })
}

// WithoutBy is Without comparing elements by the key keySelector derives from them.
func WithoutBy[T any, K comparable](collection []T, excluded []T, keySelector func(T) K) []T {
	drop := make(map[K]struct{}, len(excluded))
	for _, v := range excluded {
		drop[keySelector(v)] = struct{}{}
	}
	return Filter(collection, func(v T) bool {
		_, found := drop[keySelector(v)]
		return !found
	})
}

// Unique returns the distinct elements of collection.
// The relative order of the first occurrence of elements is preserved
// and the input is left untouched.
func Unique[T comparable](collection []T) []T {
	return UniqueBy(collection, func(v T) T { return v })
}

// UniqueBy removes duplicates using a key selector.
// Useful for non-comparable types or custom uniqueness logic.
func UniqueBy[T any, K comparable](collection []T, keySelector func(T) K) []T {
	if len(collection) == 0 {
		return []T{}
	}
	seen := make(map[K]struct{}, len(collection))
	result := make([]T, 0, len(collection))
	for _, v := range collection {
		k := keySelector(v)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			result = append(result, v)
		}
	}
	return result
}

// UniqueSorted returns the distinct elements of collection in ascending order.
// Numbers sort numerically and strings lexicographically.
func UniqueSorted[T cmp.Ordered](collection []T) []T {
	result := Unique(collection)
	slices.Sort(result)
	return result
}

// Union returns the union of two slices (merged and deduplicated).
func Union[T comparable](a, b []T) []T {
	return UnionBy(a, b, func(v T) T { return v })
}

// UnionBy returns the union of two slices using a key selector.
func UnionBy[T any, K comparable](a, b []T, keySelector func(T) K) []T {
	return UniqueBy(slices.Concat(a, b), keySelector)
}
