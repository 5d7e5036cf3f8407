package sliceutil

import (
	"reflect"
	"slices"
)

// Contains reports whether target is an element of collection.
func Contains[T comparable](collection []T, target T) bool {
	return slices.Contains(collection, target)
}

// ContainsFunc reports whether any element satisfies predicate.
func ContainsFunc[T any](collection []T, predicate func(T) bool) bool {
	return FindIndex(collection, predicate) >= 0
}

// Find returns the first element satisfying predicate, or the zero value
// and false.
func Find[T any](collection []T, predicate func(T) bool) (T, bool) {
	if i := FindIndex(collection, predicate); i >= 0 {
		return collection[i], true
	}
	var zero T
	return zero, false
}

// FindIndex returns the index of the first element satisfying predicate, or -1.
func FindIndex[T any](collection []T, predicate func(T) bool) int {
	return slices.IndexFunc(collection, predicate)
}

// First returns the first element, or false when the slice is empty.
func First[T any](collection []T) (T, bool) {
	if len(collection) == 0 {
		var zero T
		return zero, false
	}
	return collection[0], true
}

// Last returns the last element, or false when the slice is empty.
func Last[T any](collection []T) (T, bool) {
	if len(collection) == 0 {
		var zero T
		return zero, false
	}
	return collection[len(collection)-1], true
}

// FirstN returns a copy of the first min(n, len(collection)) elements.
func FirstN[T any](collection []T, n int) []T {
	n = max(0, min(n, len(collection)))
	res := make([]T, n)
	copy(res, collection[:n])
	return res
}

// LastN returns a copy of the last min(n, len(collection)) elements.
func LastN[T any](collection []T, n int) []T {
	n = max(0, min(n, len(collection)))
	res := make([]T, n)
	copy(res, collection[len(collection)-n:])
	return res
}

// Where returns the maps holding every key/value pair of criteria.
// A map missing one of the criteria keys never matches.
func Where[M ~map[K]V, K comparable, V comparable](objects []M, criteria map[K]V) []M {
	return WhereFunc(objects, criteria, func(a, b V) bool { return a == b })
}

// WhereFunc is Where with a caller-supplied equality.
func WhereFunc[M ~map[K]V, K comparable, V any](objects []M, criteria map[K]V, equal func(V, V) bool) []M {
	return Filter(objects, func(obj M) bool {
		return Matches(obj, criteria, equal)
	})
}

// Matches reports whether obj holds every key of criteria with a value
// equal to the criteria value.
func Matches[M ~map[K]V, K comparable, V any](obj M, criteria map[K]V, equal func(V, V) bool) bool {
	for k, want := range criteria {
		got, ok := obj[k]
		if !ok || !equal(got, want) {
			return false
		}
	}
	return true
}

// Pluck collects the value stored under key in each map.
// Maps without the key, or holding the zero value there, are skipped.
func Pluck[M ~map[K]V, K comparable, V any](objects []M, key K) []V {
	return PluckFunc(objects, key, func(v V) bool {
		return !reflect.ValueOf(&v).Elem().IsZero()
	})
}

// PluckFunc is Pluck with a caller-supplied test deciding which values to keep.
func PluckFunc[M ~map[K]V, K comparable, V any](objects []M, key K, keep func(V) bool) []V {
	res := make([]V, 0, len(objects))
	for _, obj := range objects {
		if v, ok := obj[key]; ok && keep(v) {
			res = append(res, v)
		}
	}
	return res
}
