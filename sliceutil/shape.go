package sliceutil

import (
	"reflect"
	"slices"

	"undergo/seqs"
)

// Flat concatenates the inner slices into one slice.
func Flat[T any](collection [][]T) []T {
	return slices.Concat(collection...)
}

// Flatten inlines nested slices and arrays into a single slice.
// With shallow set only one level of nesting is removed and deeper
// sequences are kept as elements. Strings are not treated as sequences.
func Flatten(collection []any, shallow bool) []any {
	depth := -1
	if shallow {
		depth = 1
	}
	return flattenInto(make([]any, 0, len(collection)), reflect.ValueOf(collection), depth)
}

// flattenInto appends the elements of seq to dst, descending into nested
// sequences while depth is non-zero. A negative depth means no limit.
func flattenInto(dst []any, seq reflect.Value, depth int) []any {
	for i := range seq.Len() {
		elem := seq.Index(i)
		for elem.Kind() == reflect.Interface && !elem.IsNil() {
			elem = elem.Elem()
		}
		if depth != 0 && isSequence(elem) {
			dst = flattenInto(dst, elem, depth-1)
			continue
		}
		dst = append(dst, elem.Interface())
	}
	return dst
}

func isSequence(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice:
		return !v.IsNil()
	case reflect.Array:
		return true
	default:
		return false
	}
}

// Range returns 0, 1, ... stop-1.
func Range[T seqs.Number](stop T) []T {
	return RangeStep(0, stop, 1)
}

// RangeStep returns start, start+step, ... up to but excluding stop.
// A negative step counts down. A zero step returns an empty slice.
func RangeStep[T seqs.Number](start, stop, step T) []T {
	res := slices.Collect(seqs.Range(start, stop, step))
	if res == nil {
		return []T{}
	}
	return res
}

// ZipMap builds a map from parallel key and value slices: result[keys[i]] = values[i].
// Later duplicates of a key overwrite earlier ones.
func ZipMap[K comparable, V any](keys []K, values []V) map[K]V {
	if len(keys) != len(values) {
		panic("sliceutil.ZipMap: keys and values must have the same length")
	}
	res := make(map[K]V, len(keys))
	for i, k := range keys {
		res[k] = values[i]
	}
	return res
}
