package objutil

import (
	"cmp"
	"maps"
	"slices"

	"github.com/samber/lo"
)

// Keys returns the keys of m in no particular order.
func Keys[M ~map[K]V, K comparable, V any](m M) []K {
	return lo.Keys(map[K]V(m))
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	return slices.Sorted(maps.Keys(m))
}

// Values returns the values of m in no particular order.
func Values[M ~map[K]V, K comparable, V any](m M) []V {
	return lo.Values(map[K]V(m))
}

// Pairs returns the key/value pairs of m sorted by key.
func Pairs[M ~map[K]V, K cmp.Ordered, V any](m M) []lo.Entry[K, V] {
	entries := lo.Entries(map[K]V(m))
	slices.SortFunc(entries, func(a, b lo.Entry[K, V]) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return entries
}

// Each calls action for every entry of m in ascending key order.
func Each[M ~map[K]V, K cmp.Ordered, V any](m M, action func(K, V)) {
	for _, k := range SortedKeys(m) {
		action(k, m[k])
	}
}

// Extend copies every entry of sources into dst, later sources winning,
// and returns dst. A nil dst is allocated.
func Extend[M ~map[K]V, K comparable, V any](dst M, sources ...M) M {
	if dst == nil {
		dst = make(M)
	}
	for _, src := range sources {
		maps.Copy(dst, src)
	}
	return dst
}

// Merge is Extend without side effects: it returns a new map.
func Merge[M ~map[K]V, K comparable, V any](objects ...M) M {
	return lo.Assign(objects...)
}

// Defaults fills in the keys of dst that are missing, taking the value from
// the first source that has them, and returns dst. Existing keys are never
// overwritten. A nil dst is allocated.
func Defaults[M ~map[K]V, K comparable, V any](dst M, sources ...M) M {
	if dst == nil {
		dst = make(M)
	}
	for _, src := range sources {
		for k, v := range src {
			if _, ok := dst[k]; !ok {
				dst[k] = v
			}
		}
	}
	return dst
}

// Pick returns a new map with only the listed keys that m holds.
func Pick[M ~map[K]V, K comparable, V any](m M, keys ...K) M {
	return lo.PickByKeys(m, keys)
}

// Omit returns a new map without the listed keys.
func Omit[M ~map[K]V, K comparable, V any](m M, keys ...K) M {
	return lo.OmitByKeys(m, keys)
}

func HasKey[M ~map[K]V, K comparable, V any](m M, key K) bool {
	_, ok := m[key]
	return ok
}
