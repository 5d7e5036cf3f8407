package seqs

import "iter"

// Number is the set of types Sum, Min and Max operate on.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum adds up every element of seq. The sum of an empty sequence is zero.
func Sum[T Number](seq iter.Seq[T]) T {
	return Reduce(seq, T(0), func(acc, v T) T { return acc + v })
}

func Min[T Number](seq iter.Seq[T]) (T, bool) {
	return extreme(seq, func(a, b T) bool { return a < b })
}

func Max[T Number](seq iter.Seq[T]) (T, bool) {
	return extreme(seq, func(a, b T) bool { return a > b })
}

// extreme returns the element that wins every comparison under better.
func extreme[T Number](seq iter.Seq[T], better func(a, b T) bool) (T, bool) {
	var best T
	found := false
	for v := range seq {
		if !found || better(v, best) {
			best = v
			found = true
		}
	}
	return best, found
}
