package objutil

import "math/rand/v2"

// Random returns a uniformly distributed integer in [min, max].
// It panics if min > max.
func Random(min, max int) int {
	return RandomFrom(nil, min, max)
}

// RandomFrom is Random drawing from r. A nil r uses the global source.
// Any bounds with min <= max are accepted, including [math.MinInt, math.MaxInt].
func RandomFrom(r *rand.Rand, min, max int) int {
	if min > max {
		panic("objutil.Random: min must not be greater than max")
	}
	// The width is computed modulo 2^64; zero means the whole int range.
	width := uint64(max) - uint64(min) + 1
	var offset uint64
	switch {
	case width == 0 && r == nil:
		offset = rand.Uint64()
	case width == 0:
		offset = r.Uint64()
	case r == nil:
		offset = rand.Uint64N(width)
	default:
		offset = r.Uint64N(width)
	}
	return int(uint64(min) + offset)
}
