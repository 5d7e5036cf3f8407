package dynamic

import (
	"cmp"
	"slices"

	"undergo/sliceutil"
)

// first and last return a single element when n is 1 (the default) and a
// sequence of up to n elements otherwise.
func first(a arguments) (any, error) {
	return takeEnd(a, sliceutil.First[any], sliceutil.FirstN[any])
}

func last(a arguments) (any, error) {
	return takeEnd(a, sliceutil.Last[any], sliceutil.LastN[any])
}

func takeEnd(a arguments, one func([]any) (any, bool), many func([]any, int) []any) (any, error) {
	items, err := a.sequence(0)
	if err != nil {
		return nil, err
	}
	n, err := a.integer(1, 1)
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, invalid(a.fn, 1, "must be at least 1, got %d", n)
	}
	if n == 1 {
		v, _ := one(items)
		return v, nil
	}
	return many(items, n), nil
}

func flatten(a arguments) (any, error) {
	items, err := a.sequence(0)
	if err != nil {
		return nil, err
	}
	return sliceutil.Flatten(items, a.flag(1)), nil
}

// unique removes duplicates keeping first occurrences. With the sort flag
// the result is ordered by string form, or by value when numeric is also set.
func unique(a arguments) (any, error) {
	items, err := a.sequence(0)
	if err != nil {
		return nil, err
	}
	out := sliceutil.UniqueBy(items, identityKey)
	if !a.flag(1) {
		return out, nil
	}
	if !a.flag(2) {
		slices.SortStableFunc(out, func(x, y any) int {
			return cmp.Compare(display(x), display(y))
		})
		return out, nil
	}
	nums, err := sliceutil.TryMap(out, func(v any) (float64, error) {
		f, ok := asFloat(v)
		if !ok {
			return 0, invalid(a.fn, 0, "numeric sort needs numbers, got %T", v)
		}
		return f, nil
	})
	if err != nil {
		return nil, err
	}
	order := sliceutil.Range(len(out))
	slices.SortStableFunc(order, func(i, j int) int {
		return cmp.Compare(nums[i], nums[j])
	})
	return sliceutil.Map(order, func(i int) any { return out[i] }), nil
}

func union(a arguments) (any, error) {
	var all []any
	for i := range a.values {
		items, err := a.sequence(i)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
	}
	return sliceutil.UniqueBy(all, identityKey), nil
}

func without(a arguments) (any, error) {
	items, err := a.sequence(0)
	if err != nil {
		return nil, err
	}
	excluded, err := a.optionalSequence(1)
	if err != nil {
		return nil, err
	}
	return sliceutil.WithoutBy(items, excluded, identityKey), nil
}

// rangeValues takes its arguments as (stop, start, step) and yields the
// half-open interval [start, stop). Integral arguments give ints and must
// fit in an int; otherwise the values are float64.
func rangeValues(a arguments) (any, error) {
	stop, err := a.number(0)
	if err != nil {
		return nil, err
	}
	start, step := 0.0, 1.0
	if v, _ := a.get(1); v != nil {
		if start, err = a.number(1); err != nil {
			return nil, err
		}
	}
	if v, _ := a.get(2); v != nil {
		if step, err = a.number(2); err != nil {
			return nil, err
		}
	}
	if step == 0 {
		return nil, invalid(a.fn, 2, "step must not be zero")
	}

	integral := true
	for _, v := range a.values {
		integral = integral && (v == nil || isIntegral(v))
	}
	if !integral {
		floats := sliceutil.RangeStep(start, stop, step)
		return sliceutil.Map(floats, func(f float64) any { return f }), nil
	}

	bounds := [3]int{0, 0, 1}
	for i := range bounds {
		if bounds[i], err = a.integer(i, bounds[i]); err != nil {
			return nil, err
		}
	}
	ints := sliceutil.RangeStep(bounds[1], bounds[0], bounds[2])
	return sliceutil.Map(ints, func(i int) any { return i }), nil
}

func arrayToObject(a arguments) (any, error) {
	keys, err := a.sequence(0)
	if err != nil {
		return nil, err
	}
	vals, err := a.sequence(1)
	if err != nil {
		return nil, err
	}
	if len(keys) != len(vals) {
		return nil, invalid(a.fn, 1, "has %d values for %d keys", len(vals), len(keys))
	}
	return sliceutil.ZipMap(sliceutil.Map(keys, display), vals), nil
}

func chunk(a arguments) (any, error) {
	items, err := a.sequence(0)
	if err != nil {
		return nil, err
	}
	size, err := a.integer(1, 0)
	if err != nil {
		return nil, err
	}
	if size < 1 {
		return nil, invalid(a.fn, 1, "must be at least 1, got %d", size)
	}
	return sliceutil.Map(sliceutil.Chunk(items, size), func(c []any) any { return slices.Clone(c) }), nil
}
