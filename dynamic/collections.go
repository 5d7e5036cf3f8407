package dynamic

import (
	"undergo/seqs"
	"undergo/sliceutil"
)

func each(a arguments) (any, error) {
	items, err := a.entries(0)
	if err != nil {
		return nil, err
	}
	visit, err := a.iteratee(1)
	if err != nil {
		return nil, err
	}
	sliceutil.Each(items, func(e entry) { visit(e.value, e.key) })
	return nil, nil
}

func mapValues(a arguments) (any, error) {
	items, err := a.entries(0)
	if err != nil {
		return nil, err
	}
	transform, err := a.iteratee(1)
	if err != nil {
		return nil, err
	}
	return sliceutil.Map(items, func(e entry) any { return transform(e.value, e.key) }), nil
}

func reduce(a arguments) (any, error) {
	items, err := a.entries(0)
	if err != nil {
		return nil, err
	}
	reducer, err := a.reducer(1)
	if err != nil {
		return nil, err
	}
	// A fold without a seed has no defined result for an empty collection.
	initial, ok := a.get(2)
	if !ok {
		return nil, invalid(a.fn, 2, "initial value is required")
	}
	return sliceutil.Reduce(items, func(acc any, e entry) any { return reducer(acc, e.value) }, initial), nil
}

// sum adds as int when every element is an integer that fits, so large
// integral sums keep full precision; otherwise it adds as float64.
func sum(a arguments) (any, error) {
	items, err := a.sequence(0)
	if err != nil {
		return nil, err
	}
	if ints, err := sliceutil.TryMap(items, toInt); err == nil {
		return sliceutil.Sum(ints), nil
	}
	nums, err := sliceutil.TryMap(items, func(v any) (float64, error) {
		f, ok := asFloat(v)
		if !ok {
			return 0, invalid(a.fn, 0, "must contain only numbers, got %T", v)
		}
		return f, nil
	})
	if err != nil {
		return nil, err
	}
	return sliceutil.Sum(nums), nil
}

func toInt(v any) (int, error) {
	n, ok := asInt(v)
	if !ok {
		return 0, ErrInvalidArgument
	}
	return n, nil
}

func filter(a arguments) (any, error) {
	return selectEntries(a, true)
}

// reject keeps the elements the predicate refuses.
func reject(a arguments) (any, error) {
	return selectEntries(a, false)
}

func selectEntries(a arguments, keep bool) (any, error) {
	items, err := a.entries(0)
	if err != nil {
		return nil, err
	}
	test, err := a.predicate(1)
	if err != nil {
		return nil, err
	}
	return values(sliceutil.Filter(items, func(e entry) bool {
		return test(e.value, e.key) == keep
	})), nil
}

func find(a arguments) (any, error) {
	items, err := a.entries(0)
	if err != nil {
		return nil, err
	}
	test, err := a.predicate(1)
	if err != nil {
		return nil, err
	}
	found, _ := sliceutil.Find(items, func(e entry) bool { return test(e.value, e.key) })
	return found.value, nil
}

// where returns the caller's own elements, unconverted, whose object form
// holds every criteria pair.
func where(a arguments) (any, error) {
	items, err := a.sequence(0)
	if err != nil {
		return nil, err
	}
	criteria, err := a.object(1)
	if err != nil {
		return nil, err
	}
	return sliceutil.Filter(items, func(item any) bool {
		obj, ok := toObject(item)
		return ok && sliceutil.Matches(obj, criteria, strictEqual)
	}), nil
}

func pluck(a arguments) (any, error) {
	items, err := a.sequence(0)
	if err != nil {
		return nil, err
	}
	attribute, err := a.str(1)
	if err != nil {
		return nil, err
	}
	var objects []map[string]any
	for _, item := range items {
		if obj, ok := toObject(item); ok {
			objects = append(objects, obj)
		}
	}
	return sliceutil.PluckFunc(objects, attribute, truthy), nil
}

func contains(a arguments) (any, error) {
	items, err := a.sequence(0)
	if err != nil {
		return nil, err
	}
	target, err := a.required(1)
	if err != nil {
		return nil, err
	}
	return sliceutil.ContainsFunc(items, func(v any) bool { return strictEqual(v, target) }), nil
}

// times calls fn n times with the argument sequence.
func times(a arguments) (any, error) {
	n, err := a.integer(0, 0)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, invalid(a.fn, 0, "must not be negative, got %d", n)
	}
	call, err := a.iteratee(1)
	if err != nil {
		return nil, err
	}
	args, err := a.sequence(2)
	if err != nil {
		return nil, err
	}
	seqs.Each(seqs.Times(n), func(i int) { call(args, i) })
	return nil, nil
}
