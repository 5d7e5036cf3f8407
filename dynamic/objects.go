package dynamic

import (
	"undergo/objutil"
	"undergo/sliceutil"
)

// keys, values and pairs list entries in ascending key order.
func keys(a arguments) (any, error) {
	obj, err := a.object(0)
	if err != nil {
		return nil, err
	}
	return sliceutil.Map(objutil.SortedKeys(obj), func(k string) any { return k }), nil
}

func objectValues(a arguments) (any, error) {
	items, err := objectEntries(a)
	if err != nil {
		return nil, err
	}
	return values(items), nil
}

func pairs(a arguments) (any, error) {
	items, err := objectEntries(a)
	if err != nil {
		return nil, err
	}
	return sliceutil.Map(items, func(e entry) any { return []any{e.key, e.value} }), nil
}

func objectEntries(a arguments) ([]entry, error) {
	if _, err := a.object(0); err != nil {
		return nil, err
	}
	return a.entries(0)
}

// extend copies the sources into the first object and returns it. The
// caller's map is updated in place when it is a map[string]any.
func extend(a arguments) (any, error) {
	objs, err := a.objects(0)
	if err != nil {
		return nil, err
	}
	if len(objs) == 0 {
		return nil, invalid(a.fn, 0, "is required")
	}
	return objutil.Extend(objs[0], objs[1:]...), nil
}

// addDefaults fills in keys missing from the first object, never
// overwriting existing ones.
func addDefaults(a arguments) (any, error) {
	objs, err := a.objects(0)
	if err != nil {
		return nil, err
	}
	if len(objs) == 0 {
		return nil, invalid(a.fn, 0, "is required")
	}
	return objutil.Defaults(objs[0], objs[1:]...), nil
}

func pick(a arguments) (any, error) {
	return selectKeys(a, objutil.Pick[map[string]any, string, any])
}

func omit(a arguments) (any, error) {
	return selectKeys(a, objutil.Omit[map[string]any, string, any])
}

func selectKeys(a arguments, sel func(map[string]any, ...string) map[string]any) (any, error) {
	obj, err := a.object(0)
	if err != nil {
		return nil, err
	}
	names, err := a.strings(1)
	if err != nil {
		return nil, err
	}
	return sel(obj, names...), nil
}

func hasKey(a arguments) (any, error) {
	obj, err := a.object(0)
	if err != nil {
		return nil, err
	}
	key, err := a.str(1)
	if err != nil {
		return nil, err
	}
	return objutil.HasKey(obj, key), nil
}

// random takes (max) for [0, max] or (min, max) for [min, max].
func (l *Library) random(a arguments) (any, error) {
	low, err := a.integer(0, 0)
	if err != nil {
		return nil, err
	}
	high := low
	if _, ok := a.get(1); ok {
		if high, err = a.integer(1, 0); err != nil {
			return nil, err
		}
	} else {
		low = 0
	}
	if low > high {
		return nil, invalid(a.fn, len(a.values)-1, "range [%d, %d] is empty", low, high)
	}
	return objutil.RandomFrom(l.rand, low, high), nil
}

func toNumber(a arguments) (any, error) {
	v, err := a.required(0)
	if err != nil {
		return nil, err
	}
	n, ok := parseNumber(v)
	if !ok {
		return nil, invalid(a.fn, 0, "cannot convert %#v to a number", v)
	}
	return n, nil
}
