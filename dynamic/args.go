package dynamic

import (
	"math"
	"slices"

	"undergo/objutil"
)

// arguments wraps the positional arguments of one call so conversion
// failures can name the operation and position.
type arguments struct {
	fn     string
	values []any
}

func (a arguments) get(i int) (any, bool) {
	if i < len(a.values) {
		return a.values[i], true
	}
	return nil, false
}

func (a arguments) rest(i int) []any {
	if i >= len(a.values) {
		return nil
	}
	return a.values[i:]
}

func (a arguments) required(i int) (any, error) {
	v, ok := a.get(i)
	if !ok {
		return nil, invalid(a.fn, i, "is required")
	}
	return v, nil
}

func (a arguments) sequence(i int) ([]any, error) {
	v, _ := a.get(i)
	s, ok := toSequence(v)
	if !ok {
		return nil, invalid(a.fn, i, "must be a sequence, got %T", v)
	}
	return s, nil
}

// optionalSequence treats a missing or nil argument as an empty sequence.
func (a arguments) optionalSequence(i int) ([]any, error) {
	if v, _ := a.get(i); v == nil {
		return []any{}, nil
	}
	return a.sequence(i)
}

func (a arguments) object(i int) (map[string]any, error) {
	v, _ := a.get(i)
	m, ok := toObject(v)
	if !ok {
		return nil, invalid(a.fn, i, "must be an object, got %T", v)
	}
	return m, nil
}

func (a arguments) objects(from int) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(a.values))
	for i := from; i < len(a.values); i++ {
		m, err := a.object(i)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (a arguments) str(i int) (string, error) {
	v, _ := a.get(i)
	s, ok := v.(string)
	if !ok {
		return "", invalid(a.fn, i, "must be a string, got %T", v)
	}
	return s, nil
}

// strings collects string arguments from position i on. Sequences of
// strings are expanded in place.
func (a arguments) strings(i int) ([]string, error) {
	var out []string
	for j, v := range a.rest(i) {
		values := []any{v}
		if s, ok := toSequence(v); ok {
			values = s
		}
		for _, item := range values {
			s, ok := item.(string)
			if !ok {
				return nil, invalid(a.fn, i+j, "must be a string or a sequence of strings, got %T", item)
			}
			out = append(out, s)
		}
	}
	return out, nil
}

// number reads a finite number.
func (a arguments) number(i int) (float64, error) {
	v, _ := a.get(i)
	f, ok := asFloat(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, invalid(a.fn, i, "must be a finite number, got %v", v)
	}
	return f, nil
}

// integer reads an integral number that fits in an int, returning def when
// the argument is missing or nil.
func (a arguments) integer(i int, def int) (int, error) {
	v, _ := a.get(i)
	if v == nil {
		return def, nil
	}
	n, ok := asInt(v)
	if !ok {
		return 0, invalid(a.fn, i, "must be an integer in the int range, got %v", v)
	}
	return n, nil
}

// flag reads an optional argument by truthiness.
func (a arguments) flag(i int) bool {
	v, _ := a.get(i)
	return truthy(v)
}

// entry is one element of a sequence or object together with its index or key.
type entry struct {
	key   any
	value any
}

// entries accepts either a sequence (keys are indexes) or an object
// (keys in ascending order).
func (a arguments) entries(i int) ([]entry, error) {
	v, _ := a.get(i)
	if s, ok := toSequence(v); ok {
		out := make([]entry, len(s))
		for j, item := range s {
			out[j] = entry{key: j, value: item}
		}
		return out, nil
	}
	if m, ok := toObject(v); ok {
		pairs := objutil.Pairs(m)
		out := make([]entry, len(pairs))
		for j, p := range pairs {
			out[j] = entry{key: p.Key, value: p.Value}
		}
		return out, nil
	}
	return nil, invalid(a.fn, i, "must be a sequence or an object, got %T", v)
}

// iteratee adapts the callback shapes accepted for element visitors to
// one signature taking the element and its index or key.
func (a arguments) iteratee(i int) (func(value, key any) any, error) {
	v, _ := a.get(i)
	switch f := v.(type) {
	case func(any) any:
		return func(value, _ any) any { return f(value) }, nil
	case func(any, any) any:
		return f, nil
	case func(any) bool:
		return func(value, _ any) any { return f(value) }, nil
	case func(any, any) bool:
		return func(value, key any) any { return f(value, key) }, nil
	case func(any):
		return func(value, _ any) any { f(value); return nil }, nil
	case func(any, any):
		return func(value, key any) any { f(value, key); return nil }, nil
	case func(...any) any:
		return func(value, key any) any { return f(value, key) }, nil
	default:
		return nil, invalid(a.fn, i, "must be a function of one or two arguments, got %T", v)
	}
}

func (a arguments) predicate(i int) (func(value, key any) bool, error) {
	f, err := a.iteratee(i)
	if err != nil {
		return nil, err
	}
	return func(value, key any) bool { return truthy(f(value, key)) }, nil
}

func (a arguments) reducer(i int) (func(acc, value any) any, error) {
	v, _ := a.get(i)
	switch f := v.(type) {
	case func(any, any) any:
		return f, nil
	case func(...any) any:
		return func(acc, value any) any { return f(acc, value) }, nil
	default:
		return nil, invalid(a.fn, i, "must be a function of two arguments, got %T", v)
	}
}

// callable adapts functions that can be invoked with any argument list.
func (a arguments) callable(i int) (func(...any) any, error) {
	v, _ := a.get(i)
	switch f := v.(type) {
	case func(...any) any:
		return f, nil
	case func():
		return func(...any) any { f(); return nil }, nil
	case func() any:
		return func(...any) any { return f() }, nil
	case func(any) any:
		return func(args ...any) any {
			first, _ := arguments{values: args}.get(0)
			return f(first)
		}, nil
	default:
		return nil, invalid(a.fn, i, "must be a function, got %T", v)
	}
}

// method adapts a function taking an explicit context. Context-free
// callables are accepted and ignore the context.
func (a arguments) method(i int) (func(ctx any, args ...any) any, error) {
	v, _ := a.get(i)
	if f, ok := v.(func(any, ...any) any); ok {
		return f, nil
	}
	f, err := a.callable(i)
	if err != nil {
		return nil, err
	}
	return func(_ any, args ...any) any { return f(args...) }, nil
}

func values(entries []entry) []any {
	out := make([]any, len(entries))
	for i, e := range entries {
		out[i] = e.value
	}
	return out
}

func cloneAny(s []any) []any {
	if s == nil {
		return []any{}
	}
	return slices.Clone(s)
}
