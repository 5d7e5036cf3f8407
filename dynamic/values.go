package dynamic

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// toSequence copies any slice or array into a []any.
// A []any is returned as is.
func toSequence(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// toObject copies any map with string keys into a map[string]any.
// A map[string]any is returned as is.
func toObject(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// asFloat reports the numeric value of any Go integer or float.
func asFloat(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// isIntegral reports whether v is a number without a fractional part.
func isIntegral(v any) bool {
	f, ok := asFloat(v)
	return ok && f == math.Trunc(f) && !math.IsInf(f, 0)
}

// fitsInt reports whether f converts to int without overflow.
func fitsInt(f float64) bool {
	return f >= math.MinInt && f < math.MaxInt
}

// asInt reports the exact int value of an integer kind, or of a float
// without a fractional part. Values outside the int range are refused.
func asInt(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < math.MinInt || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt {
			return 0, false
		}
		return int(u), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != math.Trunc(f) || !fitsInt(f) {
			return 0, false
		}
		return int(f), true
	default:
		return 0, false
	}
}

// numberValue renders f as an int when integral is set and f fits,
// float64 otherwise.
func numberValue(f float64, integral bool) any {
	if integral && fitsInt(f) {
		return int(f)
	}
	return f
}

// parseNumber converts numbers and numeric strings to a number value.
func parseNumber(v any) (any, bool) {
	if n, ok := asInt(v); ok {
		return n, true
	}
	if f, ok := asFloat(v); ok {
		return f, true
	}
	s, ok := v.(string)
	if !ok {
		return nil, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, false
	}
	return numberValue(f, f == math.Trunc(f) && !math.IsInf(f, 0)), true
}

// truthy follows the usual scripting rules: false, zero, NaN, the empty
// string and nil values are false, everything else is true.
func truthy(v any) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	if f, ok := asFloat(v); ok {
		return f != 0 && !math.IsNaN(f)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return !rv.IsNil()
	default:
		return true
	}
}

type refKey struct {
	t   reflect.Type
	ptr uintptr
	len int
}

// identityKey maps v to a comparable value such that two values share a key
// exactly when strictEqual holds between them. Numbers are keyed by value,
// slices, maps and functions by identity.
func identityKey(v any) any {
	if f, ok := asFloat(v); ok {
		return f
	}
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Comparable() {
		return v
	}
	switch rv.Kind() {
	case reflect.Slice:
		return refKey{rv.Type(), rv.Pointer(), rv.Len()}
	case reflect.Map, reflect.Func:
		return refKey{t: rv.Type(), ptr: rv.Pointer()}
	default:
		return fmt.Sprintf("%T:%#v", v, v)
	}
}

// strictEqual compares numbers by value and everything else by type and
// value, falling back to identity for slices, maps and functions.
func strictEqual(a, b any) bool {
	return identityKey(a) == identityKey(b)
}

// display is the string form used by lexicographic sorting and key coercion.
func display(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if f, ok := asFloat(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}
