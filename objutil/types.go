package objutil

import (
	"reflect"
	"time"
)

// IsEmpty reports whether v holds nothing: nil, a nil pointer, or a string,
// slice, array, map or channel of length zero. Any other value is not empty.
func IsEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// IsUndefined reports whether v is nil or a nil pointer, map, slice,
// channel or function.
func IsUndefined(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// IsFunction reports whether v is a non-nil function of any signature.
func IsFunction(v any) bool {
	return kindOf(v) == reflect.Func && !reflect.ValueOf(v).IsNil()
}

func IsString(v any) bool {
	return kindOf(v) == reflect.String
}

func IsBoolean(v any) bool {
	return kindOf(v) == reflect.Bool
}

// IsDate reports whether v is a time.Time or a non-nil *time.Time.
func IsDate(v any) bool {
	switch t := v.(type) {
	case time.Time:
		return true
	case *time.Time:
		return t != nil
	default:
		return false
	}
}

// IsSequence reports whether v is a slice or an array.
func IsSequence(v any) bool {
	k := kindOf(v)
	return k == reflect.Slice || k == reflect.Array
}

// IsObject reports whether v is a map with string keys.
func IsObject(v any) bool {
	if kindOf(v) != reflect.Map {
		return false
	}
	return reflect.TypeOf(v).Key().Kind() == reflect.String
}

func kindOf(v any) reflect.Kind {
	if v == nil {
		return reflect.Invalid
	}
	return reflect.TypeOf(v).Kind()
}
