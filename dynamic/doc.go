/*
Package dynamic exposes the library as a flat namespace of operations looked
up by name and called with untyped arguments.

	lib := dynamic.New()
	out, err := lib.Call("unique", []any{3, 1, 2, 3, 1}, true, true)
	// out == []any{1, 2, 3}

# Values

Any slice or array is accepted where a sequence is expected and any map with
string keys where an object is expected; both are normalized to []any and
map[string]any. Numbers of every Go kind compare equal by value, so 1 and 1.0
are the same element. Results keep integers as int when every input was
integral and use float64 otherwise.

Callbacks may be written with the signatures the callers find natural:
func(any) any, func(value, key any) any, func(any) bool, func(any) and so on.
Functions returned by the namespace (partialApplication, bind, throttle, once)
have type func(...any) any.

# Errors

Malformed arguments never panic. They are reported as *ArgumentError, which
matches ErrInvalidArgument under errors.Is and names the operation and the
1-based position of the offending argument.
*/
package dynamic
