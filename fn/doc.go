// Package fn provides function combinators: partial application, context
// binding, currying, composition, throttling and run-once wrappers.
//
// Go has no implicit receiver to rebind, so "context" is modelled as an
// explicit first parameter: a function of type func(C, ...T) R is bound to a
// value of C by Bind or Partial.
//
// Wrappers that may skip the call (Throttle, Once) report the outcome as an
// mo.Option: Some with the wrapped function's result when it ran, None when
// the call was dropped.
package fn
