package dynamic

import (
	"slices"
	"time"

	"undergo/fn"
)

// partialApplication takes (fn, context, presetArgs) and returns a function
// calling fn with the context followed by the preset and call arguments.
func partialApplication(a arguments) (any, error) {
	method, err := a.method(0)
	if err != nil {
		return nil, err
	}
	ctx, _ := a.get(1)
	preset, err := a.optionalSequence(2)
	if err != nil {
		return nil, err
	}
	return fn.Partial(method, ctx, preset...), nil
}

// bind takes (fn, obj, defaults...).
func bind(a arguments) (any, error) {
	method, err := a.method(0)
	if err != nil {
		return nil, err
	}
	obj, err := a.required(1)
	if err != nil {
		return nil, err
	}
	return fn.Bind(method, obj, a.rest(2)...), nil
}

// throttle takes (fn, delayMs, boundArgs...). Dropped calls return nil.
func (l *Library) throttle(a arguments) (any, error) {
	call, err := a.callable(0)
	if err != nil {
		return nil, err
	}
	ms, err := a.number(1)
	if err != nil {
		return nil, err
	}
	if ms < 0 {
		return nil, invalid(a.fn, 1, "delay must not be negative, got %v", ms)
	}
	bound := slices.Clone(a.rest(2))
	delay := time.Duration(ms * float64(time.Millisecond))

	throttled := fn.Throttle(func(args []any) any {
		return call(slices.Concat(bound, args)...)
	}, delay, fn.WithClock(l.now))

	return func(args ...any) any {
		return throttled(args).OrEmpty()
	}, nil
}

// once returns a function that runs fn on its first call and returns nil
// on every later call.
func once(a arguments) (any, error) {
	call, err := a.callable(0)
	if err != nil {
		return nil, err
	}
	first := fn.Once(func(args []any) any {
		return call(args...)
	})
	return func(args ...any) any {
		return first(args).OrEmpty()
	}, nil
}
