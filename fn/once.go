package fn

import (
	"sync"

	"github.com/samber/mo"
)

// Once wraps fn so that only the first call runs it. That call returns
// Some(result); every later call is a no-op returning None.
func Once[T, R any](fn func(T) R) func(T) mo.Option[R] {
	var once sync.Once
	return func(arg T) mo.Option[R] {
		result := mo.None[R]()
		once.Do(func() {
			result = mo.Some(fn(arg))
		})
		return result
	}
}

// OnceFunc is Once for functions without arguments or results.
// The returned function reports whether fn ran.
func OnceFunc(fn func()) func() bool {
	var once sync.Once
	return func() bool {
		ran := false
		once.Do(func() {
			fn()
			ran = true
		})
		return ran
	}
}
