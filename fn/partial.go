package fn

import "slices"

// Partial returns a function that calls fn with ctx, then the preset
// arguments, then the arguments it is called with.
func Partial[C, T, R any](fn func(C, ...T) R, ctx C, preset ...T) func(...T) R {
	preset = slices.Clone(preset)
	return func(args ...T) R {
		return fn(ctx, slices.Concat(preset, args)...)
	}
}

// Bind fixes obj as the context of fn, with optional default leading arguments.
func Bind[C, T, R any](fn func(C, ...T) R, obj C, defaults ...T) func(...T) R {
	return Partial(fn, obj, defaults...)
}

// Partial1 fixes the first argument of a two-argument function.
func Partial1[A, B, R any](fn func(A, B) R, a A) func(B) R {
	return func(b B) R {
		return fn(a, b)
	}
}

func Curry[A, B, R any](fn func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return Partial1(fn, a)
	}
}

// Compose returns g after f.
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}
