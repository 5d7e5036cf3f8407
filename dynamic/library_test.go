package dynamic_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"undergo/dynamic"
)

// call runs name on a fresh library and fails the test on error.
func call(t *testing.T, name string, args ...any) any {
	t.Helper()
	out, err := dynamic.New().Call(name, args...)
	require.NoError(t, err, "%s(%v)", name, args)
	return out
}

// callErr runs name and requires an invalid-argument failure.
func callErr(t *testing.T, name string, args ...any) *dynamic.ArgumentError {
	t.Helper()
	_, err := dynamic.New().Call(name, args...)
	require.Error(t, err, "%s(%v)", name, args)
	require.ErrorIs(t, err, dynamic.ErrInvalidArgument)

	var argErr *dynamic.ArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, name, argErr.Func)
	return argErr
}

func TestNamesCoverNamespace(t *testing.T) {
	names := dynamic.New().Names()
	for _, want := range []string{
		"each", "map", "reduce", "sum", "filter", "reject", "find", "where", "pluck",
		"contains", "times", "first", "last", "flatten", "unique", "union", "without",
		"range", "arrayToObject", "chunk", "partialApplication", "bind", "throttle",
		"once", "keys", "values", "pairs", "extend", "pick", "omit", "addDefaults",
		"hasKey", "isEmpty", "isFunction", "isString", "isBoolean", "isDate",
		"isUndefined", "isArray", "random", "toNumber",
	} {
		assert.Contains(t, names, want)
	}
	assert.IsNonDecreasing(t, names)
}

func TestUnknownFunction(t *testing.T) {
	_, err := dynamic.New().Call("shuffle", []any{1})
	assert.ErrorIs(t, err, dynamic.ErrUnknownFunction)
}

func TestRegister(t *testing.T) {
	lib := dynamic.New()

	double := func(args ...any) (any, error) {
		return args[0].(int) * 2, nil
	}
	require.NoError(t, lib.Register("double", double))

	out, err := lib.Call("double", 21)
	require.NoError(t, err)
	assert.Equal(t, 42, out)

	f, ok := lib.Lookup("double")
	require.True(t, ok)
	out, err = f(4)
	require.NoError(t, err)
	assert.Equal(t, 8, out)

	assert.ErrorIs(t, lib.Register("double", double), dynamic.ErrDuplicateFunction)
	assert.ErrorIs(t, lib.Register("map", double), dynamic.ErrDuplicateFunction)
	assert.ErrorIs(t, lib.Register("", double), dynamic.ErrInvalidArgument)
	assert.ErrorIs(t, lib.Register("nil", nil), dynamic.ErrInvalidArgument)
}

func TestArgumentErrorMessage(t *testing.T) {
	argErr := callErr(t, "pluck", "not a list", "name")
	assert.Equal(t, 1, argErr.Position)
	assert.Equal(t, "dynamic: argument 1 to pluck: must be a sequence, got string", argErr.Error())
}

func TestCallLogsAtDebug(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	lib := dynamic.New(dynamic.WithLogger(zap.New(core)))

	_, err := lib.Call("sum", []any{1, 2})
	require.NoError(t, err)
	_, err = lib.Call("times", 2, func(any) {}, "args")
	require.Error(t, err)

	calls := logs.FilterMessage("dynamic.call").All()
	require.Len(t, calls, 2)
	assert.Equal(t, "sum", calls[0].ContextMap()["func"])

	failures := logs.FilterMessage("dynamic.invalid_argument").All()
	require.Len(t, failures, 1)
	assert.Equal(t, "times", failures[0].ContextMap()["func"])
	assert.EqualValues(t, 3, failures[0].ContextMap()["position"])
}
