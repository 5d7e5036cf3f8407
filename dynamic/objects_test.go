package dynamic_test

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"undergo/dynamic"
)

func TestKeysValuesPairs(t *testing.T) {
	obj := map[string]int{"two": 2, "one": 1, "three": 3}

	assert.Equal(t, []any{"one", "three", "two"}, call(t, "keys", obj))
	assert.Equal(t, []any{1, 3, 2}, call(t, "values", obj))
	assert.Equal(t, []any{
		[]any{"one", 1},
		[]any{"three", 3},
		[]any{"two", 2},
	}, call(t, "pairs", obj))

	assert.Empty(t, call(t, "keys", map[string]any{}))
	callErr(t, "keys", []any{1})
	callErr(t, "values", []any{1})
	callErr(t, "pairs", map[int]int{1: 1})
}

func TestExtend(t *testing.T) {
	dst := map[string]any{"name": "moe"}
	out := call(t, "extend", dst, map[string]any{"age": 50}, map[string]any{"age": 51})

	assert.Equal(t, map[string]any{"name": "moe", "age": 51}, out)
	assert.Equal(t, 51, dst["age"], "the first object is updated in place")

	callErr(t, "extend")
	callErr(t, "extend", dst, "age")
}

func TestAddDefaults(t *testing.T) {
	iceCream := map[string]any{"flavor": "chocolate"}
	out := call(t, "addDefaults", iceCream,
		map[string]any{"flavor": "vanilla", "sprinkles": "lots"},
		map[string]any{"sprinkles": "none", "cone": true},
	)
	assert.Equal(t, map[string]any{"flavor": "chocolate", "sprinkles": "lots", "cone": true}, out)

	callErr(t, "addDefaults")
}

func TestPickOmit(t *testing.T) {
	obj := map[string]any{"name": "moe", "age": 50, "userid": "moe1"}

	picked := call(t, "pick", obj, "name", []any{"age", "missing"})
	omitted := call(t, "omit", obj, "name", []string{"age"})

	assert.Equal(t, map[string]any{"name": "moe", "age": 50}, picked)
	assert.Equal(t, map[string]any{"userid": "moe1"}, omitted)

	// Together they partition the keys.
	merged := map[string]any{}
	for k, v := range picked.(map[string]any) {
		merged[k] = v
	}
	for k, v := range omitted.(map[string]any) {
		require.NotContains(t, merged, k)
		merged[k] = v
	}
	assert.Equal(t, obj, merged)

	argErr := callErr(t, "pick", obj, "name", 3)
	assert.Equal(t, 3, argErr.Position)
	callErr(t, "omit", "obj", "name")
}

func TestHasKey(t *testing.T) {
	obj := map[string]any{"a": nil}
	assert.Equal(t, true, call(t, "hasKey", obj, "a"))
	assert.Equal(t, false, call(t, "hasKey", obj, "b"))
	callErr(t, "hasKey", obj, 1)
}

func TestTypePredicates(t *testing.T) {
	var nilSlice []int
	now := time.Now()

	cases := []struct {
		name string
		arg  any
		want bool
	}{
		{"isEmpty", "", true},
		{"isEmpty", nilSlice, true},
		{"isEmpty", map[string]any{}, true},
		{"isEmpty", []int{0}, false},
		{"isEmpty", 0, false},
		{"isFunction", func() {}, true},
		{"isFunction", "func", false},
		{"isString", "s", true},
		{"isString", 1, false},
		{"isBoolean", false, true},
		{"isBoolean", 0, false},
		{"isDate", now, true},
		{"isDate", &now, true},
		{"isDate", "2024-01-01", false},
		{"isUndefined", nil, true},
		{"isUndefined", 0, false},
		{"isArray", []any{}, true},
		{"isArray", [2]int{}, true},
		{"isArray", "abc", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, call(t, c.name, c.arg), "%s(%#v)", c.name, c.arg)
	}

	callErr(t, "isEmpty")
}

func TestRandom(t *testing.T) {
	lib := dynamic.New(dynamic.WithRand(rand.New(rand.NewPCG(1, 2))))

	seen := map[int]bool{}
	for range 200 {
		out, err := lib.Call("random", 3)
		require.NoError(t, err)
		n := out.(int)
		require.True(t, n >= 0 && n <= 3, "random(3) = %d", n)
		seen[n] = true
	}
	assert.Len(t, seen, 4, "both bounds are reachable")

	for range 50 {
		out, err := lib.Call("random", -2, 2)
		require.NoError(t, err)
		assert.True(t, out.(int) >= -2 && out.(int) <= 2)
	}

	out, err := lib.Call("random", 7, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, out)

	assert.NotPanics(t, func() {
		out, err := lib.Call("random", math.MinInt, math.MaxInt)
		require.NoError(t, err)
		assert.IsType(t, 0, out)
	})
	for range 50 {
		out, err := lib.Call("random", -5e18, 5e18)
		require.NoError(t, err)
		n := out.(int)
		assert.True(t, n >= -5_000_000_000_000_000_000 && n <= 5_000_000_000_000_000_000, "random(-5e18, 5e18) = %d", n)
	}
	callErr(t, "random", 0, 1e20)

	argErr := callErr(t, "random", 5, 1)
	assert.Equal(t, 2, argErr.Position)
	callErr(t, "random", 1.5)
}

func TestToNumber(t *testing.T) {
	assert.Equal(t, 42, call(t, "toNumber", "42"))
	assert.Equal(t, 3.5, call(t, "toNumber", " 3.5 "))
	assert.Equal(t, 7, call(t, "toNumber", int64(7)))
	assert.Equal(t, 2.25, call(t, "toNumber", float32(2.25)))

	callErr(t, "toNumber", "forty-two")
	callErr(t, "toNumber", []any{1})
	callErr(t, "toNumber")
}
