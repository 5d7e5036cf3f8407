package objutil_test

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"undergo/objutil"
)

func TestIsEmpty(t *testing.T) {
	var nilMap map[string]int
	var nilPtr *int
	one := 1

	cases := []struct {
		name  string
		input any
		want  bool
	}{
		{"Nil", nil, true},
		{"EmptyString", "", true},
		{"String", "x", false},
		{"EmptySlice", []int{}, true},
		{"Slice", []int{1}, false},
		{"NilMap", nilMap, true},
		{"Map", map[string]int{"a": 1}, false},
		{"NilPointer", nilPtr, true},
		{"Pointer", &one, false},
		{"Number", 0, false},
		{"Bool", false, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, objutil.IsEmpty(c.input))
		})
	}
}

func TestTypePredicates(t *testing.T) {
	var nilFunc func()
	var nilSlice []int
	now := time.Now()
	var nilTime *time.Time

	assert.True(t, objutil.IsFunction(func() {}))
	assert.True(t, objutil.IsFunction(objutil.IsString))
	assert.False(t, objutil.IsFunction(nilFunc))
	assert.False(t, objutil.IsFunction("func"))

	assert.True(t, objutil.IsString("moe"))
	assert.False(t, objutil.IsString(1))

	assert.True(t, objutil.IsBoolean(false))
	assert.False(t, objutil.IsBoolean(0))

	assert.True(t, objutil.IsDate(now))
	assert.True(t, objutil.IsDate(&now))
	assert.False(t, objutil.IsDate(nilTime))
	assert.False(t, objutil.IsDate("2024-01-01"))

	assert.True(t, objutil.IsUndefined(nil))
	assert.True(t, objutil.IsUndefined(nilSlice))
	assert.True(t, objutil.IsUndefined(nilFunc))
	assert.False(t, objutil.IsUndefined(0))
	assert.False(t, objutil.IsUndefined(""))

	assert.True(t, objutil.IsSequence([]any{}))
	assert.True(t, objutil.IsSequence([3]int{}))
	assert.False(t, objutil.IsSequence("abc"))

	assert.True(t, objutil.IsObject(map[string]int{}))
	assert.False(t, objutil.IsObject(map[int]int{}))
	assert.False(t, objutil.IsObject(nil))
}

func TestRandom(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	seen := map[int]bool{}
	for range 500 {
		v := objutil.RandomFrom(r, 3, 6)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 6)
		seen[v] = true
	}
	assert.Len(t, seen, 4, "every value in [3, 6] should come up")

	assert.Equal(t, 7, objutil.Random(7, 7))
	assert.Panics(t, func() { objutil.Random(2, 1) })
}

func TestRandomWideBounds(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	assert.NotPanics(t, func() {
		objutil.RandomFrom(r, math.MinInt, math.MaxInt)
		objutil.Random(math.MinInt, math.MaxInt)
	})

	for range 100 {
		v := objutil.RandomFrom(r, -5e18, 5e18)
		assert.GreaterOrEqual(t, v, -5_000_000_000_000_000_000)
		assert.LessOrEqual(t, v, 5_000_000_000_000_000_000)

		v = objutil.RandomFrom(r, -3, -1)
		assert.GreaterOrEqual(t, v, -3)
		assert.LessOrEqual(t, v, -1)
	}
	assert.Equal(t, math.MaxInt, objutil.RandomFrom(r, math.MaxInt, math.MaxInt))
	assert.Equal(t, math.MinInt, objutil.RandomFrom(r, math.MinInt, math.MinInt))
}
