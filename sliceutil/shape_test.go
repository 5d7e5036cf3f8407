package sliceutil_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"undergo/sliceutil"
)

func TestFlatten(t *testing.T) {
	nested := []any{1, []any{2, []any{3, []any{4}}}}

	t.Run("Shallow", func(t *testing.T) {
		got := sliceutil.Flatten(nested, true)
		want := []any{1, 2, []any{3, []any{4}}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Flatten(shallow) mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Deep", func(t *testing.T) {
		got := sliceutil.Flatten(nested, false)
		if diff := cmp.Diff([]any{1, 2, 3, 4}, got); diff != "" {
			t.Errorf("Flatten(deep) mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("TypedInnerSlices", func(t *testing.T) {
		got := sliceutil.Flatten([]any{[]int{1, 2}, [2]string{"a", "b"}, "cd"}, false)
		if diff := cmp.Diff([]any{1, 2, "a", "b", "cd"}, got); diff != "" {
			t.Errorf("Flatten() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("NilElementsKept", func(t *testing.T) {
		got := sliceutil.Flatten([]any{nil, []any{nil}}, false)
		if diff := cmp.Diff([]any{nil, nil}, got); diff != "" {
			t.Errorf("Flatten() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if got := sliceutil.Flatten([]any{}, false); len(got) != 0 {
			t.Errorf("Flatten(empty) = %v, want empty", got)
		}
	})
}

func TestFlat(t *testing.T) {
	got := sliceutil.Flat([][]int{{1}, {}, {2, 3}})
	if diff := cmp.Diff([]int{1, 2, 3}, got); diff != "" {
		t.Errorf("Flat() mismatch (-want +got):\n%s", diff)
	}
}

func TestRange(t *testing.T) {
	tests := []struct {
		name              string
		start, stop, step int
		want              []int
	}{
		{"ExcludesStop", 0, 5, 1, []int{0, 1, 2, 3, 4}},
		{"MultiplesOfThree", 3, 15, 3, []int{3, 6, 9, 12}},
		{"CountDown", 10, 0, -5, []int{10, 5}},
		{"ZeroStep", 0, 5, 0, []int{}},
		{"StartPastStop", 6, 5, 1, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sliceutil.RangeStep(tt.start, tt.stop, tt.step)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("RangeStep(%d, %d, %d) mismatch (-want +got):\n%s", tt.start, tt.stop, tt.step, diff)
			}
		})
	}

	if diff := cmp.Diff([]int{0, 1, 2}, sliceutil.Range(3)); diff != "" {
		t.Errorf("Range(3) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{0, 0.5, 1}, sliceutil.RangeStep(0, 1.5, 0.5)); diff != "" {
		t.Errorf("RangeStep(float) mismatch (-want +got):\n%s", diff)
	}
}

func TestZipMap(t *testing.T) {
	got := sliceutil.ZipMap([]string{"moe", "larry"}, []int{30, 40})
	if diff := cmp.Diff(map[string]int{"moe": 30, "larry": 40}, got); diff != "" {
		t.Errorf("ZipMap() mismatch (-want +got):\n%s", diff)
	}

	t.Run("LengthMismatch", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("ZipMap() with mismatched lengths should panic")
			}
		}()
		sliceutil.ZipMap([]string{"a"}, []int{})
	})
}
