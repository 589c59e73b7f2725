package remove

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallChunks forces the parallel strategies to split even tiny inputs.
var smallChunks = Options{Workers: 4, MinChunk: 1}

func expected(s []int, v int) []int {
	out := []int{}
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

func TestShrink_Demo(t *testing.T) {
	for _, st := range All() {
		t.Run(st.String(), func(t *testing.T) {
			data := []int{1, 2, 3, 2, 4, 2, 5, 6, 2, 7}
			got := Shrink(data, 2, st, smallChunks)
			assert.Equal(t, []int{1, 3, 4, 5, 6, 7}, []int(got))
		})
	}
}

func TestShrink_EdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		value int
		want  []int
	}{
		{name: "empty", input: []int{}, value: 3, want: []int{}},
		{name: "no match", input: []int{1, 2, 3}, value: 9, want: []int{1, 2, 3}},
		{name: "all match", input: []int{5, 5, 5, 5, 5}, value: 5, want: []int{}},
		{name: "match at ends", input: []int{7, 1, 2, 7}, value: 7, want: []int{1, 2}},
		{name: "single kept", input: []int{4}, value: 0, want: []int{4}},
		{name: "single removed", input: []int{0}, value: 0, want: []int{}},
		{name: "odd tail", input: []int{1, 0, 2, 0, 3, 0, 4}, value: 0, want: []int{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		for _, st := range All() {
			t.Run(tt.name+"/"+st.String(), func(t *testing.T) {
				got := Shrink(slices.Clone(tt.input), tt.value, st, smallChunks)
				if !slices.Equal(got, tt.want) {
					t.Errorf("Shrink(%v, %d, %s) = %v, want %v", tt.input, tt.value, st, got, tt.want)
				}
			})
		}
	}
}

func TestShrink_MatchesReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	options := []Options{
		{Workers: 1, MinChunk: 1},
		{Workers: 3, MinChunk: 1},
		{Workers: 8, MinChunk: 7},
		{Workers: 16, MinChunk: 64},
		DefaultOptions(),
	}

	for _, n := range []int{0, 1, 3, 4, 5, 17, 100, 1023, 5000, 20000} {
		data := make([]int, n)
		for i := range data {
			data[i] = rng.IntN(4)
		}
		for _, v := range []int{0, 1, 3, 9} {
			want := expected(data, v)
			for _, opts := range options {
				for _, st := range All() {
					got := Shrink(slices.Clone(data), v, st, opts)
					require.Equal(t, want, []int(got), "n=%d v=%d strategy=%s opts=%+v", n, v, st, opts)
				}
			}
		}
	}
}

func TestShrink_Idempotent(t *testing.T) {
	data := []int{3, 1, 3, 3, 2, 3, 1}
	for _, st := range All() {
		once := Shrink(slices.Clone(data), 3, st, smallChunks)
		twice := Shrink(slices.Clone(once), 3, st, smallChunks)
		assert.Equal(t, []int(once), []int(twice), st.String())
		assert.NotContains(t, twice, 3)
	}
}

func TestShrink_ClearsTail(t *testing.T) {
	for _, st := range All() {
		data := []int{1, 9, 2, 9, 3, 9}
		got := Shrink(data, 9, st, smallChunks)
		require.Len(t, got, 3)
		assert.Equal(t, []int{0, 0, 0}, data[3:], st.String())
	}
}

func TestShrink_NamedSliceType(t *testing.T) {
	type ids []string
	got := Shrink(ids{"a", "x", "b", "x"}, "x", ParallelUnsequenced, smallChunks)
	assert.Equal(t, ids{"a", "b"}, got)
}

func TestOptions_Chunks(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		n    int
		want int
	}{
		{"empty input", Options{Workers: 8, MinChunk: 10}, 0, 1},
		{"below min chunk", Options{Workers: 8, MinChunk: 10}, 9, 1},
		{"limited by size", Options{Workers: 8, MinChunk: 10}, 35, 3},
		{"limited by workers", Options{Workers: 2, MinChunk: 10}, 1000, 2},
		{"single worker", Options{Workers: 1, MinChunk: 1}, 1000, 1},
		{"zero min chunk uses default", Options{Workers: 4}, DefaultMinChunk * 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.Chunks(tt.n); got != tt.want {
				t.Errorf("Chunks(%d) = %d, want %d", tt.n, got, tt.want)
			}
		})
	}
}

func TestShrink_InvalidStrategyPanics(t *testing.T) {
	assert.Panics(t, func() {
		Shrink([]int{1}, 1, Strategy(42), DefaultOptions())
	})
}
