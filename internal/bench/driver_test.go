package bench

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesleyorama2/purge/internal/dataset"
	"github.com/wesleyorama2/purge/internal/remove"
)

// steppingClock returns a clock advancing by step on every call.
func steppingClock(step time.Duration) func() time.Time {
	t := time.Unix(0, 0)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

func TestNewDriver_Defaults(t *testing.T) {
	d := NewDriver(Config{})
	cfg := d.Config()

	assert.Equal(t, remove.All(), cfg.Strategies)
	assert.Equal(t, 1, cfg.Repeat)
	assert.Positive(t, cfg.Options.Workers)
	assert.Equal(t, remove.DefaultMinChunk, cfg.Options.MinChunk)
	assert.False(t, cfg.Verify)
}

func TestDriver_Measure(t *testing.T) {
	d := NewDriver(DefaultConfig())
	d.now = steppingClock(1500 * time.Microsecond)

	data := dataset.DemoSequence()
	sample, got := d.Measure(data, dataset.DemoValue, remove.Parallel)

	assert.Equal(t, []int{1, 3, 4, 5, 6, 7}, got)
	assert.Equal(t, remove.Parallel, sample.Strategy)
	assert.Equal(t, 6, sample.Kept)
	assert.Equal(t, 1500*time.Microsecond, sample.Elapsed)
	assert.Equal(t, int64(1500), sample.Microseconds())

	// The source must not be touched.
	assert.Equal(t, dataset.DemoSequence(), data)
}

func TestDriver_RunOrderAndCopies(t *testing.T) {
	gen := dataset.NewGeneratorFromSource(rand.NewPCG(5, 6))
	data := gen.Generate(50000)
	original := append([]int(nil), data...)

	d := NewDriver(DefaultConfig())

	var seen []remove.Strategy
	result, err := d.Run(context.Background(), data, 42, func(s Sample) {
		seen = append(seen, s.Strategy)
		assert.GreaterOrEqual(t, s.Elapsed, time.Duration(0))
		assert.Equal(t, 1, s.Run)
	})
	require.NoError(t, err)

	assert.Equal(t, remove.All(), seen)
	assert.Equal(t, original, data, "Run must work on copies")
	assert.Equal(t, 50000, result.Size)
	assert.Equal(t, 42, result.Value)
	assert.Len(t, result.Summaries, 5)
	assert.Equal(t, len(reference(data, 42)), result.Kept)
	assert.Positive(t, result.Threads)
}

func TestDriver_RunEmpty(t *testing.T) {
	d := NewDriver(DefaultConfig())

	count := 0
	result, err := d.Run(context.Background(), []int{}, 0, func(s Sample) {
		count++
		assert.GreaterOrEqual(t, s.Microseconds(), int64(0))
		assert.Zero(t, s.Kept)
	})
	require.NoError(t, err)

	assert.Equal(t, 5, count)
	assert.Zero(t, result.Size)
	assert.Zero(t, result.Kept)
}

func TestDriver_Repeat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Repeat = 3
	cfg.Strategies = []remove.Strategy{remove.Sequential, remove.ParallelUnsequenced}

	d := NewDriver(cfg)
	d.now = steppingClock(time.Millisecond)

	var runs []int
	result, err := d.Run(context.Background(), dataset.DemoSequence(), 2, func(s Sample) {
		runs = append(runs, s.Run)
	})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 1, 2, 2, 3, 3}, runs)
	require.Len(t, result.Summaries, 2)
	for _, sum := range result.Summaries {
		assert.Equal(t, 3, sum.Runs)
		assert.Equal(t, time.Millisecond, sum.Mean)
		assert.Zero(t, sum.StdDev)
	}
	assert.Equal(t, remove.Sequential, result.Summaries[0].Strategy)
	assert.Equal(t, remove.ParallelUnsequenced, result.Summaries[1].Strategy)
}

func TestDriver_RunChunks(t *testing.T) {
	data := make([]int, 10000)

	tests := []struct {
		name       string
		strategies []remove.Strategy
		want       int
	}{
		{"sequential only", []remove.Strategy{remove.Baseline, remove.Sequential, remove.Unsequenced}, 1},
		{"with par", []remove.Strategy{remove.Sequential, remove.Parallel}, 4},
		{"par_unseq only", []remove.Strategy{remove.ParallelUnsequenced}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Strategies = tt.strategies
			cfg.Options = remove.Options{Workers: 4, MinChunk: 1000}

			result, err := NewDriver(cfg).Run(context.Background(), data, 1, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Chunks)
			assert.Equal(t, 4, result.Workers)
		})
	}
}

func TestDriver_RunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDriver(DefaultConfig()).Run(ctx, dataset.DemoSequence(), 2, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

// dropLast keeps one element too few under the parallel strategies.
func dropLast(s []int, v int, st remove.Strategy, opts remove.Options) []int {
	s = remove.Shrink(s, v, st, opts)
	if st == remove.Parallel && len(s) > 0 {
		s = s[:len(s)-1]
	}
	return s
}

func TestDriver_RunMismatch(t *testing.T) {
	d := NewDriver(DefaultConfig())
	d.shrink = dropLast

	var seen []remove.Strategy
	_, err := d.Run(context.Background(), dataset.DemoSequence(), dataset.DemoValue, func(s Sample) {
		seen = append(seen, s.Strategy)
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMismatch))
	assert.Contains(t, err.Error(), remove.Parallel.Label())
	assert.Contains(t, err.Error(), "kept 5 elements, expected 6")

	// Nothing after the faulty strategy is measured.
	assert.Equal(t, []remove.Strategy{remove.Baseline, remove.Sequential, remove.Unsequenced}, seen)
}

func TestDriver_RunWithoutVerify(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Verify = false
	d := NewDriver(cfg)
	d.shrink = dropLast

	count := 0
	result, err := d.Run(context.Background(), dataset.DemoSequence(), dataset.DemoValue, func(Sample) {
		count++
	})
	require.NoError(t, err)
	assert.Equal(t, 5, count)
	assert.Len(t, result.Summaries, 5)
}

func TestReference(t *testing.T) {
	tests := []struct {
		name  string
		data  []int
		value int
		want  []int
	}{
		{"demo", []int{1, 2, 3, 2, 4, 2, 5, 6, 2, 7}, 2, []int{1, 3, 4, 5, 6, 7}},
		{"no match", []int{1, 3}, 2, []int{1, 3}},
		{"empty", nil, 2, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reference(tt.data, tt.value))
		})
	}
}
