// Package bench times the remove-and-shrink operation under each execution
// strategy.
//
// A Driver runs strategies one after another on independent copies of the
// same source data. Every measurement covers exactly the removal and the
// truncation; copying the input and verifying the output happen outside the
// timed region.
package bench

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"time"

	"github.com/wesleyorama2/purge/internal/remove"
)

// ErrMismatch is returned when a strategy produces a different sequence than
// the reference removal.
var ErrMismatch = errors.New("result mismatch")

// Config contains configuration for a Driver.
type Config struct {
	// Strategies to run, in order (default: remove.All())
	Strategies []remove.Strategy

	// Repeat is the number of passes over all strategies (default: 1)
	Repeat int

	// Verify compares every result with a reference removal
	Verify bool

	// Options tunes the parallel strategies
	Options remove.Options
}

// DefaultConfig returns a single verified pass over all strategies.
func DefaultConfig() Config {
	return Config{
		Strategies: remove.All(),
		Repeat:     1,
		Verify:     true,
		Options:    remove.DefaultOptions(),
	}
}

// Sample is a single timed removal.
type Sample struct {
	Strategy remove.Strategy
	Run      int // 1-based pass number
	Elapsed  time.Duration
	Kept     int
}

// Microseconds returns the elapsed time truncated to whole microseconds.
func (s Sample) Microseconds() int64 {
	return s.Elapsed.Microseconds()
}

// Result is the outcome of a full benchmark.
type Result struct {
	Size      int
	Value     int
	Threads   int // hardware concurrency reported by the runtime
	Workers   int // goroutines available to the parallel strategies
	Chunks    int // goroutines the parallel strategies actually used, 1 without any
	Repeat    int
	Kept      int
	Summaries []Summary
}

// ShrinkFunc is the timed operation.
type ShrinkFunc func(s []int, v int, st remove.Strategy, opts remove.Options) []int

// Driver runs the benchmark.
type Driver struct {
	config Config
	now    func() time.Time
	shrink ShrinkFunc
}

// NewDriver creates a driver. Zero fields of config fall back to
// DefaultConfig values, except Verify.
func NewDriver(config Config) *Driver {
	if len(config.Strategies) == 0 {
		config.Strategies = remove.All()
	}
	if config.Repeat < 1 {
		config.Repeat = 1
	}
	if config.Options.Workers <= 0 {
		config.Options.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Options.MinChunk <= 0 {
		config.Options.MinChunk = remove.DefaultMinChunk
	}
	return &Driver{config: config, now: time.Now, shrink: remove.Shrink[[]int, int]}
}

// Config returns the effective configuration.
func (d *Driver) Config() Config {
	return d.config
}

// Measure times one removal of value from a private copy of data and
// returns the sample together with the shrunk copy.
func (d *Driver) Measure(data []int, value int, st remove.Strategy) (Sample, []int) {
	work := slices.Clone(data)

	start := d.now()
	work = d.shrink(work, value, st, d.config.Options)
	elapsed := d.now().Sub(start)

	if elapsed < 0 {
		elapsed = 0
	}
	return Sample{Strategy: st, Run: 1, Elapsed: elapsed, Kept: len(work)}, work
}

// Run measures every configured strategy Repeat times, strictly one after
// another. observe, if not nil, is called with each sample as soon as it is
// taken.
func (d *Driver) Run(ctx context.Context, data []int, value int, observe func(Sample)) (*Result, error) {
	var want []int
	if d.config.Verify {
		want = reference(data, value)
	}

	rec := NewRecorder()
	kept := 0

	for run := 1; run <= d.config.Repeat; run++ {
		for _, st := range d.config.Strategies {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("benchmark interrupted: %w", err)
			}

			sample, got := d.Measure(data, value, st)
			sample.Run = run

			if d.config.Verify && !slices.Equal(got, want) {
				return nil, fmt.Errorf("%w: %s kept %d elements, expected %d",
					ErrMismatch, st.Label(), len(got), len(want))
			}

			kept = sample.Kept
			rec.Record(sample)
			if observe != nil {
				observe(sample)
			}
		}
	}

	chunks := 1
	if slices.ContainsFunc(d.config.Strategies, remove.Strategy.Parallel) {
		chunks = d.config.Options.Chunks(len(data))
	}

	return &Result{
		Size:      len(data),
		Value:     value,
		Threads:   runtime.NumCPU(),
		Workers:   d.config.Options.Workers,
		Chunks:    chunks,
		Repeat:    d.config.Repeat,
		Kept:      kept,
		Summaries: rec.Summaries(),
	}, nil
}

// reference is the straightforward filter every strategy must agree with.
func reference(data []int, value int) []int {
	out := make([]int, 0, len(data))
	for _, x := range data {
		if x != value {
			out = append(out, x)
		}
	}
	return out
}
