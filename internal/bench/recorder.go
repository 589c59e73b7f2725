package bench

import (
	"math"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/wesleyorama2/purge/internal/remove"
)

// RecorderConfig contains configuration for a Recorder.
type RecorderConfig struct {
	// HistogramMax is the maximum recordable value in nanoseconds (default: 3600000000000 = 1 hour)
	HistogramMax int64

	// HistogramSigFigs is the number of significant figures (default: 3)
	HistogramSigFigs int
}

// DefaultRecorderConfig returns the default configuration.
func DefaultRecorderConfig() RecorderConfig {
	return RecorderConfig{
		HistogramMax:     int64(time.Hour),
		HistogramSigFigs: 3,
	}
}

// Recorder aggregates timing samples per strategy.
//
// Samples are kept at nanosecond precision. Min, max, mean and standard
// deviation are computed from the raw samples, percentiles from an HDR
// histogram clamped to [min, max].
//
// Recorder is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	config RecorderConfig
	order  []remove.Strategy
	series map[remove.Strategy]*series
}

type series struct {
	hist    *hdrhistogram.Histogram
	samples []float64 // nanoseconds
}

// NewRecorder creates a recorder with the default configuration.
func NewRecorder() *Recorder {
	return NewRecorderWithConfig(DefaultRecorderConfig())
}

// NewRecorderWithConfig creates a recorder with a custom configuration.
func NewRecorderWithConfig(config RecorderConfig) *Recorder {
	return &Recorder{
		config: config,
		series: make(map[remove.Strategy]*series),
	}
}

// Record adds a sample to its strategy's series.
func (r *Recorder) Record(sample Sample) {
	// Clamp to the histogram range; 0 is a legitimate reading for tiny
	// inputs on a coarse clock.
	nanos := max(int64(sample.Elapsed), 0)
	nanos = min(nanos, r.config.HistogramMax)

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.series[sample.Strategy]
	if !ok {
		s = &series{hist: hdrhistogram.New(1, r.config.HistogramMax, r.config.HistogramSigFigs)}
		r.series[sample.Strategy] = s
		r.order = append(r.order, sample.Strategy)
	}

	// NOTE: HDR histogram RecordValue is not thread-safe, r.mu covers it.
	_ = s.hist.RecordValue(nanos)
	s.samples = append(s.samples, float64(nanos))
}

// Summaries returns one summary per recorded strategy, in the order the
// strategies were first recorded.
func (r *Recorder) Summaries() []Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Summary, 0, len(r.order))
	for _, st := range r.order {
		out = append(out, r.series[st].summarize(st))
	}
	return out
}

// Summary describes the timings of one strategy across repeats.
type Summary struct {
	Strategy remove.Strategy
	Runs     int
	Min      time.Duration
	Max      time.Duration
	Mean     time.Duration
	StdDev   time.Duration
	P50      time.Duration
	P99      time.Duration
}

func (s *series) summarize(st remove.Strategy) Summary {
	sum := Summary{Strategy: st, Runs: len(s.samples)}
	if len(s.samples) == 0 {
		return sum
	}

	sum.Min = time.Duration(floats.Min(s.samples))
	sum.Max = time.Duration(floats.Max(s.samples))

	if len(s.samples) == 1 {
		sum.Mean = time.Duration(s.samples[0])
	} else {
		mean, std := stat.MeanStdDev(s.samples, nil)
		sum.Mean = min(max(time.Duration(math.Round(mean)), sum.Min), sum.Max)
		sum.StdDev = time.Duration(math.Round(std))
	}

	// The histogram reports the upper bound of a bucket, which can lie past
	// the largest sample.
	sum.P50 = s.percentile(50, sum.Min, sum.Max)
	sum.P99 = s.percentile(99, sum.Min, sum.Max)
	return sum
}

func (s *series) percentile(q float64, lo, hi time.Duration) time.Duration {
	v := time.Duration(s.hist.ValueAtQuantile(q))
	return min(max(v, lo), hi)
}
