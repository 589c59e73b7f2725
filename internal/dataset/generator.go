// Package dataset generates the integer sequences the benchmark removes from.
package dataset

import (
	crand "crypto/rand"
	"fmt"
	"math/rand/v2"
)

// Bounds of the generated values. Remove values are validated against the
// same range.
const (
	MinValue = 0
	MaxValue = 100
)

// DemoValue is the value removed by the demonstration run.
const DemoValue = 2

var demoSequence = []int{1, 2, 3, 2, 4, 2, 5, 6, 2, 7}

// DemoSequence returns a fresh copy of the fixed demonstration sequence.
func DemoSequence() []int {
	out := make([]int, len(demoSequence))
	copy(out, demoSequence)
	return out
}

// InRange reports whether v lies in [MinValue, MaxValue].
func InRange(v int) bool {
	return v >= MinValue && v <= MaxValue
}

// Generator produces uniformly distributed test data. A Generator is not
// safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator seeded from the operating system's
// entropy source. Runs are intentionally not reproducible.
func NewGenerator() (*Generator, error) {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("failed to seed generator: %w", err)
	}
	return NewGeneratorFromSource(rand.NewChaCha8(seed)), nil
}

// NewGeneratorFromSource returns a generator drawing from src.
func NewGeneratorFromSource(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// Generate returns n values drawn independently from [MinValue, MaxValue].
// A non-positive n yields an empty slice.
func (g *Generator) Generate(n int) []int {
	if n < 0 {
		n = 0
	}
	data := make([]int, n)
	for i := range data {
		data[i] = MinValue + g.rng.IntN(MaxValue-MinValue+1)
	}
	return data
}
