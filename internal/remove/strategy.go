// Package remove implements the remove-and-shrink operation under a closed
// set of execution strategies.
package remove

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStrategy is returned when a strategy name cannot be parsed.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy identifies how a removal is executed.
type Strategy int

const (
	// Baseline uses the plain library deletion with no execution hint.
	Baseline Strategy = iota

	// Sequential compacts on one goroutine with an ordinary loop.
	Sequential

	// Unsequenced compacts on one goroutine with a branch-free, unrolled
	// loop the compiler is free to schedule aggressively.
	Unsequenced

	// Parallel compacts disjoint chunks on several goroutines.
	Parallel

	// ParallelUnsequenced combines Parallel with the branch-free kernel.
	ParallelUnsequenced
)

var strategyNames = [...]string{
	Baseline:            "base",
	Sequential:          "seq",
	Unsequenced:         "unseq",
	Parallel:            "par",
	ParallelUnsequenced: "par_unseq",
}

var strategyLabels = [...]string{
	Baseline:            "Base version (without policies)",
	Sequential:          "Sequenced policy (seq)",
	Unsequenced:         "Unsequenced policy (unseq)",
	Parallel:            "Parallel policy (par)",
	ParallelUnsequenced: "Parallel unsequenced policy (par_unseq)",
}

// All returns every strategy in benchmark order.
func All() []Strategy {
	return []Strategy{Baseline, Sequential, Unsequenced, Parallel, ParallelUnsequenced}
}

// Valid reports whether s is one of the known strategies.
func (s Strategy) Valid() bool {
	return s >= Baseline && s <= ParallelUnsequenced
}

// String returns the short name used in flags and config files.
func (s Strategy) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// Label returns the human readable name printed next to timings.
func (s Strategy) Label() string {
	if !s.Valid() {
		return s.String()
	}
	return strategyLabels[s]
}

// Parallel reports whether the strategy may fan out across goroutines.
func (s Strategy) Parallel() bool {
	return s == Parallel || s == ParallelUnsequenced
}

// ParseStrategy parses a short strategy name. Matching is case-insensitive
// and treats '-' and '_' as the same character.
func ParseStrategy(name string) (Strategy, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for i, n := range strategyNames {
		if key == n {
			return Strategy(i), nil
		}
	}
	switch key {
	case "baseline", "none":
		return Baseline, nil
	case "sequential", "sequenced":
		return Sequential, nil
	case "unsequenced", "vectorized":
		return Unsequenced, nil
	case "parallel":
		return Parallel, nil
	case "parallel_unsequenced":
		return ParallelUnsequenced, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// ParseStrategies parses a list of names, expanding comma separated
// entries. An empty list yields All().
func ParseStrategies(names []string) ([]Strategy, error) {
	var out []Strategy
	for _, entry := range names {
		for _, name := range strings.Split(entry, ",") {
			if strings.TrimSpace(name) == "" {
				continue
			}
			s, err := ParseStrategy(name)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return All(), nil
	}
	return out, nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
