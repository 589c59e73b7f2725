package remove

import (
	"errors"
	"testing"
)

func TestStrategyOrder(t *testing.T) {
	want := []string{"base", "seq", "unseq", "par", "par_unseq"}
	all := All()
	if len(all) != len(want) {
		t.Fatalf("All() returned %d strategies, want %d", len(all), len(want))
	}
	for i, st := range all {
		if st.String() != want[i] {
			t.Errorf("All()[%d] = %s, want %s", i, st, want[i])
		}
	}
}

func TestStrategyLabel(t *testing.T) {
	tests := []struct {
		strategy Strategy
		expected string
	}{
		{Baseline, "Base version (without policies)"},
		{Sequential, "Sequenced policy (seq)"},
		{Unsequenced, "Unsequenced policy (unseq)"},
		{Parallel, "Parallel policy (par)"},
		{ParallelUnsequenced, "Parallel unsequenced policy (par_unseq)"},
		{Strategy(-1), "Strategy(-1)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.strategy.Label(); got != tt.expected {
				t.Errorf("Label() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		input    string
		expected Strategy
		wantErr  bool
	}{
		{input: "base", expected: Baseline},
		{input: "none", expected: Baseline},
		{input: "SEQ", expected: Sequential},
		{input: "unseq", expected: Unsequenced},
		{input: "vectorized", expected: Unsequenced},
		{input: " par ", expected: Parallel},
		{input: "par-unseq", expected: ParallelUnsequenced},
		{input: "parallel_unsequenced", expected: ParallelUnsequenced},
		{input: "gpu", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStrategy(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStrategy(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownStrategy) {
					t.Errorf("error %v does not wrap ErrUnknownStrategy", err)
				}
				return
			}
			if got != tt.expected {
				t.Errorf("ParseStrategy(%q) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseStrategies(t *testing.T) {
	got, err := ParseStrategies([]string{"par,seq", "base"})
	if err != nil {
		t.Fatalf("ParseStrategies() error = %v", err)
	}
	want := []Strategy{Parallel, Sequential, Baseline}
	if len(got) != len(want) {
		t.Fatalf("ParseStrategies() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ParseStrategies()[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	all, err := ParseStrategies(nil)
	if err != nil || len(all) != 5 {
		t.Errorf("ParseStrategies(nil) = %v, %v; want all strategies", all, err)
	}

	if _, err := ParseStrategies([]string{"seq,bogus"}); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("ParseStrategies with bogus entry error = %v", err)
	}
}

func TestStrategyText(t *testing.T) {
	for _, st := range All() {
		text, err := st.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%s) error = %v", st, err)
		}
		var back Strategy
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%s) error = %v", text, err)
		}
		if back != st {
			t.Errorf("text round trip %s -> %s", st, back)
		}
	}

	if _, err := Strategy(9).MarshalText(); err == nil {
		t.Error("MarshalText of invalid strategy should fail")
	}
}
