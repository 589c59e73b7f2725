// Package config provides configuration parsing and validation for benchmark
// runs.
package config

import (
	_ "embed"
)

//go:embed schema.json
var schemaJSON string

// Output formats accepted in configuration files and on the command line.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// BenchConfig is the root configuration for a benchmark run.
//
// Example YAML:
//
//	size: 1000000
//	value: 42
//	repeat: 5
//	workers: 8
//	strategies: [base, seq, par]
//	format: text
//
// Size and Value are pointers because zero is a meaningful value for both;
// a nil pointer means the value is asked for interactively. Repeat is a
// pointer so an explicit zero is rejected instead of read as unset.
type BenchConfig struct {
	// Size is the number of generated elements
	Size *int `json:"size,omitempty" yaml:"size,omitempty"`

	// Value is the element to remove, in [0, 100]
	Value *int `json:"value,omitempty" yaml:"value,omitempty"`

	// Repeat is the number of passes over all strategies (default: 1)
	Repeat *int `json:"repeat,omitempty" yaml:"repeat,omitempty"`

	// Workers caps the goroutines used by parallel strategies (default: GOMAXPROCS)
	Workers int `json:"workers,omitempty" yaml:"workers,omitempty"`

	// MinChunk is the smallest chunk handed to one goroutine (default: 4096)
	MinChunk int `json:"minChunk,omitempty" yaml:"minChunk,omitempty"`

	// Strategies to run, by short name (default: all, in standard order)
	Strategies []string `json:"strategies,omitempty" yaml:"strategies,omitempty"`

	// Format is the report format: text, json or yaml (default: text)
	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	// Output is a file path for the report (default: stdout)
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Verify compares every strategy's result with a reference (default: true)
	Verify *bool `json:"verify,omitempty" yaml:"verify,omitempty"`

	// Demo prints the demonstration before the benchmark
	Demo bool `json:"demo,omitempty" yaml:"demo,omitempty"`

	// NoColor disables colored output
	NoColor bool `json:"noColor,omitempty" yaml:"noColor,omitempty"`
}

// VerifyEnabled returns the effective Verify setting.
func (c *BenchConfig) VerifyEnabled() bool {
	return c.Verify == nil || *c.Verify
}

// RepeatOrDefault returns Repeat, or 1 when unset.
func (c *BenchConfig) RepeatOrDefault() int {
	if c.Repeat == nil || *c.Repeat < 1 {
		return 1
	}
	return *c.Repeat
}

// FormatOrDefault returns Format, or FormatText when unset.
func (c *BenchConfig) FormatOrDefault() string {
	if c.Format == "" {
		return FormatText
	}
	return c.Format
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}
