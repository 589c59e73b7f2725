package output

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wesleyorama2/purge/internal/bench"
)

// OutputFormat represents the available report formats
type OutputFormat string

const (
	// FormatText is the default human-readable text format
	FormatText OutputFormat = "text"
	// FormatJSON outputs in JSON format
	FormatJSON OutputFormat = "json"
	// FormatYAML outputs in YAML format
	FormatYAML OutputFormat = "yaml"
)

// ParseFormat converts a format name to an OutputFormat.
func ParseFormat(name string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(name)); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format: %s", name)
	}
}

// Report is the structured form of a benchmark result
type Report struct {
	Size       int              `json:"size" yaml:"size"`
	Value      int              `json:"value" yaml:"value"`
	Threads    int              `json:"threads" yaml:"threads"`
	Workers    int              `json:"workers" yaml:"workers"`
	Chunks     int              `json:"chunks" yaml:"chunks"`
	Repeat     int              `json:"repeat" yaml:"repeat"`
	Kept       int              `json:"kept" yaml:"kept"`
	Timestamp  string           `json:"timestamp" yaml:"timestamp"`
	Strategies []StrategyReport `json:"strategies" yaml:"strategies"`
}

// StrategyReport holds the timings of one strategy in microseconds
type StrategyReport struct {
	Strategy     string  `json:"strategy" yaml:"strategy"`
	Label        string  `json:"label" yaml:"label"`
	Runs         int     `json:"runs" yaml:"runs"`
	MinMicros    float64 `json:"minMicros" yaml:"minMicros"`
	MeanMicros   float64 `json:"meanMicros" yaml:"meanMicros"`
	P50Micros    float64 `json:"p50Micros" yaml:"p50Micros"`
	P99Micros    float64 `json:"p99Micros" yaml:"p99Micros"`
	MaxMicros    float64 `json:"maxMicros" yaml:"maxMicros"`
	StdDevMicros float64 `json:"stddevMicros" yaml:"stddevMicros"`
}

// NewReport converts a benchmark result into a Report
func NewReport(result *bench.Result, at time.Time) *Report {
	report := &Report{
		Size:       result.Size,
		Value:      result.Value,
		Threads:    result.Threads,
		Workers:    result.Workers,
		Chunks:     result.Chunks,
		Repeat:     result.Repeat,
		Kept:       result.Kept,
		Timestamp:  at.Format(time.RFC3339),
		Strategies: make([]StrategyReport, 0, len(result.Summaries)),
	}

	for _, s := range result.Summaries {
		report.Strategies = append(report.Strategies, StrategyReport{
			Strategy:     s.Strategy.String(),
			Label:        s.Strategy.Label(),
			Runs:         s.Runs,
			MinMicros:    micros(s.Min),
			MeanMicros:   micros(s.Mean),
			P50Micros:    micros(s.P50),
			P99Micros:    micros(s.P99),
			MaxMicros:    micros(s.Max),
			StdDevMicros: micros(s.StdDev),
		})
	}

	return report
}

// FormatReport renders a report in the requested format
func FormatReport(format OutputFormat, report *Report) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(report)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
		}
		return data, nil
	case FormatText, "":
		return []byte(formatTextReport(report)), nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", format)
	}
}

func formatTextReport(report *Report) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Collection size: %d elements\n", report.Size))
	sb.WriteString(fmt.Sprintf("Remove value: %d\n", report.Value))
	sb.WriteString(fmt.Sprintf("Available threads: %d\n", report.Threads))
	for _, s := range report.Strategies {
		sb.WriteString(fmt.Sprintf("%s: %s microseconds\n", s.Label, strconvMicros(s.MeanMicros)))
	}

	return sb.String()
}

func micros(d time.Duration) float64 {
	return float64(d) / float64(time.Microsecond)
}

// formatMicros renders d in microseconds, with one decimal only when the
// value is not whole.
func formatMicros(d time.Duration) string {
	return strconvMicros(micros(d))
}

func strconvMicros(us float64) string {
	if us == float64(int64(us)) {
		return fmt.Sprintf("%d", int64(us))
	}
	return fmt.Sprintf("%.1f", us)
}
