// Package output renders benchmark progress and results.
package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/wesleyorama2/purge/internal/bench"
)

// Console writes human readable output. Sample lines keep the exact
// "<label>: <n> microseconds" shape with colors only around the parts.
type Console struct {
	writer    io.Writer
	errWriter io.Writer
	scheme    *ColorScheme
	useColors bool
	verbose   bool
	quiet     bool
}

// ConsoleConfig contains configuration for Console.
type ConsoleConfig struct {
	Writer      io.Writer // default: os.Stdout
	ErrWriter   io.Writer // default: os.Stderr
	NoColor     bool
	ForceColors bool
	Verbose     bool
	Quiet       bool // suppress per-sample lines, e.g. when a report is written
}

// NewConsole creates a new console output handler.
func NewConsole(config ConsoleConfig) *Console {
	if config.Writer == nil {
		config.Writer = os.Stdout
	}
	if config.ErrWriter == nil {
		config.ErrWriter = os.Stderr
	}

	useColors := !config.NoColor && (config.ForceColors || (isTerminal(config.Writer) && supportsColors()))

	scheme := NoColorScheme()
	if useColors {
		scheme = ForcedColorScheme()
	}

	return &Console{
		writer:    config.Writer,
		errWriter: config.ErrWriter,
		scheme:    scheme,
		useColors: useColors,
		verbose:   config.Verbose,
		quiet:     config.Quiet,
	}
}

// PrintDemo prints a sequence before and after removing value.
func (c *Console) PrintDemo(before []int, value int, after []int) {
	c.writeln(c.scheme.Title.Sprint("Demonstration algorithm work"))
	c.writeln(c.scheme.Label.Sprint("Stock collection: ") + joinInts(before))
	c.writeln(c.scheme.Label.Sprintf("After remove %d: ", value) + joinInts(after))
	c.writeln("")
}

// PrintHeader prints the benchmark parameters.
func (c *Console) PrintHeader(size, value, threads int) {
	if c.quiet {
		return
	}
	c.writeln("")
	c.writeln(c.scheme.Label.Sprint("Collection size: ") + c.scheme.Value.Sprint(size) + " elements")
	c.writeln(c.scheme.Label.Sprint("Remove value: ") + c.scheme.Value.Sprint(value))
	c.writeln(c.scheme.Label.Sprint("Available threads: ") + c.scheme.Value.Sprint(threads))
}

// PrintDetails prints the parallel configuration when verbose.
func (c *Console) PrintDetails(workers, chunks int) {
	if c.quiet || !c.verbose {
		return
	}
	c.writeln(c.scheme.Muted.Sprintf("Workers: %d, chunks used: %d", workers, chunks))
}

// PrintRun prints a separator before pass run of total.
func (c *Console) PrintRun(run, total int) {
	if c.quiet || total <= 1 {
		return
	}
	c.writeln(c.scheme.Highlight.Sprintf("Run %d/%d", run, total))
}

// PrintSample prints one timing line.
func (c *Console) PrintSample(s bench.Sample) {
	if c.quiet {
		return
	}
	line := c.scheme.Label.Sprint(s.Strategy.Label()+": ") +
		c.scheme.Value.Sprint(s.Microseconds()) + " microseconds"
	if c.verbose {
		line += c.scheme.Muted.Sprintf(" (kept %d)", s.Kept)
	}
	c.writeln(line)
}

// PrintSummary prints the per-strategy statistics table. It is only useful
// when there was more than one pass.
func (c *Console) PrintSummary(result *bench.Result) {
	if c.quiet || result == nil || result.Repeat <= 1 || len(result.Summaries) == 0 {
		return
	}

	fastest, slowest := extremes(result.Summaries)
	width := labelWidth(result.Summaries)

	c.writeln("")
	c.writeln(c.scheme.Title.Sprintf("Summary over %d runs (microseconds)", result.Repeat))
	c.writeln(fmt.Sprintf("%-*s %10s %10s %10s %10s %10s %10s",
		width, "Strategy", "min", "mean", "p50", "p99", "max", "stddev"))
	c.writeln(strings.Repeat("─", width+66))

	for i, s := range result.Summaries {
		mean := fmt.Sprintf("%10s", formatMicros(s.Mean))
		switch i {
		case fastest:
			mean = c.scheme.Fastest.Sprint(mean)
		case slowest:
			mean = c.scheme.Slowest.Sprint(mean)
		}
		c.writeln(fmt.Sprintf("%-*s %10s %s %10s %10s %10s %10s",
			width, s.Strategy.Label(),
			formatMicros(s.Min), mean, formatMicros(s.P50), formatMicros(s.P99),
			formatMicros(s.Max), formatMicros(s.StdDev)))
	}
}

// PrintSuccess prints a status line prefixed with a check mark.
func (c *Console) PrintSuccess(msg string) {
	if c.quiet {
		return
	}
	c.writeln(SuccessIcon(!c.useColors) + " " + msg)
}

// PrintError prints err to the error writer.
func (c *Console) PrintError(err error) {
	fmt.Fprintf(c.errWriter, "%s Error: %v\n", ErrorIcon(!c.useColors), err)
}

// PrintInfo prints a verbose diagnostic line to the error writer.
func (c *Console) PrintInfo(format string, args ...interface{}) {
	if !c.verbose {
		return
	}
	fmt.Fprintf(c.errWriter, "%s %s\n", InfoIcon(!c.useColors), fmt.Sprintf(format, args...))
}

func (c *Console) writeln(s string) {
	fmt.Fprintln(c.writer, s)
}

// joinInts renders values space separated with a trailing space.
func joinInts(values []int) string {
	var sb strings.Builder
	for _, v := range values {
		sb.WriteString(strconv.Itoa(v))
		sb.WriteByte(' ')
	}
	return sb.String()
}

// extremes returns the indexes of the lowest and highest mean. Both are -1
// when there is nothing to compare.
func extremes(sums []bench.Summary) (fastest, slowest int) {
	if len(sums) < 2 {
		return -1, -1
	}
	fastest, slowest = 0, 0
	for i, s := range sums {
		if s.Mean < sums[fastest].Mean {
			fastest = i
		}
		if s.Mean > sums[slowest].Mean {
			slowest = i
		}
	}
	if fastest == slowest {
		return -1, -1
	}
	return fastest, slowest
}

func labelWidth(sums []bench.Summary) int {
	width := len("Strategy")
	for _, s := range sums {
		if n := len(s.Strategy.Label()); n > width {
			width = n
		}
	}
	return width
}
