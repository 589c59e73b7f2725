package cli

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/purge/internal/bench"
	"github.com/wesleyorama2/purge/internal/config"
	"github.com/wesleyorama2/purge/internal/dataset"
	"github.com/wesleyorama2/purge/internal/output"
	"github.com/wesleyorama2/purge/internal/remove"
)

// runBenchmark runs the whole flow: optional demo, prompts for whatever cfg
// leaves unset, data generation, the timed runs and the report.
func runBenchmark(cmd *cobra.Command, cfg *config.BenchConfig, verbose, quiet bool) error {
	format, err := output.ParseFormat(cfg.FormatOrDefault())
	if err != nil {
		return err
	}

	// Structured reports own stdout; everything else moves to stderr.
	consoleWriter := cmd.OutOrStdout()
	if format != output.FormatText {
		consoleWriter = cmd.ErrOrStderr()
	}

	console := output.NewConsole(output.ConsoleConfig{
		Writer:    consoleWriter,
		ErrWriter: cmd.ErrOrStderr(),
		NoColor:   cfg.NoColor,
		Verbose:   verbose,
	})
	samples := console
	if quiet {
		samples = output.NewConsole(output.ConsoleConfig{Writer: consoleWriter, Quiet: true})
	}

	if cfg.Demo {
		runDemo(console)
	}

	prompter := NewPrompter(cmd.InOrStdin(), consoleWriter)

	size := 0
	if cfg.Size != nil {
		size = *cfg.Size
	} else if size, err = prompter.ReadSize(); err != nil {
		return err
	}

	gen, err := dataset.NewGenerator()
	if err != nil {
		return err
	}
	data := gen.Generate(size)

	value := 0
	if cfg.Value != nil {
		value = *cfg.Value
	} else if value, err = prompter.ReadValue(); err != nil {
		return err
	}

	strategies, err := remove.ParseStrategies(cfg.Strategies)
	if err != nil {
		return err
	}

	driver := bench.NewDriver(bench.Config{
		Strategies: strategies,
		Repeat:     cfg.RepeatOrDefault(),
		Verify:     cfg.VerifyEnabled(),
		Options: remove.Options{
			Workers:  cfg.Workers,
			MinChunk: cfg.MinChunk,
		},
	})
	effective := driver.Config()

	console.PrintHeader(size, value, runtime.NumCPU())
	console.PrintDetails(effective.Options.Workers, effective.Options.Chunks(size))

	lastRun := 0
	result, err := driver.Run(cmd.Context(), data, value, func(s bench.Sample) {
		if s.Run != lastRun {
			samples.PrintRun(s.Run, effective.Repeat)
			lastRun = s.Run
		}
		samples.PrintSample(s)
	})
	if err != nil {
		return err
	}

	console.PrintInfo("kept %d of %d elements", result.Kept, result.Size)
	console.PrintSummary(result)

	if format == output.FormatText && cfg.Output == "" {
		return nil
	}
	return writeReport(cmd, console, format, cfg.Output, result)
}

// writeReport renders result and writes it to path, or to stdout when path
// is empty.
func writeReport(cmd *cobra.Command, console *output.Console, format output.OutputFormat, path string, result *bench.Result) error {
	data, err := output.FormatReport(format, output.NewReport(result, time.Now()))
	if err != nil {
		return err
	}

	if path == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	console.PrintSuccess(fmt.Sprintf("Report written to %s", path))
	return nil
}
