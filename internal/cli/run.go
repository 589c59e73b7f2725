package cli

import (
	"github.com/spf13/cobra"

	"github.com/wesleyorama2/purge/internal/config"
)

func newRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark from flags or a configuration file",
		Long: `Run the benchmark non-interactively. Size and value come from flags or
a configuration file; whichever is missing is asked for on stdin.

Examples:
  purge run --size 10000000 --value 42
  purge run -n 1000000 -v 0 --repeat 10 --strategy seq,par
  purge run --config bench.yaml --format json --output result.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			quiet, _ := cmd.Flags().GetBool("quiet")

			cfg, err := configFromFlags(cmd)
			if err != nil {
				return err
			}
			return runBenchmark(cmd, cfg, verbose, quiet)
		},
	}

	runCmd.Flags().StringP("config", "c", "", "Path to a YAML or JSON configuration file")
	runCmd.Flags().IntP("size", "n", 0, "Number of generated elements")
	runCmd.Flags().IntP("value", "v", 0, "Value to remove, in [0, 100]")
	runCmd.Flags().IntP("repeat", "r", 1, "Number of passes over all strategies")
	runCmd.Flags().IntP("workers", "w", 0, "Maximum goroutines for parallel strategies (0 = GOMAXPROCS)")
	runCmd.Flags().Int("min-chunk", 0, "Minimum elements per goroutine (0 = default)")
	runCmd.Flags().StringSliceP("strategy", "s", nil, "Strategies to run: base, seq, unseq, par, par_unseq")
	runCmd.Flags().StringP("format", "f", config.FormatText, "Report format: text, json or yaml")
	runCmd.Flags().StringP("output", "o", "", "Write the report to a file")
	runCmd.Flags().Bool("no-verify", false, "Skip comparing results against a reference removal")
	runCmd.Flags().Bool("demo", false, "Print the demonstration first")
	runCmd.Flags().BoolP("quiet", "q", false, "Only print the header and summary")

	return runCmd
}

// configFromFlags loads the configuration file, if any, and overrides it
// with every flag set on the command line.
func configFromFlags(cmd *cobra.Command) (*config.BenchConfig, error) {
	flags := cmd.Flags()

	cfg := &config.BenchConfig{}
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flags.Changed("size") {
		size, _ := flags.GetInt("size")
		cfg.Size = &size
	}
	if flags.Changed("value") {
		value, _ := flags.GetInt("value")
		cfg.Value = &value
	}
	if flags.Changed("repeat") {
		repeat, _ := flags.GetInt("repeat")
		cfg.Repeat = &repeat
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("min-chunk") {
		cfg.MinChunk, _ = flags.GetInt("min-chunk")
	}
	if flags.Changed("strategy") {
		cfg.Strategies, _ = flags.GetStringSlice("strategy")
	}
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if flags.Changed("no-verify") {
		noVerify, _ := flags.GetBool("no-verify")
		verify := !noVerify
		cfg.Verify = &verify
	}
	if flags.Changed("demo") {
		cfg.Demo, _ = flags.GetBool("demo")
	}
	if flags.Changed("no-color") {
		cfg.NoColor, _ = flags.GetBool("no-color")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
