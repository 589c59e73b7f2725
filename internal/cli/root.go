package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/purge/internal/config"
	"github.com/wesleyorama2/purge/internal/output"
)

var version = "0.1.0"

// NewRootCmd builds the command tree. Without a subcommand it runs the
// demonstration followed by an interactive benchmark.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "purge",
		Short:   "Benchmark removing a value from an integer sequence",
		Version: version,
		Long: `Purge times removing every occurrence of a value from a random integer
sequence and truncating it, once per execution strategy: a plain library
call, a sequential loop, a branch-free unrolled loop, and parallel variants
of both that split the sequence across goroutines.

Run without arguments for the interactive mode, which asks for a
collection size and the value to remove.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			verbose, _ := cmd.Flags().GetBool("verbose")

			cfg := &config.BenchConfig{Demo: true, NoColor: noColor}
			return runBenchmark(cmd, cfg, verbose, false)
		},
	}

	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().Bool("verbose", false, "Print worker and chunk details")

	// Add subcommands to root command
	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newRunCmd())

	return rootCmd
}

// Execute runs the command tree. Interrupts cancel the benchmark between
// measurements. This is called by main.main().
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return executeContext(ctx, NewRootCmd())
}

// executeContext runs cmd and reports a failure on its error stream.
func executeContext(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		noColor, _ := cmd.PersistentFlags().GetBool("no-color")
		console := output.NewConsole(output.ConsoleConfig{
			Writer:    cmd.OutOrStdout(),
			ErrWriter: cmd.ErrOrStderr(),
			NoColor:   noColor,
		})
		console.PrintError(err)
	}
	return err
}
