package cli

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/purge/internal/dataset"
	"github.com/wesleyorama2/purge/internal/output"
	"github.com/wesleyorama2/purge/internal/remove"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Show the removal on a small fixed sequence",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			noColor, _ := cmd.Flags().GetBool("no-color")

			console := output.NewConsole(output.ConsoleConfig{
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
				NoColor:   noColor,
			})
			runDemo(console)
		},
	}
}

// runDemo removes dataset.DemoValue from the demonstration sequence and
// prints it before and after.
func runDemo(console *output.Console) {
	data := dataset.DemoSequence()
	before := slices.Clone(data)
	after := remove.Shrink(data, dataset.DemoValue, remove.Baseline, remove.DefaultOptions())

	console.PrintDemo(before, dataset.DemoValue, after)
}
