package commands

import (
	"github.com/spf13/cobra"
)

var (
	tps   int
	every int
)

// Execute runs the scrollkit command line.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "scrollkit",
		Short:        "Headless tools for scrollkit tables and motion agents",
		SilenceUsage: true,
	}
	root.PersistentFlags().IntVar(&tps, "tps", 60, "simulated ticks per second")
	root.PersistentFlags().IntVar(&every, "every", 1, "print one trace line every N frames")

	root.AddCommand(replayCmd(), agentCmd())
	return root
}
