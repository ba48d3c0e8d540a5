package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test [arguments...]",
		Short: "Run tests, skipping targets already verified in the cache",
		Long: "Run tests through the underlying build tool, skipping every test target " +
			"whose content hash already passed in a previous run. All arguments are " +
			"passed through unchanged; -scheme <name> is required, -testPlan <name> " +
			"selects a test plan within the scheme.",
		Args: cobra.ArbitraryArgs,
		// Arguments belong to the underlying tool; none of them are ours to parse.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Test(cmd.Context(), args)
		},
	}
}
