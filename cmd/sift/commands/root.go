// Package commands implements the CLI commands for the sift tool.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
)

// Runner is the application surface the CLI drives.
type Runner interface {
	// Test runs the selective test flow with the given passthrough arguments.
	Test(ctx context.Context, args []string) error
}

// CLI represents the command line interface for sift.
type CLI struct {
	app     Runner
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a Runner) *CLI {
	rootCmd := &cobra.Command{
		Use:           "sift",
		Short:         "Selective test runner with content-hash caching",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newTestCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the stdout and stderr writers. Used for testing.
func (c *CLI) SetOutput(stdout, stderr io.Writer) {
	c.rootCmd.SetOut(stdout)
	c.rootCmd.SetErr(stderr)
}
