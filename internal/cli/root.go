// Package cli implements the tasedit command line interface for inspecting
// and verifying project databases.
package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	NoColor bool
}

// NewRootCommand creates the root command for the tasedit CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "tasedit",
		Short: "tasedit - frame-based script editing with persistent undo",
		Long: "tasedit edits frame-based control scripts through a durable log of\n" +
			"invertible operations, so undo and redo survive restarts.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.NoColor {
				color.NoColor = true
			}
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "disable colorized output")

	cmd.AddCommand(NewNewCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewLogCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}
