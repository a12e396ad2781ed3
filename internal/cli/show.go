package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strafesuite/tasedit/internal/editor"
	"github.com/strafesuite/tasedit/internal/store"
)

// NewShowCommand creates the `tasedit show` command.
func NewShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <project.db>",
		Short: "Print the project's current script (initial script with all applied edits replayed)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(args[0])
			if err != nil {
				return err
			}
			defer st.Close()

			e, err := editor.Open(cmd.Context(), st)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), e.Script().Print())
			return nil
		},
	}
}
