package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/strafesuite/tasedit/internal/editor"
	"github.com/strafesuite/tasedit/internal/store"
)

// NewNewCommand creates the `tasedit new` command.
func NewNewCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "new <project.db> <script file>",
		Short: "Create a project database from a script file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, scriptPath := args[0], args[1]

			text, err := os.ReadFile(scriptPath)
			if err != nil {
				return err
			}

			st, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			if _, err := editor.Create(cmd.Context(), st, string(text)); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created project %s from %s\n", dbPath, scriptPath)
			return nil
		},
	}
}
