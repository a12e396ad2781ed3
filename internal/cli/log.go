package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/strafesuite/tasedit/internal/op"
	"github.com/strafesuite/tasedit/internal/store"
)

// NewLogCommand creates the `tasedit log` command.
func NewLogCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "log <project.db>",
		Short: "List the project's operation log, applied entries and redo tail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(args[0])
			if err != nil {
				return err
			}
			defer st.Close()

			ctx := cmd.Context()
			p, err := st.Project(ctx)
			if err != nil {
				return err
			}
			blobs, err := st.Operations(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "project %s: %d operations, %d applied\n", p.ID, len(blobs), p.Cursor)

			seqStyle := color.New(color.FgCyan)
			undoneStyle := color.New(color.Faint)
			for i, blob := range blobs {
				o, err := op.Decode(blob)
				if err != nil {
					return fmt.Errorf("operation %d: %w", i+1, err)
				}

				line := fmt.Sprintf("%s %s", seqStyle.Sprintf("%4d", i+1), o)
				if i >= p.Cursor {
					line = undoneStyle.Sprintf("%s (undone)", line)
				}
				fmt.Fprintln(out, line)

				if r, isReplace := o.(op.Replace); isReplace {
					fmt.Fprintf(out, "     %s\n", replaceDiff(r))
				}
			}
			return nil
		},
	}
}

// replaceDiff renders the old -> new text of a Replace, as an inline diff
// when color is enabled.
func replaceDiff(r op.Replace) string {
	if color.NoColor {
		return fmt.Sprintf("%q -> %q", r.From, r.To)
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(r.From, r.To, false)
	return dmp.DiffPrettyText(dmp.DiffCleanupSemantic(diffs))
}
