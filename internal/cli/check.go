package cli

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/strafesuite/tasedit/internal/op"
	"github.com/strafesuite/tasedit/internal/script"
	"github.com/strafesuite/tasedit/internal/store"
)

// NewCheckCommand creates the `tasedit check` command.
//
// check verifies a project's structural integrity: every stored operation
// must decode and re-encode to identical bytes, the whole log must replay
// cleanly against the initial script, and undoing it all must reproduce the
// initial script exactly.
func NewCheckCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <project.db>",
		Short: "Verify a project's log: codec round-trip, replay, and full undo back to the initial script",
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

			initial, err := script.Parse(p.Script)
			if err != nil {
				return fmt.Errorf("stored script: %w", err)
			}

			ops := make([]op.Operation, len(blobs))
			for i, blob := range blobs {
				o, err := op.Decode(blob)
				if err != nil {
					return fmt.Errorf("operation %d: %w", i+1, err)
				}
				reencoded, err := op.Encode(o)
				if err != nil {
					return fmt.Errorf("operation %d: %w", i+1, err)
				}
				if !bytes.Equal(blob, reencoded) {
					return fmt.Errorf("operation %d: codec round-trip mismatch", i+1)
				}
				ops[i] = o
			}

			s := initial.Clone()
			for i, o := range ops {
				if _, err := o.Apply(s); err != nil {
					return fmt.Errorf("replay operation %d: %w", i+1, err)
				}
			}
			for i := len(ops) - 1; i >= 0; i-- {
				if _, err := ops[i].Undo(s); err != nil {
					return fmt.Errorf("undo operation %d: %w", i+1, err)
				}
			}
			if !reflect.DeepEqual(s, initial) {
				return fmt.Errorf("undoing the full log did not restore the initial script")
			}

			ok := color.New(color.FgGreen).Sprint("ok")
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d operations, %d applied\n", ok, len(ops), p.Cursor)
			return nil
		},
	}
}
