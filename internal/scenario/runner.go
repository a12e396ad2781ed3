package scenario

import (
	"fmt"
	"reflect"

	"github.com/strafesuite/tasedit/internal/editor"
	"github.com/strafesuite/tasedit/internal/op"
	"github.com/strafesuite/tasedit/internal/script"
)

// Run executes the scenario against an in-memory history and returns an
// error describing the first failed expectation, if any.
func Run(sc *Scenario) error {
	s, err := script.Parse(sc.Script)
	if err != nil {
		return fmt.Errorf("scenario %s: input script: %w", sc.Name, err)
	}
	want, err := script.Parse(sc.Want)
	if err != nil {
		return fmt.Errorf("scenario %s: want script: %w", sc.Name, err)
	}

	var hist editor.History
	for i, step := range sc.Steps {
		var inv op.Invalidation
		switch step.Op {
		case "undo":
			var ok bool
			inv, ok, err = hist.Undo(s)
			if err == nil && !ok {
				err = fmt.Errorf("nothing to undo")
			}
		case "redo":
			var ok bool
			inv, ok, err = hist.Redo(s)
			if err == nil && !ok {
				err = fmt.Errorf("nothing to redo")
			}
		default:
			var o op.Operation
			o, err = step.operation()
			if err == nil {
				inv, err = hist.Apply(s, o)
			}
		}
		if err != nil {
			return fmt.Errorf("scenario %s: step %d (%s): %w", sc.Name, i+1, step.Op, err)
		}
		if err := step.Invalidates.check(inv); err != nil {
			return fmt.Errorf("scenario %s: step %d (%s): %w", sc.Name, i+1, step.Op, err)
		}
	}

	if !reflect.DeepEqual(s, want) {
		return fmt.Errorf("scenario %s: final script mismatch\ngot:\n%swant:\n%s", sc.Name, s.Print(), want.Print())
	}
	return nil
}
