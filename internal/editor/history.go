// Package editor ties a script, its undo/redo history and the durable
// operation log into one editing session.
//
// All calls are synchronous and must run on the goroutine that owns the
// script. There is no internal locking; a playback worker on another
// goroutine gets the script snapshot and invalidation index via explicit
// hand-off by the caller.
package editor

import (
	"github.com/strafesuite/tasedit/internal/op"
	"github.com/strafesuite/tasedit/internal/script"
)

// History is the append-ordered log of applied operations with a cursor
// separating applied entries from the undone-but-retained redo tail.
//
// The zero value is an empty history.
type History struct {
	entries []op.Operation
	cursor  int // entries[:cursor] are applied, entries[cursor:] are the redo tail
}

// Apply applies o to s and pushes it, discarding any redo tail. On error
// nothing is pushed and s is unchanged.
func (h *History) Apply(s *script.Script, o op.Operation) (op.Invalidation, error) {
	inv, err := o.Apply(s)
	if err != nil {
		return op.None, err
	}
	h.entries = append(h.entries[:h.cursor], o)
	h.cursor++
	return inv, nil
}

// ApplyBatch applies several operations from one logical user action. The
// returned invalidation is the union (earliest frame) across the members,
// none only if every member is none.
//
// A failure mid-batch is a fatal structural-integrity condition like any
// other apply failure; operations applied before the failing one stay
// applied and pushed.
func (h *History) ApplyBatch(s *script.Script, ops ...op.Operation) (op.Invalidation, error) {
	inv := op.None
	for _, o := range ops {
		i, err := h.Apply(s, o)
		if err != nil {
			return inv, err
		}
		inv = inv.Union(i)
	}
	return inv, nil
}

// Undo reverts the most recently applied operation and moves it to the redo
// tail. ok is false when there is nothing to undo.
func (h *History) Undo(s *script.Script) (op.Invalidation, bool, error) {
	if h.cursor == 0 {
		return op.None, false, nil
	}
	inv, err := h.entries[h.cursor-1].Undo(s)
	if err != nil {
		return op.None, false, err
	}
	h.cursor--
	return inv, true, nil
}

// Redo re-applies the most recently undone operation. ok is false when the
// redo tail is empty.
func (h *History) Redo(s *script.Script) (op.Invalidation, bool, error) {
	if h.cursor == len(h.entries) {
		return op.None, false, nil
	}
	inv, err := h.entries[h.cursor].Apply(s)
	if err != nil {
		return op.None, false, err
	}
	h.cursor++
	return inv, true, nil
}

// CanUndo reports whether an applied entry exists.
func (h *History) CanUndo() bool { return h.cursor > 0 }

// CanRedo reports whether the redo tail is non-empty.
func (h *History) CanRedo() bool { return h.cursor < len(h.entries) }

// Len returns the total number of retained entries, applied and undone.
func (h *History) Len() int { return len(h.entries) }

// Cursor returns the number of currently applied entries.
func (h *History) Cursor() int { return h.cursor }
