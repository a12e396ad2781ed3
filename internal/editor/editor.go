package editor

import (
	"context"
	"fmt"

	"github.com/strafesuite/tasedit/internal/op"
	"github.com/strafesuite/tasedit/internal/script"
	"github.com/strafesuite/tasedit/internal/store"
)

// Editor is an editing session: the current script, its history and,
// optionally, the project database the history is mirrored to.
type Editor struct {
	script  *script.Script
	history History
	store   *store.Store // nil for in-memory sessions
}

// New starts an in-memory session on s with empty history.
func New(s *script.Script) *Editor {
	return &Editor{script: s}
}

// Create initializes a fresh project database with scriptText and returns a
// session on it.
func Create(ctx context.Context, st *store.Store, scriptText string) (*Editor, error) {
	s, err := script.Parse(scriptText)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	if _, err := st.CreateProject(ctx, scriptText); err != nil {
		return nil, err
	}
	return &Editor{script: s, store: st}, nil
}

// Open restores a session from a project database: the initial script is
// parsed, every persisted operation is decoded, the applied prefix (up to
// the stored cursor) is replayed against the script, and the rest is
// retained as the redo tail. Undo and redo therefore keep working across
// restarts.
//
// Any decode or replay failure means the stored log no longer matches the
// stored script; the project is corrupted and the error is fatal.
func Open(ctx context.Context, st *store.Store) (*Editor, error) {
	p, err := st.Project(ctx)
	if err != nil {
		return nil, err
	}
	s, err := script.Parse(p.Script)
	if err != nil {
		return nil, fmt.Errorf("open project %s: stored script: %w", p.ID, err)
	}

	blobs, err := st.Operations(ctx)
	if err != nil {
		return nil, err
	}
	if p.Cursor > len(blobs) {
		return nil, fmt.Errorf("open project %s: cursor %d past end of log (%d operations)", p.ID, p.Cursor, len(blobs))
	}

	e := &Editor{script: s, store: st}
	for i, blob := range blobs {
		o, err := op.Decode(blob)
		if err != nil {
			return nil, fmt.Errorf("open project %s: operation %d: %w", p.ID, i+1, err)
		}
		e.history.entries = append(e.history.entries, o)
	}
	for i := 0; i < p.Cursor; i++ {
		if _, err := e.history.entries[i].Apply(s); err != nil {
			return nil, fmt.Errorf("open project %s: replay operation %d: %w", p.ID, i+1, err)
		}
		e.history.cursor++
	}
	return e, nil
}

// Script returns the current script. The caller must not mutate it; all
// edits go through Apply.
func (e *Editor) Script() *script.Script {
	return e.script
}

// History returns the session's history.
func (e *Editor) History() *History {
	return &e.history
}

// Apply applies one edit and appends it to the history and, when the
// session has a store, to the project database (discarding any persisted
// redo tail).
func (e *Editor) Apply(ctx context.Context, o op.Operation) (op.Invalidation, error) {
	// Encode first: an unencodable operation must not reach the script.
	var blob []byte
	if e.store != nil {
		var err error
		blob, err = op.Encode(o)
		if err != nil {
			return op.None, err
		}
	}

	inv, err := e.history.Apply(e.script, o)
	if err != nil {
		return op.None, err
	}

	if e.store != nil {
		if _, err := e.store.AppendOperation(ctx, blob); err != nil {
			return op.None, err
		}
	}
	return inv, nil
}

// ApplyBatch applies several operations from one logical user action,
// combining their invalidations by taking the earliest frame.
func (e *Editor) ApplyBatch(ctx context.Context, ops ...op.Operation) (op.Invalidation, error) {
	inv := op.None
	for _, o := range ops {
		i, err := e.Apply(ctx, o)
		if err != nil {
			return inv, err
		}
		inv = inv.Union(i)
	}
	return inv, nil
}

// Undo reverts the most recent edit and persists the new cursor. ok is
// false when there is nothing to undo.
func (e *Editor) Undo(ctx context.Context) (op.Invalidation, bool, error) {
	inv, ok, err := e.history.Undo(e.script)
	if err != nil || !ok {
		return inv, ok, err
	}
	if e.store != nil {
		if err := e.store.SetCursor(ctx, e.history.cursor); err != nil {
			return op.None, false, err
		}
	}
	return inv, true, nil
}

// Redo re-applies the most recently undone edit and persists the new
// cursor. ok is false when the redo tail is empty.
func (e *Editor) Redo(ctx context.Context) (op.Invalidation, bool, error) {
	inv, ok, err := e.history.Redo(e.script)
	if err != nil || !ok {
		return inv, ok, err
	}
	if e.store != nil {
		if err := e.store.SetCursor(ctx, e.history.cursor); err != nil {
			return op.None, false, err
		}
	}
	return inv, true, nil
}
