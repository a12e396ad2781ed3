package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func createTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "project.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_AppliesPragmas(t *testing.T) {
	s := createTestStore(t)

	for name, want := range map[string]string{
		"journal_mode": "wal",
		"foreign_keys": "1",
	} {
		if err := s.verifyPragma(name, want); err != nil {
			t.Errorf("pragma: %v", err)
		}
	}
}

func TestCreateProject(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	created, err := s.CreateProject(ctx, "// script\n")
	if err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}
	if created.ID == "" {
		t.Error("ID is empty, want a UUID")
	}

	p, err := s.Project(ctx)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	if p.ID != created.ID {
		t.Errorf("ID = %q, want %q", p.ID, created.ID)
	}
	if p.Script != "// script\n" {
		t.Errorf("Script = %q, want %q", p.Script, "// script\n")
	}
	if p.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", p.Cursor)
	}

	if _, err := s.CreateProject(ctx, "other"); !errors.Is(err, ErrProjectExists) {
		t.Errorf("second CreateProject error = %v, want ErrProjectExists", err)
	}
}

func TestProject_Missing(t *testing.T) {
	s := createTestStore(t)
	if _, err := s.Project(context.Background()); !errors.Is(err, ErrNoProject) {
		t.Errorf("Project error = %v, want ErrNoProject", err)
	}
}

func TestAppendOperation_SequencesFromOne(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	if _, err := s.CreateProject(ctx, ""); err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}

	for i, data := range [][]byte{{1}, {2}, {3}} {
		seq, err := s.AppendOperation(ctx, data)
		if err != nil {
			t.Fatalf("AppendOperation failed: %v", err)
		}
		if seq != int64(i+1) {
			t.Errorf("seq = %d, want %d", seq, i+1)
		}
	}

	ops, err := s.Operations(ctx)
	if err != nil {
		t.Fatalf("Operations failed: %v", err)
	}
	if len(ops) != 3 {
		t.Fatalf("len(ops) = %d, want 3", len(ops))
	}
	for i, want := range []byte{1, 2, 3} {
		if len(ops[i]) != 1 || ops[i][0] != want {
			t.Errorf("ops[%d] = %v, want [%d]", i, ops[i], want)
		}
	}

	p, _ := s.Project(ctx)
	if p.Cursor != 3 {
		t.Errorf("Cursor = %d, want 3", p.Cursor)
	}
}

func TestAppendOperation_DiscardsRedoTail(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	if _, err := s.CreateProject(ctx, ""); err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}
	for _, data := range [][]byte{{1}, {2}, {3}} {
		if _, err := s.AppendOperation(ctx, data); err != nil {
			t.Fatalf("AppendOperation failed: %v", err)
		}
	}

	// Undo twice, then append: the two undone rows must be deleted and the
	// new row takes seq 2.
	if err := s.SetCursor(ctx, 1); err != nil {
		t.Fatalf("SetCursor failed: %v", err)
	}
	seq, err := s.AppendOperation(ctx, []byte{9})
	if err != nil {
		t.Fatalf("AppendOperation failed: %v", err)
	}
	if seq != 2 {
		t.Errorf("seq = %d, want 2", seq)
	}

	ops, err := s.Operations(ctx)
	if err != nil {
		t.Fatalf("Operations failed: %v", err)
	}
	if len(ops) != 2 {
		t.Fatalf("len(ops) = %d, want 2", len(ops))
	}
	if ops[0][0] != 1 || ops[1][0] != 9 {
		t.Errorf("ops = %v, want [[1] [9]]", ops)
	}
}

func TestAppendOperation_NoProject(t *testing.T) {
	s := createTestStore(t)
	if _, err := s.AppendOperation(context.Background(), []byte{1}); !errors.Is(err, ErrNoProject) {
		t.Errorf("AppendOperation error = %v, want ErrNoProject", err)
	}
}

func TestSetCursor_Bounds(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	if _, err := s.CreateProject(ctx, ""); err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}
	if _, err := s.AppendOperation(ctx, []byte{1}); err != nil {
		t.Fatalf("AppendOperation failed: %v", err)
	}

	if err := s.SetCursor(ctx, 0); err != nil {
		t.Errorf("SetCursor(0) failed: %v", err)
	}
	if err := s.SetCursor(ctx, 1); err != nil {
		t.Errorf("SetCursor(1) failed: %v", err)
	}
	if err := s.SetCursor(ctx, 2); err == nil {
		t.Error("SetCursor(2) succeeded, want error past end of log")
	}
	if err := s.SetCursor(ctx, -1); err == nil {
		t.Error("SetCursor(-1) succeeded, want error")
	}
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := s.CreateProject(ctx, "abc"); err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}
	if _, err := s.AppendOperation(ctx, []byte{7}); err != nil {
		t.Fatalf("AppendOperation failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s2.Close()

	p, err := s2.Project(ctx)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	if p.Script != "abc" || p.Cursor != 1 {
		t.Errorf("Project = %+v, want script abc, cursor 1", p)
	}
}
