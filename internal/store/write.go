package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrProjectExists is returned by CreateProject when the database already
// holds a project.
var ErrProjectExists = errors.New("database already contains a project")

// CreateProject initializes the single project row of a fresh database with
// the given initial script text and a zero cursor.
func (s *Store) CreateProject(ctx context.Context, scriptText string) (Project, error) {
	p := Project{
		ID:     uuid.NewString(),
		Script: scriptText,
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO project (id, script, cursor)
		SELECT ?, ?, 0
		WHERE NOT EXISTS (SELECT 1 FROM project)
	`, p.ID, p.Script)
	if err != nil {
		return Project{}, fmt.Errorf("create project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return Project{}, fmt.Errorf("create project: %w", err)
	}
	if n == 0 {
		return Project{}, ErrProjectExists
	}

	return p, nil
}

// AppendOperation appends an encoded operation after the current cursor and
// advances the cursor past it. Any redo tail (rows past the cursor) is
// deleted first, all in one transaction. Returns the seq of the new row.
func (s *Store) AppendOperation(ctx context.Context, data []byte) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("append operation: %w", err)
	}
	defer tx.Rollback()

	var cursor int64
	if err := tx.QueryRowContext(ctx, `SELECT cursor FROM project`).Scan(&cursor); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("append operation: %w", ErrNoProject)
		}
		return 0, fmt.Errorf("append operation: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM operations WHERE seq > ?`, cursor); err != nil {
		return 0, fmt.Errorf("append operation: discard redo tail: %w", err)
	}

	seq := cursor + 1
	if _, err := tx.ExecContext(ctx, `INSERT INTO operations (seq, data) VALUES (?, ?)`, seq, data); err != nil {
		return 0, fmt.Errorf("append operation: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE project SET cursor = ?`, seq); err != nil {
		return 0, fmt.Errorf("append operation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("append operation: %w", err)
	}
	return seq, nil
}

// SetCursor persists the history position after an undo or redo. The cursor
// must lie within the retained log.
func (s *Store) SetCursor(ctx context.Context, cursor int) error {
	if cursor < 0 {
		return fmt.Errorf("set cursor: negative cursor %d", cursor)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("set cursor: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM operations`).Scan(&count); err != nil {
		return fmt.Errorf("set cursor: %w", err)
	}
	if cursor > count {
		return fmt.Errorf("set cursor: %d past end of log (%d operations)", cursor, count)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE project SET cursor = ?`, cursor); err != nil {
		return fmt.Errorf("set cursor: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("set cursor: %w", err)
	}
	return nil
}
