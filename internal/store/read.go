package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNoProject is returned when the database holds no project row yet.
var ErrNoProject = errors.New("database contains no project")

// Project is the single project row of a database.
type Project struct {
	ID     string
	Script string // initial script text
	Cursor int    // number of applied operations
}

// Project reads the project row.
func (s *Store) Project(ctx context.Context) (Project, error) {
	var p Project
	err := s.db.QueryRowContext(ctx, `SELECT id, script, cursor FROM project`).
		Scan(&p.ID, &p.Script, &p.Cursor)
	if errors.Is(err, sql.ErrNoRows) {
		return Project{}, ErrNoProject
	}
	if err != nil {
		return Project{}, fmt.Errorf("read project: %w", err)
	}
	return p, nil
}

// Operations reads the whole operation log in seq order, applied entries
// and redo tail alike.
func (s *Store) Operations(ctx context.Context) ([][]byte, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT data FROM operations ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("read operations: %w", err)
	}
	defer rows.Close()

	var ops [][]byte
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("read operations: %w", err)
		}
		ops = append(ops, data)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read operations: %w", err)
	}
	return ops, nil
}
