package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Position is the last cursor position recorded for a file.
type Position struct {
	Path      string
	Row       int
	Col       int
	UpdatedAt time.Time
}

// PositionRepository reads and writes remembered cursor positions.
type PositionRepository struct {
	db  *sql.DB
	now func() time.Time
}

func newPositionRepository(db *sql.DB) *PositionRepository {
	return &PositionRepository{db: db, now: time.Now}
}

// Get returns the position for path. ok is false when none is recorded.
func (r *PositionRepository) Get(ctx context.Context, path string) (pos Position, ok bool, err error) {
	var updated int64
	err = r.db.QueryRowContext(ctx,
		`SELECT path, cursor_row, cursor_col, updated_at FROM positions WHERE path = ?`, path,
	).Scan(&pos.Path, &pos.Row, &pos.Col, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return Position{}, false, nil
	}
	if err != nil {
		return Position{}, false, fmt.Errorf("failed to get position: %w", err)
	}
	pos.UpdatedAt = time.Unix(updated, 0)
	return pos, true, nil
}

// Put records row and col for path, replacing any previous entry.
func (r *PositionRepository) Put(ctx context.Context, path string, row, col int) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO positions (path, cursor_row, cursor_col, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET cursor_row = excluded.cursor_row, cursor_col = excluded.cursor_col, updated_at = excluded.updated_at`,
		path, row, col, r.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to put position: %w", err)
	}
	return nil
}

// Prune keeps only the keep most recently updated entries and returns how many were removed.
func (r *PositionRepository) Prune(ctx context.Context, keep int) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM positions WHERE path NOT IN (
			SELECT path FROM positions ORDER BY updated_at DESC, path LIMIT ?
		)`, keep,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prune positions: %w", err)
	}
	return result.RowsAffected()
}
