// Package sqlite persists per-file editor state in a local SQLite database.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/zjrosen/vedit/internal/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS positions (
	path       TEXT PRIMARY KEY,
	cursor_row INTEGER NOT NULL,
	cursor_col INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_positions_updated_at ON positions(updated_at);
`

// DB wraps the history database connection.
type DB struct {
	conn *sql.DB
	path string
}

// NewDB opens (creating if needed) the database at dbPath.
// The parent directory is created with 0700 permissions.
func NewDB(dbPath string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	dsn := "file:" + dbPath +
		"?_pragma=journal_mode(wal)" +
		"&_pragma=foreign_keys(1)" +
		"&_pragma=busy_timeout(5000)"

	log.Debug(log.CatHistory, "Opening database", "path", dbPath)
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.ErrorErr(log.CatHistory, "Failed to open database", err, "path", dbPath)
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		log.ErrorErr(log.CatHistory, "Failed to ping database", err, "path", dbPath)
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if _, err := conn.Exec(schema); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	log.Info(log.CatHistory, "Connected to database", "path", dbPath)
	return &DB{conn: conn, path: dbPath}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Positions returns the cursor position repository.
func (db *DB) Positions() *PositionRepository {
	return newPositionRepository(db.conn)
}
