// Package engine implements the table persistence and synchronization core:
// it opens a SQLite database file, discovers its schema, materializes a named
// table into an in-memory grid, and commits an edited grid back to storage as
// a single atomic replace.
//
// The engine is synchronous and single-threaded by contract: every operation
// runs to completion on the caller's goroutine, and overlapping replaces
// against one connection must be serialized by the caller.
package engine

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Connection is an owned handle to one open database file. There is no
// process-wide connection registry; whoever opens a Connection passes it
// around explicitly and closes it when done.
type Connection struct {
	id   string
	path string
	db   *sqlx.DB
}

// OpenConnection opens and validates the database file at path.
// Returns ErrCannotOpen if the path does not resolve to an openable database
// and ErrInvalidStructure if the post-open liveness probe fails.
func OpenConnection(path string) (*Connection, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrCannotOpen)
	}
	// The driver happily creates missing files; an editor must not.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCannotOpen, path, err)
	}

	dsn := path + "?_pragma=busy_timeout(5000)"
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCannotOpen, path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %s: %v", ErrCannotOpen, path, err)
	}

	c := &Connection{
		id:   uuid.New().String(),
		path: path,
		db:   db,
	}
	if err := c.probe(); err != nil {
		db.Close()
		return nil, err
	}

	slog.Debug("opened database", "path", path, "conn", c.id)
	return c, nil
}

// probe runs trivial read-only queries to confirm the handle points at a
// real SQLite database. A non-database file fails here, on first read.
func (c *Connection) probe() error {
	var one int
	if err := c.db.QueryRow("SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidStructure, c.path, err)
	}
	var n int
	if err := c.db.QueryRow("SELECT count(*) FROM sqlite_master").Scan(&n); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidStructure, c.path, err)
	}
	return nil
}

// ID returns the generated identifier for this connection instance.
// Diagnostic only; nothing is keyed on it.
func (c *Connection) ID() string {
	return c.id
}

// Path returns the file path this connection is bound to.
func (c *Connection) Path() string {
	return c.path
}

// IsLive reports whether the handle is open. It does not re-probe the
// database.
func (c *Connection) IsLive() bool {
	return c.db != nil
}

// Close releases the underlying handle. Idempotent: closing an already
// closed connection is a no-op.
func (c *Connection) Close() error {
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	if err != nil {
		return fmt.Errorf("closing %s: %w", c.path, err)
	}
	slog.Debug("closed database", "path", c.path, "conn", c.id)
	return nil
}
