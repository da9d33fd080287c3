package engine

import (
	"fmt"

	"github.com/ZER0ZED/SQLTableEditing/pkg/grid"
)

// Engine is the narrow contract the presentation layer calls: open a file,
// list its tables, load one as a grid, commit an edited grid back. An engine
// owns at most one live connection; opening a new file closes the old one.
//
// The engine does not serialize overlapping replaces against its single
// connection. Callers needing that serialize themselves.
type Engine struct {
	conn *Connection
}

// New returns an engine with no database loaded.
func New() *Engine {
	return &Engine{}
}

// Open loads the database file at path, discarding any previously open
// connection first. On failure the engine is left with nothing loaded.
func (e *Engine) Open(path string) error {
	if e.conn != nil {
		_ = e.conn.Close()
		e.conn = nil
	}
	conn, err := OpenConnection(path)
	if err != nil {
		return err
	}
	e.conn = conn
	return nil
}

// Close releases the current connection. Idempotent.
func (e *Engine) Close() error {
	if e.conn == nil {
		return nil
	}
	err := e.conn.Close()
	e.conn = nil
	return err
}

// IsLoaded reports whether a database is open.
func (e *Engine) IsLoaded() bool {
	return e.conn != nil && e.conn.IsLive()
}

// Path returns the currently loaded file path, or empty text when nothing
// is loaded.
func (e *Engine) Path() string {
	if e.conn == nil {
		return ""
	}
	return e.conn.Path()
}

// ListTables returns the user table names of the loaded database.
func (e *Engine) ListTables() ([]string, error) {
	if !e.IsLoaded() {
		return nil, ErrNotLoaded
	}
	return e.conn.Tables()
}

// LoadTable materializes the named table into a fresh grid.
func (e *Engine) LoadTable(name string) (*grid.Grid, error) {
	if !e.IsLoaded() {
		return nil, ErrNotLoaded
	}
	return e.conn.LoadTable(name)
}

// ReplaceTable atomically persists g as the complete new content of the
// named table.
func (e *Engine) ReplaceTable(name string, g *grid.Grid) error {
	if !e.IsLoaded() {
		return ErrNotLoaded
	}
	return e.conn.ReplaceTable(name, g)
}

// AppendRow loads the named table, appends one row (padded with empty cells
// to the table width), and commits via full replace.
func (e *Engine) AppendRow(name string, cells []string) error {
	g, err := e.LoadTable(name)
	if err != nil {
		return err
	}
	g.AppendRow(cells)
	return e.ReplaceTable(name, g)
}

// DeleteRowAt loads the named table, removes the row at index, and commits
// via full replace. The index addresses the freshly loaded grid, never a
// storage-level row offset, so a concurrent modification can at worst change
// which grid was loaded, not silently delete the wrong stored row.
func (e *Engine) DeleteRowAt(name string, index int) error {
	g, err := e.LoadTable(name)
	if err != nil {
		return err
	}
	if err := g.RemoveRow(index); err != nil {
		return fmt.Errorf("%s row %d: %w", name, index, err)
	}
	return e.ReplaceTable(name, g)
}
