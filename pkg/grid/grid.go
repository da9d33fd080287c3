// Package grid defines the in-memory table representation shared between the
// persistence engine and its callers: an ordered header plus ordered rows of
// text cells. A Grid never touches storage; edits accumulate here until the
// caller asks the engine to commit the whole grid in one transaction.
package grid

import "errors"

// Staging operation errors.
var (
	ErrRowOutOfRange  = errors.New("row index out of range")
	ErrCellOutOfRange = errors.New("cell index out of range")
)

// Grid is an editable snapshot of one table: column labels in Header and
// text cell values in Rows, aligned positionally with Header. All storage
// types are coerced to text on load; no type fidelity survives a round trip.
type Grid struct {
	Header []string
	Rows   [][]string

	dirty bool
}

// New returns an empty Grid with the given column labels.
func New(header []string) *Grid {
	return &Grid{Header: header}
}

// Width returns the number of columns, derived from the header.
func (g *Grid) Width() int {
	return len(g.Header)
}

// RowCount returns the number of data rows.
func (g *Grid) RowCount() int {
	return len(g.Rows)
}

// AppendBlankRow adds a row of empty cells and returns its index.
func (g *Grid) AppendBlankRow() int {
	g.Rows = append(g.Rows, make([]string, g.Width()))
	g.dirty = true
	return len(g.Rows) - 1
}

// AppendRow adds a row, padding short rows with empty cells so every row
// carries at least Width cells. Returns the new row's index.
func (g *Grid) AppendRow(cells []string) int {
	row := make([]string, 0, g.Width())
	row = append(row, cells...)
	for len(row) < g.Width() {
		row = append(row, "")
	}
	g.Rows = append(g.Rows, row)
	g.dirty = true
	return len(g.Rows) - 1
}

// RemoveRow deletes the row at index, shifting later rows up.
func (g *Grid) RemoveRow(index int) error {
	if index < 0 || index >= len(g.Rows) {
		return ErrRowOutOfRange
	}
	g.Rows = append(g.Rows[:index], g.Rows[index+1:]...)
	g.dirty = true
	return nil
}

// SetCell overwrites one cell. The row must exist; a column index beyond the
// row's current length but within the grid width pads the row first.
func (g *Grid) SetCell(row, col int, value string) error {
	if row < 0 || row >= len(g.Rows) {
		return ErrRowOutOfRange
	}
	if col < 0 || col >= g.Width() {
		return ErrCellOutOfRange
	}
	for len(g.Rows[row]) <= col {
		g.Rows[row] = append(g.Rows[row], "")
	}
	g.Rows[row][col] = value
	g.dirty = true
	return nil
}

// Cell returns the cell value at row, col. Cells a short row never reached
// read as empty text.
func (g *Grid) Cell(row, col int) (string, error) {
	if row < 0 || row >= len(g.Rows) {
		return "", ErrRowOutOfRange
	}
	if col < 0 || col >= g.Width() {
		return "", ErrCellOutOfRange
	}
	if col >= len(g.Rows[row]) {
		return "", nil
	}
	return g.Rows[row][col], nil
}

// Dirty reports whether the grid has edits not yet committed.
func (g *Grid) Dirty() bool {
	return g.dirty
}

// MarkClean clears the dirty flag. Called by the engine after a successful
// commit and by callers that discard staged edits.
func (g *Grid) MarkClean() {
	g.dirty = false
}

// Clone returns a deep copy with the dirty flag cleared.
func (g *Grid) Clone() *Grid {
	c := New(append([]string(nil), g.Header...))
	c.Rows = make([][]string, len(g.Rows))
	for i, row := range g.Rows {
		c.Rows[i] = append([]string(nil), row...)
	}
	return c
}
