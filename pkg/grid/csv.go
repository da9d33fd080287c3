// CSV encode/decode for grids. The header is always the first record, so a
// file written here reads back into an identical grid.
package grid

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV writes the header followed by every row. A zero delim writes
// standard comma-separated output.
func (g *Grid) WriteCSV(w io.Writer, delim rune) error {
	cw := csv.NewWriter(w)
	if delim != 0 {
		cw.Comma = delim
	}
	if err := cw.Write(g.Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range g.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses CSV input into a Grid. The first record becomes the header;
// short data records are padded with empty cells to the header width.
// Records are allowed to vary in length because hand-edited CSV often does.
func ReadCSV(r io.Reader, delim rune) (*Grid, error) {
	cr := csv.NewReader(r)
	if delim != 0 {
		cr.Comma = delim
	}
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return New(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	g := New(header)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(g.Rows), err)
		}
		for len(record) < g.Width() {
			record = append(record, "")
		}
		g.Rows = append(g.Rows, record)
	}
	return g, nil
}
