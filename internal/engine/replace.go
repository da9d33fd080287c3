// Transactional full replace: make the stored table match a caller-supplied
// grid exactly, or leave it untouched. There is no diffing; a one-cell edit
// still deletes and reinserts every row inside one transaction, which is what
// makes "edit the grid freely, then save" atomic.
package engine

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ZER0ZED/SQLTableEditing/pkg/grid"
)

// ReplaceTable discards all rows of the named table and reinserts the grid's
// rows inside a single transaction. On any failure the transaction is rolled
// back and the table is left exactly as it was. Returns ErrNoSuchTable if
// the table is absent, ErrTxBegin, ErrWriteFailed, or ErrCommitFailed for
// the respective stage.
func (c *Connection) ReplaceTable(table string, g *grid.Grid) error {
	schemaCols, err := c.Columns(table)
	if err != nil {
		return err
	}
	if len(schemaCols) == 0 {
		return fmt.Errorf("%w: %s", ErrNoSuchTable, table)
	}

	writeCols := writeColumns(g.Header, schemaCols)

	tx, err := c.db.Beginx()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTxBegin, err)
	}

	if _, err := tx.Exec("DELETE FROM " + quoteIdent(table)); err != nil {
		tx.Rollback()
		return fmt.Errorf("%w: clearing %s: %v", ErrWriteFailed, table, err)
	}

	quoted := make([]string, len(writeCols))
	placeholders := make([]string, len(writeCols))
	for i, col := range writeCols {
		quoted[i] = quoteIdent(col)
		placeholders[i] = "?"
	}
	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(table), strings.Join(quoted, ", "), strings.Join(placeholders, ", "))

	stmt, err := tx.Preparex(insert)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("%w: preparing insert into %s: %v", ErrWriteFailed, table, err)
	}
	defer stmt.Close()

	for i, row := range g.Rows {
		args := make([]any, len(writeCols))
		for j := range args {
			if j < len(row) {
				args[j] = row[j]
			} else {
				// Short rows pad with empty text, matching how NULL
				// materialized on load.
				args[j] = ""
			}
		}
		if _, err := stmt.Exec(args...); err != nil {
			tx.Rollback()
			return fmt.Errorf("%w: inserting row %d into %s: %v", ErrWriteFailed, i, table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return fmt.Errorf("%w: %s: %v", ErrCommitFailed, table, err)
	}

	g.MarkClean()
	slog.Debug("replaced table", "table", table, "rows", g.RowCount(), "conn", c.id)
	return nil
}

// writeColumns decides the insert column list: the grid's own header labels
// win, with a per-position fallback to the schema's declaration order when a
// label is blank, and a synthesized placeholder when neither exists. The
// width is header-derived so a caller can submit a grid wider or narrower
// than it remembers the schema being.
func writeColumns(header, schema []string) []string {
	n := len(header)
	if n == 0 {
		n = len(schema)
	}
	cols := make([]string, n)
	for i := range cols {
		switch {
		case i < len(header) && header[i] != "":
			cols[i] = header[i]
		case i < len(schema):
			cols[i] = schema[i]
		default:
			cols[i] = fmt.Sprintf("column_%d", i+1)
		}
	}
	return cols
}
