// Table materialization: a full unordered scan of one table into a Grid of
// text cells. Row order is whatever the storage engine returns; no ORDER BY
// is applied, so successive loads of a modified table may differ in order.
package engine

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/ZER0ZED/SQLTableEditing/pkg/grid"
)

// LoadTable reads the complete content of the named table. The grid header
// is the schema column list; every value is coerced to text, with NULL
// materializing as empty text rather than a sentinel.
func (c *Connection) LoadTable(table string) (*grid.Grid, error) {
	cols, err := c.Columns(table)
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchTable, table)
	}

	rows, err := c.db.Queryx("SELECT * FROM " + quoteIdent(table))
	if err != nil {
		return nil, fmt.Errorf("%w: scanning %s: %v", ErrQueryFailed, table, err)
	}
	defer rows.Close()

	g := grid.New(cols)
	for rows.Next() {
		vals, err := rows.SliceScan()
		if err != nil {
			return nil, fmt.Errorf("%w: scanning row of %s: %v", ErrQueryFailed, table, err)
		}
		row := make([]string, len(cols))
		for i := range row {
			if i < len(vals) {
				row[i] = asText(vals[i])
			}
		}
		g.Rows = append(g.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanning %s: %v", ErrQueryFailed, table, err)
	}

	slog.Debug("loaded table", "table", table, "rows", g.RowCount(), "conn", c.id)
	return g, nil
}

// asText coerces a scanned value to its display text. NULL becomes empty
// text by contract: a loaded grid has no way to say "null", and the replace
// engine writes empty cells back as empty text.
func asText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprint(x)
	}
}
