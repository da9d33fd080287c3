// Schema introspection: table listing from sqlite_master and column listing
// from PRAGMA table_info. Nothing here is cached; the catalog is re-read on
// every call so the engine never argues with the file about its own schema.
package engine

import (
	"database/sql"
	"fmt"
	"strings"
)

const listTablesQuery = `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`

// quoteIdent quotes a SQL identifier for interpolation into statement text.
// Cell values are never interpolated, only identifiers, and identifiers are
// only ever sourced from the catalog or from a grid header the caller loaded.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// Tables returns the user table names in catalog order, excluding internal
// sqlite_* tables. A database with no user tables yields an empty slice,
// not an error.
func (c *Connection) Tables() ([]string, error) {
	rows, err := c.db.Query(listTablesQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: listing tables: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: scanning table name: %v", ErrQueryFailed, err)
		}
		if name != "" {
			names = append(names, name)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listing tables: %v", ErrQueryFailed, err)
	}
	return names, nil
}

// Columns returns the column names of table in schema-declaration order.
// A table absent from the catalog yields an empty list; callers treat an
// empty column list as "table not usable".
func (c *Connection) Columns(table string) ([]string, error) {
	rows, err := c.db.Query("PRAGMA table_info(" + quoteIdent(table) + ")")
	if err != nil {
		return nil, fmt.Errorf("%w: columns of %s: %v", ErrQueryFailed, table, err)
	}
	defer rows.Close()

	cols := []string{}
	for rows.Next() {
		var (
			cid     int
			name    string
			ctype   string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("%w: scanning column of %s: %v", ErrQueryFailed, table, err)
		}
		cols = append(cols, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: columns of %s: %v", ErrQueryFailed, table, err)
	}
	return cols, nil
}
