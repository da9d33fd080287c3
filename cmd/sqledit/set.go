// Set command: stage a one-cell edit and commit it via full replace.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set TABLE ROW COL VALUE",
	Short: "Set one cell of a table",
	Long: `Set loads TABLE, overwrites the cell at row ROW and column COL
(both zero-based), and commits the whole grid back in one transaction.`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		table := args[0]
		row, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("row index %q: %w", args[1], err)
		}
		col, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("column index %q: %w", args[2], err)
		}

		e, err := openEngine()
		if err != nil {
			return err
		}
		defer e.Close()

		g, err := e.LoadTable(table)
		if err != nil {
			return err
		}
		if err := g.SetCell(row, col, args[3]); err != nil {
			return fmt.Errorf("%s[%d][%d]: %w", table, row, col, err)
		}
		return e.ReplaceTable(table, g)
	},
}
