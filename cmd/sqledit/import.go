// Import command: parse a CSV file into a grid and commit it as the complete
// new content of a table. The first CSV record is the header.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ZER0ZED/SQLTableEditing/pkg/grid"
)

var importCmd = &cobra.Command{
	Use:   "import TABLE FILE",
	Short: "Replace a table's content from a CSV file",
	Long: `Import reads FILE as CSV, using the first record as the column
header, and replaces the entire content of TABLE with it in one
transaction. On any failure the table is left unchanged.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, file := args[0], args[1]

		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("open %s: %w", file, err)
		}
		defer f.Close()

		g, err := grid.ReadCSV(f, csvDelim())
		if err != nil {
			return fmt.Errorf("parse %s: %w", file, err)
		}

		e, err := openEngine()
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.ReplaceTable(table, g); err != nil {
			return err
		}
		fmt.Printf("replaced %s with %d rows\n", table, g.RowCount())
		return nil
	},
}
