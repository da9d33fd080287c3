// Add-row command: append one row to a table.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addRowCmd = &cobra.Command{
	Use:   "add-row TABLE [CELL...]",
	Short: "Append a row to a table",
	Long: `Add-row appends one row with the given cell values, padded with
empty cells to the table width, and commits via full replace. With no
CELL arguments a blank row is appended.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEngine()
		if err != nil {
			return err
		}
		defer e.Close()

		table := args[0]
		if err := e.AppendRow(table, args[1:]); err != nil {
			return err
		}
		fmt.Printf("appended row to %s\n", table)
		return nil
	},
}
