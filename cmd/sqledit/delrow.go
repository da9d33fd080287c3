// Del-row command: remove one row of a table by its index in a fresh load.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var delRowCmd = &cobra.Command{
	Use:   "del-row TABLE INDEX",
	Short: "Delete a row from a table by index",
	Long: `Del-row loads TABLE, removes the row at the zero-based INDEX of
that load, and commits via full replace. The index addresses the freshly
loaded grid; if another writer modified the table since you last looked,
load again before deleting.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		table := args[0]
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("row index %q: %w", args[1], err)
		}

		e, err := openEngine()
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.DeleteRowAt(table, index); err != nil {
			return err
		}
		fmt.Printf("deleted row %d from %s\n", index, table)
		return nil
	},
}
