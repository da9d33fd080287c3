// Tables command: list the user tables of the loaded database.
package main

import (
	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the user tables in the database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEngine()
		if err != nil {
			return err
		}
		defer e.Close()

		names, err := e.ListTables()
		if err != nil {
			return err
		}
		return printNames(names)
	},
}
