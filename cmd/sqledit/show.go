// Show command: materialize one table and print it.
package main

import (
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show TABLE",
	Short: "Print a table's content as a grid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEngine()
		if err != nil {
			return err
		}
		defer e.Close()

		g, err := e.LoadTable(args[0])
		if err != nil {
			return err
		}
		return printGrid(g)
	},
}
