// Version command for the sqledit CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the sqledit release version.
const Version = "0.2.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the sqledit version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("sqledit", Version)
	},
}
