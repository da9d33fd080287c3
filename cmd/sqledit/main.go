// Package main provides the sqledit CLI, the thin presentation shell over
// the table persistence engine. Everything user-facing lives here; the
// engine itself knows nothing about commands, flags, or output formats.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
