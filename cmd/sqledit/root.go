// Root command for the sqledit CLI.
package main

import (
	"github.com/spf13/cobra"
)

// Global flag values.
var (
	flagDB        string
	flagConfigDir string
	flagJSON      bool
)

// configDatabase and configCSVDelim hold values loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use them.
var (
	configDatabase string
	configCSVDelim string
)

var rootCmd = &cobra.Command{
	Use:   "sqledit",
	Short: "sqledit browses and edits tables of a SQLite database file",
	Long: `sqledit opens a SQLite database file, lists its tables, prints a
table as an editable grid, and writes edited grids back as one atomic
replace. The database schema is never created or altered, only table
contents.`,
	Version:      Version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDatabase = cfg.GetString(cfgKeyDatabase)
		configCSVDelim = cfg.GetString(cfgKeyCSVDelimiter)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "database file (default: database from config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(addRowCmd)
	rootCmd.AddCommand(delRowCmd)
}
