// Shared helpers for sqledit subcommands: engine setup and grid output.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/ZER0ZED/SQLTableEditing/internal/engine"
	"github.com/ZER0ZED/SQLTableEditing/pkg/grid"
)

// openEngine opens the database named by --db or config.yaml and returns the
// engine. The caller defers Close.
func openEngine() (*engine.Engine, error) {
	path := flagDB
	if path == "" {
		path = configDatabase
	}
	if path == "" {
		return nil, errors.New("no database given: pass --db or set database in config.yaml")
	}

	e := engine.New()
	if err := e.Open(path); err != nil {
		return nil, err
	}
	return e, nil
}

// csvDelim returns the configured CSV field delimiter.
func csvDelim() rune {
	if configCSVDelim == "" {
		return ','
	}
	r, _ := utf8.DecodeRuneInString(configCSVDelim)
	return r
}

// gridJSON is the --json output shape for a materialized table.
type gridJSON struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// printGrid writes a grid to stdout, aligned text by default or JSON when
// --json is set.
func printGrid(g *grid.Grid) error {
	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(gridJSON{Header: g.Header, Rows: g.Rows})
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(g.Header, "\t"))
	for _, row := range g.Rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return w.Flush()
}

// printNames writes a list of names to stdout, one per line or as a JSON
// array when --json is set.
func printNames(names []string) error {
	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(names)
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
