/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package search provides the search command for zephyr.
package search

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/annieversary/zephyr/cmd/render"
	"github.com/annieversary/zephyr/config"
	zfs "github.com/annieversary/zephyr/fs"
	"github.com/annieversary/zephyr/registry"
)

// Cmd is the search cobra command.
var Cmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search shorthands by name or value",
	Long:  `Search the shorthand tables by name or expansion with optional regex support.`,
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().Bool("name", false, "Search names only")
	Cmd.Flags().Bool("value", false, "Search values only")
	Cmd.Flags().String("table", "", "Only search this table")
	Cmd.Flags().Bool("regex", false, "Query is a regex")
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json, names")
}

// Query selects table entries.
type Query struct {
	Text      string
	Pattern   *regexp.Regexp
	NameOnly  bool
	ValueOnly bool
	Table     registry.Table
}

func run(cmd *cobra.Command, args []string) error {
	nameOnly, _ := cmd.Flags().GetBool("name")
	valueOnly, _ := cmd.Flags().GetBool("value")
	table, _ := cmd.Flags().GetString("table")
	useRegex, _ := cmd.Flags().GetBool("regex")
	format, _ := cmd.Flags().GetString("format")

	q := Query{Text: args[0], NameOnly: nameOnly, ValueOnly: valueOnly}
	if useRegex {
		pattern, err := regexp.Compile(q.Text)
		if err != nil {
			return fmt.Errorf("invalid regex: %w", err)
		}
		q.Pattern = pattern
	}
	if table != "" {
		t, err := registry.ParseTable(table)
		if err != nil {
			return err
		}
		q.Table = t
	}

	cfg, err := config.Open(zfs.NewOSFileSystem(), ".")
	if err != nil {
		return err
	}
	return output(cmd.OutOrStdout(), Search(cfg.Registry(), q), format)
}

// Search returns the entries of r matching q, in table order.
func Search(r *registry.Registry, q Query) []registry.Entry {
	var tables []registry.Table
	if q.Table != "" {
		tables = append(tables, q.Table)
	}
	var matches []registry.Entry
	for _, e := range r.Entries(tables...) {
		var matched bool
		switch {
		case q.NameOnly:
			matched = matchString(e.Name, q.Text, q.Pattern)
		case q.ValueOnly:
			matched = matchString(e.Value, q.Text, q.Pattern)
		default:
			matched = matchString(e.Name, q.Text, q.Pattern) ||
				matchString(e.Value, q.Text, q.Pattern) ||
				matchString(e.Context, q.Text, q.Pattern)
		}
		if matched {
			matches = append(matches, e)
		}
	}
	return matches
}

func matchString(s, query string, pattern *regexp.Regexp) bool {
	if pattern != nil {
		return pattern.MatchString(s)
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(query))
}

func output(w io.Writer, entries []registry.Entry, format string) error {
	switch format {
	case "json":
		return render.JSON(w, entries)
	case "names":
		return render.Names(w, entries)
	case "table":
		return render.Table(w, entries)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
