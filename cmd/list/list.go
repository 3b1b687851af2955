/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for zephyr.
package list

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/annieversary/zephyr/cmd/render"
	"github.com/annieversary/zephyr/config"
	zfs "github.com/annieversary/zephyr/fs"
	"github.com/annieversary/zephyr/registry"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [tables...]",
	Short: "List shorthand tables",
	Long: `List the shorthands classes can use, after the project config is applied.
Tables: ` + tableNames() + `. All tables are listed when none are given.`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json, names")
}

func tableNames() string {
	names := make([]string, len(registry.Tables))
	for i, t := range registry.Tables {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	cfg, err := config.Open(zfs.NewOSFileSystem(), ".")
	if err != nil {
		return err
	}
	return list(cmd.OutOrStdout(), cfg.Registry(), args, format)
}

func list(w io.Writer, r *registry.Registry, names []string, format string) error {
	tables := make([]registry.Table, 0, len(names))
	for _, name := range names {
		t, err := registry.ParseTable(name)
		if err != nil {
			return err
		}
		tables = append(tables, t)
	}
	return output(w, r.Entries(tables...), format)
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
