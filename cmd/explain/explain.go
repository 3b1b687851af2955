/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package explain provides the explain command for zephyr.
package explain

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/annieversary/zephyr/cmd/render"
	"github.com/annieversary/zephyr/config"
	zfs "github.com/annieversary/zephyr/fs"
	"github.com/annieversary/zephyr/registry"
)

// Cmd is the explain cobra command.
var Cmd = &cobra.Command{
	Use:   "explain <class>...",
	Short: "Show how classes expand into CSS",
	Long: `Parse each class and print its property, value, modifiers, selector,
declarations and media conditions. Shorthand tables come from the project
config when one exists. Exits non-zero if any class fails to expand.`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format (text, markdown, json)")
}

func run(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("error reading format flag: %w", err)
	}

	cfg, err := config.Open(zfs.NewOSFileSystem(), ".")
	if err != nil {
		return err
	}

	swatches := !color.NoColor && cmd.OutOrStdout() == os.Stdout
	return explain(cmd.OutOrStdout(), cfg.Registry(), args, format, swatches)
}

func explain(w io.Writer, r *registry.Registry, classes []string, format string, swatches bool) error {
	var (
		items []render.Explanation
		errs  error
	)
	for _, c := range classes {
		e, err := render.Explain(r, c)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		items = append(items, e)
	}

	var err error
	switch format {
	case "json":
		err = render.JSON(w, items)
	case "markdown", "md":
		err = render.Markdown(w, items)
	case "text":
		err = render.Text(w, items, swatches)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return multierr.Append(err, errs)
}
