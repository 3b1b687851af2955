/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate provides the generate command for zephyr.
package generate

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/annieversary/zephyr/config"
	"github.com/annieversary/zephyr/extract"
	zfs "github.com/annieversary/zephyr/fs"
	zgen "github.com/annieversary/zephyr/generate"
	"github.com/annieversary/zephyr/internal/logger"
	"github.com/annieversary/zephyr/scan"
	"github.com/annieversary/zephyr/watch"
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	warnColor = color.New(color.FgYellow)
)

// Cmd is the generate cobra command.
var Cmd = &cobra.Command{
	Use:   "generate [path]",
	Short: "Write a stylesheet for the classes used in a file or directory",
	Long: `Scan a file or directory for class attributes and write one CSS rule per
distinct class. Flags override .config/zephyr.{yaml,yml,json,toml}; every
flag can also be set through a ZEPHYR_ environment variable, e.g.
ZEPHYR_NO_RECURSE=true.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	registerFlags(Cmd)
}

func registerFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("output", "o", config.DefaultOutput, "Stylesheet to write")
	f.BoolP("watch", "w", false, "Regenerate whenever a source file changes")
	f.BoolP("regex", "r", false, "Find class attributes with a regular expression instead of parsing")
	f.BoolP("no-recurse", "n", false, "Scan only the top level of the directory")
	f.Bool("pretty", false, "Write indented CSS")
	f.IntP("jobs", "j", 0, "Classes expanded concurrently (0 means one per CPU)")
	f.Bool("no-defaults", false, "Start from empty shorthand tables")
	f.Bool("css-colors", false, "Register the named CSS colors as classes")
	f.StringSlice("include", nil, "Only scan files matching these glob patterns")
	f.StringSlice("exclude", nil, "Skip files matching these glob patterns")
	f.String("debounce", "", "Watch mode settle time, e.g. 500ms")
}

// Result summarizes one build.
type Result struct {
	Output  string
	Classes int
	Failed  int
	Bytes   int
}

func run(cmd *cobra.Command, args []string) error {
	source := "."
	if len(args) > 0 {
		source = args[0]
	}

	filesystem := zfs.NewOSFileSystem()
	cfg, err := config.Open(filesystem, ".")
	if err != nil {
		return err
	}

	v, err := settings(cmd, cfg)
	if err != nil {
		return err
	}
	apply(v, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.Zap()
	out := cmd.OutOrStdout()
	rebuild := func(ctx context.Context) error {
		res, err := Build(ctx, filesystem, cfg, source, log)
		if err != nil {
			return err
		}
		report(out, res)
		return nil
	}

	ctx := cmd.Context()
	if err := rebuild(ctx); err != nil {
		return err
	}
	if !v.GetBool("watch") {
		return nil
	}

	w, err := watch.New(source, watch.Options{
		Debounce:  cfg.DebounceDuration(),
		NoRecurse: cfg.NoRecurse,
		Ignore:    []string{cfg.Output},
		Exclude:   cfg.Excludes(),
	}, log)
	if err != nil {
		return err
	}
	defer w.Close()
	logger.Info("watching %s", source)
	return w.Run(ctx, rebuild)
}

// settings layers flags over environment over the config file.
func settings(cmd *cobra.Command, cfg *config.Config) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("ZEPHYR")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("output", cfg.Output)
	v.SetDefault("regex", cfg.Regex)
	v.SetDefault("no-recurse", cfg.NoRecurse)
	v.SetDefault("pretty", cfg.Pretty)
	v.SetDefault("jobs", cfg.Jobs)
	v.SetDefault("no-defaults", cfg.NoDefaults)
	v.SetDefault("css-colors", cfg.CSSColors)
	v.SetDefault("include", cfg.Include)
	v.SetDefault("exclude", cfg.Exclude)
	v.SetDefault("debounce", cfg.Debounce)

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("error binding flags: %w", err)
	}
	return v, nil
}

func apply(v *viper.Viper, cfg *config.Config) {
	cfg.Output = v.GetString("output")
	cfg.Regex = v.GetBool("regex")
	cfg.NoRecurse = v.GetBool("no-recurse")
	cfg.Pretty = v.GetBool("pretty")
	cfg.Jobs = v.GetInt("jobs")
	cfg.NoDefaults = v.GetBool("no-defaults")
	cfg.CSSColors = v.GetBool("css-colors")
	cfg.Include = v.GetStringSlice("include")
	cfg.Exclude = v.GetStringSlice("exclude")
	cfg.Debounce = v.GetString("debounce")
}

// Build scans source, expands every class it finds and writes the
// stylesheet to cfg.Output. Files and classes that fail are logged and
// counted; only a missing source, a cancelled context or a failed write
// stop the build.
func Build(ctx context.Context, filesystem zfs.FileSystem, cfg *config.Config, source string, log *zap.Logger) (Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if _, err := filesystem.Stat(source); err != nil {
		return Result{}, fmt.Errorf("error reading %s: %w", source, err)
	}

	mode := extract.Auto
	if cfg.Regex {
		mode = extract.RegexOnly
	}
	scanner := scan.New(filesystem, scan.Options{
		Mode:      mode,
		NoRecurse: cfg.NoRecurse,
		Include:   cfg.Include,
		Exclude:   cfg.Excludes(),
		Ignore:    []string{cfg.Output},
	}, log)
	values, scanErr := scanner.Classes(source)

	gen := zgen.New(cfg.Registry(), zgen.Options{Pretty: cfg.Pretty, Jobs: cfg.Jobs}, log)
	classes := zgen.Classes(slices.Values(values))
	css, err := gen.Strict(ctx, slices.Values(classes))
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Result{}, ctxErr
	}
	for _, e := range multierr.Errors(err) {
		log.Warn("skipping class", zap.Error(e))
	}

	if dir := filepath.Dir(cfg.Output); dir != "." {
		if err := filesystem.MkdirAll(dir, 0755); err != nil {
			return Result{}, fmt.Errorf("error creating %s: %w", dir, err)
		}
	}
	if err := filesystem.WriteFile(cfg.Output, []byte(css), 0644); err != nil {
		return Result{}, fmt.Errorf("error writing %s: %w", cfg.Output, err)
	}

	return Result{
		Output:  cfg.Output,
		Classes: len(classes),
		Failed:  len(multierr.Errors(err)) + len(multierr.Errors(scanErr)),
		Bytes:   len(css),
	}, nil
}

func report(w io.Writer, res Result) {
	okColor.Fprint(w, "generated ")
	fmt.Fprintf(w, "%s (%d classes, %d bytes)", res.Output, res.Classes, res.Bytes)
	if res.Failed > 0 {
		warnColor.Fprintf(w, ", %d skipped", res.Failed)
	}
	fmt.Fprintln(w)
}
