/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for zephyr.
package validate

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/annieversary/zephyr/class"
	"github.com/annieversary/zephyr/config"
	"github.com/annieversary/zephyr/extract"
	zfs "github.com/annieversary/zephyr/fs"
	zgen "github.com/annieversary/zephyr/generate"
	"github.com/annieversary/zephyr/internal/logger"
	"github.com/annieversary/zephyr/scan"
)

// ErrValidationFailed is returned when any file or class fails to check.
var ErrValidationFailed = errors.New("validation failed")

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Check the config and every class used in a project",
	Long: `Load .config/zephyr.{yaml,yml,json,toml}, scan a file or directory and
report each class that would be skipped by generate, with the file it
appears in.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

// Problem is a file or class that failed to check. Class is empty when
// the whole file could not be read or parsed.
type Problem struct {
	Path  string
	Class string
	Err   error
}

func (p Problem) String() string {
	if p.Class == "" {
		return fmt.Sprintf("%s: %v", p.Path, p.Err)
	}
	return fmt.Sprintf("%s: %s: %v", p.Path, p.Class, p.Err)
}

// Report is the outcome of checking a project.
type Report struct {
	Files    int
	Classes  int
	Problems []Problem
}

func run(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")
	source := "."
	if len(args) > 0 {
		source = args[0]
	}

	filesystem := zfs.NewOSFileSystem()
	cfg, err := config.Open(filesystem, ".")
	if err != nil {
		return err
	}

	rep, err := Check(filesystem, cfg, source, logger.Zap())
	if err != nil {
		return err
	}
	return printReport(cmd.OutOrStdout(), cmd.ErrOrStderr(), source, rep, quiet)
}

// Check scans source the way generate would and expands every class
// against the config's tables. Problems are collected per file; only a
// missing source is an error.
func Check(filesystem zfs.FileSystem, cfg *config.Config, source string, log *zap.Logger) (Report, error) {
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

	files, err := scanner.Files(source)
	if err != nil {
		return Report{}, err
	}

	reg := cfg.Registry()
	rep := Report{Files: len(files)}
	seen := make(map[string]struct{})
	for _, path := range files {
		values, err := scanner.File(path)
		if err != nil {
			rep.Problems = append(rep.Problems, Problem{Path: path, Err: err})
			continue
		}
		for _, c := range zgen.Classes(slices.Values(values)) {
			if _, ok := seen[c]; !ok {
				seen[c] = struct{}{}
				rep.Classes++
			}
			if _, err := class.Generate(reg, c); err != nil {
				rep.Problems = append(rep.Problems, Problem{Path: path, Class: c, Err: err})
			}
		}
	}
	return rep, nil
}

func printReport(out, errOut io.Writer, source string, rep Report, quiet bool) error {
	for _, p := range rep.Problems {
		if rel, err := filepath.Rel(source, p.Path); err == nil && rel != "." {
			p.Path = rel
		}
		fmt.Fprintln(errOut, p)
	}
	if len(rep.Problems) > 0 {
		return ErrValidationFailed
	}
	if !quiet {
		fmt.Fprintf(out, "%d files, %d classes, all valid.\n", rep.Files, rep.Classes)
	}
	return nil
}
