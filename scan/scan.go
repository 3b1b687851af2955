/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package scan walks source trees and collects the class attribute values
// found in them.
package scan

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/annieversary/zephyr/extract"
	zfs "github.com/annieversary/zephyr/fs"
)

// DefaultExclude holds the patterns skipped unless Options.Exclude is set.
var DefaultExclude = []string{"**/node_modules/**", "**/.git/**"}

// Options configures a Scanner.
type Options struct {
	// Mode selects the extraction strategy for every file.
	Mode extract.Mode

	// NoRecurse limits a directory scan to its direct children.
	NoRecurse bool

	// Include lists doublestar patterns, relative to the scanned root, a
	// file must match. Empty means every file.
	Include []string

	// Exclude lists doublestar patterns of files to skip. Nil means
	// DefaultExclude.
	Exclude []string

	// Ignore lists paths that are never read, such as the generated
	// stylesheet.
	Ignore []string
}

// Scanner finds classes in files.
type Scanner struct {
	fs   zfs.FileSystem
	opts Options
	log  *zap.Logger
}

// New creates a Scanner reading through filesystem.
func New(filesystem zfs.FileSystem, opts Options, log *zap.Logger) *Scanner {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Exclude == nil {
		opts.Exclude = DefaultExclude
	}
	ignore := make([]string, len(opts.Ignore))
	for i, p := range opts.Ignore {
		ignore[i] = filepath.Clean(p)
	}
	opts.Ignore = ignore
	return &Scanner{fs: filesystem, opts: opts, log: log.Named("scan")}
}

// Files returns the files under root that would be scanned, in walk
// order. A root that is a regular file is returned as is.
func (s *Scanner) Files(root string) ([]string, error) {
	info, err := s.fs.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", root, err)
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var files []string
	err = fs.WalkDir(s.fs, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() && path != root {
				s.log.Warn("skipping unreadable directory", zap.String("path", path), zap.Error(err))
				return fs.SkipDir
			}
			return err
		}
		if d.IsDir() {
			if path != root && s.opts.NoRecurse {
				return fs.SkipDir
			}
			return nil
		}
		if s.wants(root, path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking %s: %w", root, err)
	}
	return files, nil
}

func (s *Scanner) wants(root, path string) bool {
	if slices.Contains(s.opts.Ignore, filepath.Clean(path)) {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	if matchAny(s.opts.Exclude, rel) {
		return false
	}
	return len(s.opts.Include) == 0 || matchAny(s.opts.Include, rel)
}

func matchAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// Classes returns the class attribute values found under root, file by
// file in walk order. Files that fail to read or parse are logged and
// reported in the combined error; the values from the other files are
// still returned.
func (s *Scanner) Classes(root string) ([]string, error) {
	files, err := s.Files(root)
	if err != nil {
		return nil, err
	}

	var (
		out  []string
		errs error
	)
	for _, path := range files {
		values, err := s.File(path)
		if err != nil {
			s.log.Warn("skipping file", zap.String("path", path), zap.Error(err))
			errs = multierr.Append(errs, err)
			continue
		}
		out = append(out, values...)
	}
	return out, errs
}

// File returns the class attribute values of a single file.
func (s *Scanner) File(path string) ([]string, error) {
	src, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	values, err := extract.File(path, src, s.opts.Mode)
	if err != nil {
		return nil, fmt.Errorf("error extracting classes from %s: %w", path, err)
	}
	s.log.Debug("scanned file", zap.String("path", path), zap.Int("values", len(values)))
	return values, nil
}
