/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package watch reruns a callback when files under a source tree change.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long a burst of events must settle before the
// callback runs.
const DefaultDebounce = 3 * time.Second

// Options configures a Watcher.
type Options struct {
	// Debounce overrides DefaultDebounce when positive.
	Debounce time.Duration

	// NoRecurse watches only the root directory itself.
	NoRecurse bool

	// Ignore lists files whose events never trigger the callback, such as
	// the stylesheet the callback writes.
	Ignore []string

	// Exclude lists doublestar patterns, relative to the root, of files
	// whose events are dropped. Directories matched by a pattern ending in
	// "/**" are not watched at all.
	Exclude []string
}

// Watcher watches a file or directory tree.
type Watcher struct {
	w      *fsnotify.Watcher
	root   string
	opts   Options
	ignore []string
	log    *zap.Logger
}

// New starts watching root. Close must be called to release the
// underlying watches.
func New(root string, opts Options, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error creating watcher: %w", err)
	}
	w := &Watcher{w: fw, root: root, opts: opts, log: log.Named("watch")}
	if abs, err := filepath.Abs(root); err == nil {
		w.root = abs
	}
	for _, p := range opts.Ignore {
		if abs, err := filepath.Abs(p); err == nil {
			w.ignore = append(w.ignore, abs)
		}
	}

	if err := w.addTree(root); err != nil {
		fw.Close()
		return nil, err
	}
	return w, nil
}

func (w *Watcher) addTree(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("error watching %s: %w", root, err)
	}
	if !info.IsDir() || w.opts.NoRecurse {
		return w.w.Add(root)
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && w.excludedDir(path) {
			return filepath.SkipDir
		}
		if err := w.w.Add(path); err != nil {
			return fmt.Errorf("error watching %s: %w", path, err)
		}
		return nil
	})
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.w.Close()
}

// Run calls onChange after each settled burst of relevant events until
// ctx is done. Errors from onChange are logged, not returned.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context) error) error {
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.w.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			w.log.Debug("change", zap.String("path", ev.Name), zap.Stringer("op", ev.Op))
			if ev.Has(fsnotify.Create) && !w.opts.NoRecurse {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() && !w.excludedDir(ev.Name) {
					if err := w.addTree(ev.Name); err != nil {
						w.log.Warn("cannot watch new directory", zap.String("path", ev.Name), zap.Error(err))
					}
				}
			}
			if timer == nil {
				timer = time.NewTimer(w.opts.Debounce)
			} else {
				timer.Reset(w.opts.Debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if err := onChange(ctx); err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				w.log.Warn("rebuild failed", zap.Error(err))
			}

		case err, ok := <-w.w.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ev.Has(fsnotify.Chmod) && !ev.Has(fsnotify.Write) {
		return false
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return true
	}
	if slices.Contains(w.ignore, abs) {
		return false
	}
	rel, ok := w.rel(abs)
	return !ok || !matchAny(w.opts.Exclude, rel)
}

// excludedDir reports whether every file under dir is excluded.
func (w *Watcher) excludedDir(dir string) bool {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	rel, ok := w.rel(abs)
	if !ok {
		return false
	}
	for _, p := range w.opts.Exclude {
		prefix, found := strings.CutSuffix(p, "/**")
		if !found {
			continue
		}
		if m, _ := doublestar.Match(prefix, rel); m {
			return true
		}
	}
	return false
}

func (w *Watcher) rel(abs string) (string, bool) {
	rel, err := filepath.Rel(w.root, abs)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

func matchAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		if m, _ := doublestar.Match(p, rel); m {
			return true
		}
	}
	return false
}
