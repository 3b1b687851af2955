/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate turns batches of utility classes into a single CSS
// stylesheet.
package generate

import (
	"context"
	"iter"
	"runtime"
	"slices"
	"strings"

	"github.com/elliotchance/orderedmap/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/annieversary/zephyr/class"
	"github.com/annieversary/zephyr/css"
	"github.com/annieversary/zephyr/registry"
)

// Options configures a Generator.
type Options struct {
	// Pretty enables indented multi-line output.
	Pretty bool

	// Jobs bounds the number of classes expanded concurrently.
	// Zero or less means GOMAXPROCS.
	Jobs int
}

// Generator expands classes against a fixed registry.
type Generator struct {
	reg  *registry.Registry
	opts Options
	log  *zap.Logger
}

// New creates a Generator. A nil logger discards skip warnings.
func New(reg *registry.Registry, opts Options, log *zap.Logger) *Generator {
	if reg == nil {
		reg = registry.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{reg: reg, opts: opts, log: log.Named("generate")}
}

// Registry returns the registry the generator expands against.
func (g *Generator) Registry() *registry.Registry {
	return g.reg
}

// Class expands a single class, returning any error instead of skipping it.
func (g *Generator) Class(s string) (css.Rule, error) {
	return class.Generate(g.reg, s)
}

// Generate expands every class found in fragments. Classes that fail to
// expand are logged and left out.
func (g *Generator) Generate(fragments ...string) string {
	out, _ := g.GenerateSeq(context.Background(), slices.Values(fragments))
	return out
}

// GenerateSeq is Generate over a sequence, stopping early if ctx is done.
// The only error it returns is the context's.
func (g *Generator) GenerateSeq(ctx context.Context, fragments iter.Seq[string]) (string, error) {
	classes := Classes(fragments)
	results, err := g.expand(ctx, classes)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for i, res := range results {
		if res.err != nil {
			g.log.Warn("skipping class", zap.String("class", classes[i]), zap.Error(res.err))
			continue
		}
		b.WriteString(res.text)
	}
	return b.String(), nil
}

// Strict is like GenerateSeq but also returns every per-class error,
// combined. The stylesheet still holds the classes that succeeded.
func (g *Generator) Strict(ctx context.Context, fragments iter.Seq[string]) (string, error) {
	classes := Classes(fragments)
	results, err := g.expand(ctx, classes)
	if err != nil {
		return "", err
	}
	var (
		b    strings.Builder
		errs error
	)
	for _, res := range results {
		if res.err != nil {
			errs = multierr.Append(errs, res.err)
			continue
		}
		b.WriteString(res.text)
	}
	return b.String(), errs
}

type result struct {
	text string
	err  error
}

// expand generates each class concurrently. Results are indexed like
// classes, so output order never depends on scheduling.
func (g *Generator) expand(ctx context.Context, classes []string) ([]result, error) {
	results := make([]result, len(classes))
	if len(classes) == 0 {
		return results, nil
	}

	jobs := g.opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(min(jobs, len(classes)))
	for i, c := range classes {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			rule, err := class.Generate(g.reg, c)
			if err != nil {
				results[i].err = err
				return nil
			}
			results[i].text = rule.Format(g.opts.Pretty)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Classes splits fragments on ASCII whitespace and returns the distinct
// classes in order of first appearance.
func Classes(fragments iter.Seq[string]) []string {
	seen := orderedmap.NewOrderedMap[string, struct{}]()
	for fragment := range fragments {
		for _, c := range strings.FieldsFunc(fragment, isASCIISpace) {
			seen.Set(c, struct{}{})
		}
	}
	return slices.Collect(seen.Keys())
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
