/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package class parses a single utility class and expands it into a CSS
// rule.
//
// The grammar is
//
//	property[value]modifier,modifier$pseudo
//
// where the value may instead be written {literal} (copied verbatim) or
// (variable) (emitted as var(--variable)), and property|modifiers marks a
// class that takes no value.
package class

import (
	"fmt"
	"strings"

	"github.com/annieversary/zephyr/css"
	"github.com/annieversary/zephyr/media"
	"github.com/annieversary/zephyr/registry"
)

// ValueKind says how a class value is turned into CSS.
type ValueKind int

const (
	// Normal values are resolved through the registry and have '_'
	// replaced by spaces.
	Normal ValueKind = iota
	// Literal values are emitted verbatim.
	Literal
	// Variable values are emitted as var(--value).
	Variable
)

func (k ValueKind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Variable:
		return "variable"
	default:
		return "normal"
	}
}

// Class is a parsed utility class. Every string field is a substring of
// Original.
type Class struct {
	Property  string
	Value     string
	HasValue  bool
	Kind      ValueKind
	Modifiers []string
	Pseudo    string
	HasPseudo bool
	Original  string
}

// Parse splits a raw class into its parts.
func Parse(s string) (*Class, error) {
	c := &Class{Original: s}

	head := s
	if i := indexUnescaped(s, '$'); i >= 0 {
		head = s[:i]
		if pseudo := s[i+1:]; pseudo != "" {
			c.Pseudo, c.HasPseudo = pseudo, true
		}
	}

	if i := indexUnescaped(head, '|'); i >= 0 {
		c.Property = head[:i]
		c.Modifiers = splitModifiers(head[i+1:])
		return c, nil
	}

	start, end := strings.IndexByte(head, '{'), strings.IndexByte(head, '}')
	switch {
	case start >= 0 && end > start:
		c.setValue(head, start, end, Literal)
		return c, nil
	case start >= 0 || end >= 0:
		return nil, fmt.Errorf("%w in %q", ErrInvalidBraces, s)
	}

	if start, end := strings.IndexByte(head, '('), strings.IndexByte(head, ')'); start >= 0 && end > start {
		c.setValue(head, start, end, Variable)
		return c, nil
	}

	if start, end := strings.IndexByte(head, '['), strings.IndexByte(head, ']'); start >= 0 && end > start {
		c.setValue(head, start, end, Normal)
		return c, nil
	}

	c.Property = head
	return c, nil
}

func (c *Class) setValue(head string, start, end int, kind ValueKind) {
	c.Property = head[:start]
	c.Value = head[start+1 : end]
	c.HasValue = true
	c.Kind = kind
	c.Modifiers = splitModifiers(head[end+1:])
}

// indexUnescaped returns the index of the first b in s that is not
// preceded by a backslash, or -1. Only the pseudo element and no-value
// separators can be escaped; value delimiters are found as is.
func indexUnescaped(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case b:
			return i
		}
	}
	return -1
}

// splitModifiers splits a comma-separated modifier list, dropping empty
// entries.
func splitModifiers(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for m := range strings.SplitSeq(s, ",") {
		if m != "" {
			out = append(out, m)
		}
	}
	return out
}

// Selector returns the escaped CSS selector for c, including the leading
// dot. Breakpoint and motion modifiers are left out of the pseudo-class
// chain.
func (c *Class) Selector(r *registry.Registry) string {
	return c.selector(r, media.Partition(c.Modifiers))
}

func (c *Class) selector(r *registry.Registry, split media.Split) string {
	var b strings.Builder
	b.WriteString(c.Original)
	for _, m := range split.Generic {
		b.WriteByte(':')
		b.WriteString(r.Modifier(m))
	}
	if c.HasPseudo {
		b.WriteString("::")
		b.WriteString(r.PseudoElement(c.Pseudo))
	}
	return "." + css.EscapeSelector(b.String())
}

// Declaration returns the declaration body for c.
func (c *Class) Declaration(r *registry.Registry) (string, error) {
	property := r.Property(c.Property)

	if !c.HasValue {
		if body, ok := r.Declaration(property); ok {
			return body, nil
		}
		return "", fmt.Errorf("%w for %q", ErrValueMissing, property)
	}

	value := c.resolveValue(r, property)
	if special, ok := r.Special(property); ok {
		return special(value), nil
	}
	return property + ":" + value, nil
}

func (c *Class) resolveValue(r *registry.Registry, property string) string {
	switch c.Kind {
	case Literal:
		return c.Value
	case Variable:
		return "var(--" + c.Value + ")"
	}
	v := r.Value(property, c.Value)
	if strings.Contains(v, "_") {
		v = strings.ReplaceAll(v, "_", " ")
	}
	return v
}

// Rule expands c into a CSS rule, including any media conditions.
func (c *Class) Rule(r *registry.Registry) (css.Rule, error) {
	split := media.Partition(c.Modifiers)
	body, err := c.Declaration(r)
	if err != nil {
		return css.Rule{}, fmt.Errorf("%s: %w", c.Original, err)
	}
	return css.Rule{
		Selector: c.selector(r, split),
		Body:     body,
		Media:    split.Conditions(),
	}, nil
}

// Generate parses s and expands it into a CSS rule.
func Generate(r *registry.Registry, s string) (css.Rule, error) {
	c, err := Parse(s)
	if err != nil {
		return css.Rule{}, err
	}
	return c.Rule(r)
}
