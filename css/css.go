/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package css renders generated rules as CSS text.
package css

import (
	"strings"
)

// escaped is the set of characters that must be backslash-escaped to
// appear literally inside a class selector.
const escaped = `[]|(){}.#$'*<@%`

// EscapeSelector backslash-escapes every selector metacharacter in s.
// Each character is escaped exactly once. Bytes outside the escape
// set, including invalid UTF-8, are copied unchanged.
func EscapeSelector(s string) string {
	if !strings.ContainsAny(s, escaped) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(escaped, s[i]) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// Rule is a single generated CSS rule.
type Rule struct {
	// Selector is the escaped selector, including the leading dot.
	Selector string

	// Body is the declaration block content, declarations joined by ';'.
	Body string

	// Media holds media conditions without parentheses, AND-joined when rendered.
	Media []string
}

// String renders the rule in compact form.
func (r Rule) String() string {
	return r.Format(false)
}

// Format renders the rule, compact or pretty printed.
func (r Rule) Format(pretty bool) string {
	var b strings.Builder
	if pretty {
		r.writePretty(&b)
	} else {
		r.writeCompact(&b)
	}
	return b.String()
}

func (r Rule) writeCompact(b *strings.Builder) {
	if len(r.Media) > 0 {
		b.WriteString("@media")
		for i, c := range r.Media {
			if i > 0 {
				b.WriteString("and")
			}
			b.WriteByte('(')
			b.WriteString(c)
			b.WriteByte(')')
		}
		b.WriteByte('{')
	}
	b.WriteString(r.Selector)
	b.WriteByte('{')
	b.WriteString(r.Body)
	b.WriteByte('}')
	if len(r.Media) > 0 {
		b.WriteByte('}')
	}
}

const indent = "  "

func (r Rule) writePretty(b *strings.Builder) {
	depth := 0
	if len(r.Media) > 0 {
		b.WriteString("@media ")
		for i, c := range r.Media {
			if i > 0 {
				b.WriteString(" and ")
			}
			b.WriteByte('(')
			b.WriteString(c)
			b.WriteByte(')')
		}
		b.WriteString(" {\n")
		depth++
	}

	pad := strings.Repeat(indent, depth)
	b.WriteString(pad)
	b.WriteString(r.Selector)
	b.WriteString(" {\n")
	for _, decl := range SplitDeclarations(r.Body) {
		b.WriteString(pad)
		b.WriteString(indent)
		b.WriteString(decl)
		b.WriteString(";\n")
	}
	b.WriteString(pad)
	b.WriteString("}\n")

	if depth > 0 {
		b.WriteString("}\n")
	}
}

// SplitDeclarations splits a declaration body on top-level semicolons.
// Semicolons inside quotes or parentheses are kept. Empty and
// whitespace-only declarations are dropped.
func SplitDeclarations(body string) []string {
	var (
		out   []string
		depth int
		quote byte
		start int
	)
	flush := func(end int) {
		if d := strings.TrimSpace(body[start:end]); d != "" {
			out = append(out, d)
		}
	}
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '(':
			depth++
		case c == ')':
			if depth > 0 {
				depth--
			}
		case c == ';' && depth == 0:
			flush(i)
			start = i + 1
		}
	}
	flush(len(body))
	return out
}
