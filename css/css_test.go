/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package css_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdewolff/parse/v2"
	tcss "github.com/tdewolff/parse/v2/css"

	"github.com/annieversary/zephyr/css"
)

func TestEscapeSelector(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"m[1rem]", `m\[1rem\]`},
		{"mr[0.5rem]", `mr\[0\.5rem\]`},
		{"flex|hover", `flex\|hover`},
		{"m(my-margin)", `m\(my-margin\)`},
		{"w{full}", `w\{full\}`},
		{"m[1rem]<md", `m\[1rem\]\<md`},
		{"m[1rem]@xl", `m\[1rem\]\@xl`},
		{"a$b#c'd*e%f", `a\$b\#c\'d\*e\%f`},
		{"flex-row", "flex-row"},
		{"he🥰llo[x]", `he🥰llo\[x\]`},
		{`a\b`, `a\b`},
		{"w[\xff]", "w\\[\xff\\]"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, css.EscapeSelector(tt.input))
		})
	}
}

func TestRuleCompact(t *testing.T) {
	tests := []struct {
		name     string
		rule     css.Rule
		expected string
	}{
		{
			name:     "plain",
			rule:     css.Rule{Selector: `.m\[1rem\]`, Body: "margin:1rem"},
			expected: `.m\[1rem\]{margin:1rem}`,
		},
		{
			name:     "one condition",
			rule:     css.Rule{Selector: `.m\[1rem\]sm`, Body: "margin:1rem", Media: []string{"min-width:640px"}},
			expected: `@media(min-width:640px){.m\[1rem\]sm{margin:1rem}}`,
		},
		{
			name: "three conditions",
			rule: css.Rule{
				Selector: `.x`,
				Body:     "margin:1rem",
				Media:    []string{"min-width:1280px", "max-width:1535.9px", "prefers-reduced-motion:reduce"},
			},
			expected: `@media(min-width:1280px)and(max-width:1535.9px)and(prefers-reduced-motion:reduce){.x{margin:1rem}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.rule.String())
		})
	}
}

func TestRulePretty(t *testing.T) {
	rule := css.Rule{
		Selector: `.mx\[1rem\]sm`,
		Body:     "margin-left:1rem;margin-right:1rem",
		Media:    []string{"min-width:640px"},
	}

	expected := strings.Join([]string{
		`@media (min-width:640px) {`,
		`  .mx\[1rem\]sm {`,
		`    margin-left:1rem;`,
		`    margin-right:1rem;`,
		`  }`,
		`}`,
		``,
	}, "\n")

	assert.Equal(t, expected, rule.Format(true))
}

func TestPrettyAndCompactAreTokenEquivalent(t *testing.T) {
	rules := []css.Rule{
		{Selector: `.m\[1rem\]`, Body: "margin:1rem"},
		{Selector: `.flex-row`, Body: "display:flex;flex-direction:row"},
		{Selector: `.content\{\'a\;b\'\}`, Body: "content:'a;b'"},
		{Selector: `.bg`, Body: "background:url(a;b.png)", Media: []string{"prefers-reduced-motion:reduce"}},
		{
			Selector: `.m\[1rem\]\@xl`,
			Body:     "margin:1rem",
			Media:    []string{"min-width:1280px", "max-width:1535.9px"},
		},
	}

	for _, rule := range rules {
		t.Run(rule.Selector, func(t *testing.T) {
			compact := significantTokens(t, rule.Format(false))
			pretty := significantTokens(t, rule.Format(true))
			assert.Equal(t, compact, pretty)
		})
	}
}

// significantTokens lexes src and drops the tokens that only differ in
// layout between compact and pretty output.
func significantTokens(t *testing.T, src string) []string {
	t.Helper()
	l := tcss.NewLexer(parse.NewInputString(src))
	var out []string
	for {
		tt, data := l.Next()
		switch tt {
		case tcss.ErrorToken:
			require.ErrorIs(t, l.Err(), io.EOF)
			return out
		case tcss.WhitespaceToken, tcss.SemicolonToken:
			continue
		case tcss.FunctionToken:
			// "and(" in compact output, "and (" in pretty output
			out = append(out, string(data[:len(data)-1]), "(")
		default:
			out = append(out, string(data))
		}
	}
}

func TestSplitDeclarations(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected []string
	}{
		{"single", "margin:1rem", []string{"margin:1rem"}},
		{"two", "display:flex;flex-direction:row", []string{"display:flex", "flex-direction:row"}},
		{"trailing", "display:flex;", []string{"display:flex"}},
		{"spaces", "display: flex; color: red", []string{"display: flex", "color: red"}},
		{"quoted", `content:"a;b";color:red`, []string{`content:"a;b"`, "color:red"}},
		{"escaped quote", `content:'a\';b'`, []string{`content:'a\';b'`}},
		{"parens", "background:url(a;b.png)", []string{"background:url(a;b.png)"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, css.SplitDeclarations(tt.body))
		})
	}
}
