/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/annieversary/zephyr/class"
	"github.com/annieversary/zephyr/css"
	"github.com/annieversary/zephyr/registry"
)

// Explanation holds the computed parts of a single class.
type Explanation struct {
	Class     string   `json:"class"`
	Property  string   `json:"property"`
	Value     string   `json:"value,omitempty"`
	Kind      string   `json:"kind,omitempty"`
	Modifiers []string `json:"modifiers,omitempty"`
	Pseudo    string   `json:"pseudo,omitempty"`
	Selector  string   `json:"selector"`
	Body      string   `json:"body"`
	Media     []string `json:"media,omitempty"`
	CSS       string   `json:"css"`
	Colors    []Color  `json:"colors,omitempty"`
}

// Color is a color found in a declaration value.
type Color struct {
	Value string `json:"value"`
	Hex   string `json:"hex"`
	HSL   string `json:"hsl"`
}

// Explain expands s against r and records each step. Errors are the
// same ones generation would report.
func Explain(r *registry.Registry, s string) (Explanation, error) {
	c, err := class.Parse(s)
	if err != nil {
		return Explanation{}, err
	}
	rule, err := c.Rule(r)
	if err != nil {
		return Explanation{}, err
	}

	e := Explanation{
		Class:     c.Original,
		Property:  r.Property(c.Property),
		Modifiers: c.Modifiers,
		Selector:  rule.Selector,
		Body:      rule.Body,
		Media:     rule.Media,
		CSS:       rule.String(),
		Colors:    FindColors(rule.Body),
	}
	if c.HasValue {
		e.Value = c.Value
		e.Kind = c.Kind.String()
	}
	if c.HasPseudo {
		e.Pseudo = r.PseudoElement(c.Pseudo)
	}
	return e, nil
}

// FindColors returns the colors used in the values of a declaration
// body, in order.
func FindColors(body string) []Color {
	var colors []Color
	for _, decl := range css.SplitDeclarations(body) {
		_, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		for _, word := range strings.Fields(value) {
			if !colorCandidate(word) {
				continue
			}
			c, err := csscolorparser.Parse(word)
			if err != nil {
				continue
			}
			colors = append(colors, describe(word, c))
		}
	}
	return colors
}

// colorCandidate filters out bare numbers and words such as "fade" that
// the parser would otherwise read as hex digits.
func colorCandidate(word string) bool {
	return strings.HasPrefix(word, "#") ||
		strings.Contains(word, "(") ||
		registry.IsNamedColor(word)
}

func describe(value string, c csscolorparser.Color) Color {
	cf := colorful.Color{R: c.R, G: c.G, B: c.B}
	h, s, l := cf.Hsl()
	return Color{
		Value: value,
		Hex:   cf.Hex(),
		HSL:   fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", h, s*100, l*100),
	}
}

// ColorSwatch returns a 24-bit ANSI color block for the given color value.
func ColorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// Text renders explanations as labelled blocks. Swatches are drawn
// only when swatches is set.
func Text(w io.Writer, items []Explanation, swatches bool) error {
	for i, e := range items {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, e.Class)
		field(w, "property", e.Property)
		if e.Value != "" {
			field(w, "value", fmt.Sprintf("%s (%s)", e.Value, e.Kind))
		}
		if len(e.Modifiers) > 0 {
			field(w, "modifiers", strings.Join(e.Modifiers, ", "))
		}
		if e.Pseudo != "" {
			field(w, "pseudo element", e.Pseudo)
		}
		field(w, "selector", e.Selector)
		field(w, "body", e.Body)
		if len(e.Media) > 0 {
			field(w, "media", strings.Join(e.Media, " and "))
		}
		for _, c := range e.Colors {
			swatch := ""
			if swatches {
				swatch = ColorSwatch(c.Value)
			}
			field(w, "color", fmt.Sprintf("%s%s  %s  %s", swatch, c.Value, c.Hex, c.HSL))
		}
		field(w, "css", e.CSS)
	}
	return nil
}

const labelWidth = 16

func field(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %-*s%s\n", labelWidth, toTitleCase(label), value)
}

// Markdown renders explanations as a markdown table.
func Markdown(w io.Writer, items []Explanation) error {
	if len(items) == 0 {
		return nil
	}
	headers := []string{"Class", "Selector", "Body", "Media"}
	rows := make([][]string, len(items))
	for i, e := range items {
		rows[i] = []string{
			code(e.Class),
			code(e.Selector),
			code(e.Body),
			strings.Join(e.Media, " and "),
		}
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	line := func(cells []string) {
		for i, cell := range cells {
			fmt.Fprintf(w, "| %-*s ", widths[i], cell)
		}
		fmt.Fprintln(w, "|")
	}
	line(headers)
	for i := range headers {
		fmt.Fprintf(w, "|-%s-", strings.Repeat("-", widths[i]))
	}
	fmt.Fprintln(w, "|")
	for _, row := range rows {
		line(row)
	}
	return nil
}

// code wraps s in backticks. A "|" would end the table cell even inside a
// code span, so it is escaped.
func code(s string) string {
	return "`" + strings.ReplaceAll(s, "|", `\|`) + "`"
}

// JSON renders v as indented JSON.
func JSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// EntryName returns the display name of a table entry. Context values
// carry their property, e.g. "u (text-transform)".
func EntryName(e registry.Entry) string {
	if e.Context != "" {
		return e.Name + " (" + e.Context + ")"
	}
	return e.Name
}

// Table renders table entries as aligned columns.
func Table(w io.Writer, entries []registry.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	tableW, nameW := 5, 4
	for _, e := range entries {
		tableW = max(tableW, len(e.Table))
		nameW = max(nameW, len(EntryName(e)))
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%-*s  %-*s  %s\n", tableW, e.Table, nameW, EntryName(e), e.Value)
	}
	return nil
}

// Names renders just the entry names, one per line.
func Names(w io.Writer, entries []registry.Entry) error {
	for _, e := range entries {
		fmt.Fprintln(w, e.Name)
	}
	return nil
}

// toTitleCase converts a string to Title Case.
func toTitleCase(s string) string {
	caser := cases.Title(language.English)
	return caser.String(s)
}
