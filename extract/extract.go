/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package extract pulls class attribute values out of markup and script
// sources.
package extract

import (
	"cmp"
	"errors"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"unsafe"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_html "github.com/tree-sitter/tree-sitter-html/bindings/go"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
)

// ErrParse is returned when a source file cannot be parsed at all.
var ErrParse = errors.New("failed to parse source")

// classAttr matches class="..." and className="..." as well as a single
// quoted argument of a helper call, as in class="{cx('...')}".
var classAttr = regexp.MustCompile(`(?:class|className)=(?:["']\W+\s*(?:\w+)\()?["']([^'"]+)['"]`)

// Mode selects how a file is scanned.
type Mode int

const (
	// Auto picks a parser from the file extension.
	Auto Mode = iota
	// RegexOnly scans every file with the class attribute pattern.
	RegexOnly
)

var scriptExtensions = map[string]bool{
	".js":  true,
	".jsx": true,
	".mjs": true,
	".ts":  true,
	".tsx": true,
}

// File returns the class attribute values found in src. Each returned
// string may hold several space-separated classes.
func File(path string, src []byte, mode Mode) ([]string, error) {
	if mode == RegexOnly {
		return Regex(src), nil
	}
	if scriptExtensions[strings.ToLower(filepath.Ext(path))] {
		return JSX(src)
	}
	return HTML(src)
}

// Regex returns the class attribute values matched by a regular
// expression. It works on any text, including templates the HTML
// grammar cannot make sense of.
func Regex(src []byte) []string {
	var out []string
	for _, m := range classAttr.FindAllSubmatch(src, -1) {
		out = append(out, string(m[1]))
	}
	return out
}

// HTML returns the values of every class attribute in an HTML document.
func HTML(src []byte) ([]string, error) {
	var out []string
	_, err := walk(tree_sitter_html.Language(), src, func(n *tree_sitter.Node) bool {
		if n.Kind() != "attribute" {
			return true
		}
		name := childOfKind(n, "attribute_name")
		if name == nil || !strings.EqualFold(name.Utf8Text(src), "class") {
			return false
		}
		if v := htmlAttributeValue(n, src); v != "" {
			out = append(out, v)
		}
		return false
	})
	return out, err
}

func htmlAttributeValue(attr *tree_sitter.Node, src []byte) string {
	if quoted := childOfKind(attr, "quoted_attribute_value"); quoted != nil {
		if v := childOfKind(quoted, "attribute_value"); v != nil {
			return v.Utf8Text(src)
		}
		return ""
	}
	if v := childOfKind(attr, "attribute_value"); v != nil {
		return v.Utf8Text(src)
	}
	return ""
}

// JSX returns the values of class and className attributes in JavaScript
// or JSX sources. String literals directly inside an expression
// container, such as className={"a b"}, are included.
//
// The grammar reads a class attribute name as the class keyword and
// recovers with ERROR nodes, so when the tree has errors the pattern
// matches outside every recognized attribute are merged in by offset.
func JSX(src []byte) ([]string, error) {
	var (
		found []located
		spans [][2]uint
	)
	hasError, err := walk(tree_sitter_javascript.Language(), src, func(n *tree_sitter.Node) bool {
		if n.Kind() != "jsx_attribute" {
			return true
		}
		name := n.NamedChild(0)
		if name == nil {
			return false
		}
		switch name.Utf8Text(src) {
		case "class", "className":
		default:
			return false
		}
		spans = append(spans, [2]uint{n.StartByte(), n.EndByte()})
		for i := uint(1); i < n.NamedChildCount(); i++ {
			for _, v := range stringLiterals(n.NamedChild(i), src) {
				found = append(found, located{n.StartByte(), v})
			}
		}
		return false
	})
	if err != nil {
		return nil, err
	}

	if hasError {
		for _, m := range classAttr.FindAllSubmatchIndex(src, -1) {
			start := uint(m[0])
			if !within(spans, start) {
				found = append(found, located{start, string(src[m[2]:m[3]])})
			}
		}
		slices.SortStableFunc(found, func(a, b located) int {
			return cmp.Compare(a.offset, b.offset)
		})
	}

	var out []string
	for _, f := range found {
		out = append(out, f.value)
	}
	return out, nil
}

type located struct {
	offset uint
	value  string
}

func within(spans [][2]uint, off uint) bool {
	for _, s := range spans {
		if off >= s[0] && off < s[1] {
			return true
		}
	}
	return false
}

// stringLiterals returns the contents of n if it is a string, or of the
// strings directly under it if it is an expression container.
func stringLiterals(n *tree_sitter.Node, src []byte) []string {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case "string", "template_string":
		if s := unquote(n.Utf8Text(src)); s != "" {
			return []string{s}
		}
	case "jsx_expression":
		var out []string
		for i := uint(0); i < n.NamedChildCount(); i++ {
			out = append(out, stringLiterals(n.NamedChild(i), src)...)
		}
		return out
	}
	return nil
}

func unquote(s string) string {
	if len(s) >= 2 {
		switch s[0] {
		case '"', '\'', '`':
			if s[len(s)-1] == s[0] {
				return s[1 : len(s)-1]
			}
		}
	}
	return s
}

// walk parses src and visits every node depth first. Returning false from
// visit skips the node's children. It reports whether the tree contains
// syntax errors.
func walk(lang unsafe.Pointer, src []byte, visit func(*tree_sitter.Node) bool) (bool, error) {
	parser := tree_sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(tree_sitter.NewLanguage(lang)); err != nil {
		return false, err
	}

	tree := parser.Parse(src, nil)
	if tree == nil {
		return false, ErrParse
	}
	defer tree.Close()

	var rec func(n *tree_sitter.Node)
	rec = func(n *tree_sitter.Node) {
		if !visit(n) {
			return
		}
		for i := uint(0); i < n.ChildCount(); i++ {
			if child := n.Child(i); child != nil {
				rec(child)
			}
		}
	}
	root := tree.RootNode()
	rec(root)
	return root.HasError(), nil
}

func childOfKind(n *tree_sitter.Node, kind string) *tree_sitter.Node {
	for i := uint(0); i < n.NamedChildCount(); i++ {
		if c := n.NamedChild(i); c != nil && c.Kind() == kind {
			return c
		}
	}
	return nil
}
