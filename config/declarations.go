/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"fmt"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_css "github.com/tree-sitter/tree-sitter-css/bindings/go"
)

// CheckDeclarations reports whether body parses as the contents of a CSS
// declaration block, e.g. "display:flex;flex-direction:row".
func CheckDeclarations(body string) error {
	src := []byte("a{" + body + "}")

	parser := tree_sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(tree_sitter.NewLanguage(tree_sitter_css.Language())); err != nil {
		return err
	}
	tree := parser.Parse(src, nil)
	if tree == nil {
		return fmt.Errorf("%w: %q", ErrInvalidDeclarations, body)
	}
	defer tree.Close()

	if bad := firstError(tree.RootNode()); bad != nil {
		return fmt.Errorf("%w: %q near %q", ErrInvalidDeclarations, body, bad.Utf8Text(src))
	}
	return nil
}

func firstError(n *tree_sitter.Node) *tree_sitter.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := uint(0); i < n.ChildCount(); i++ {
		if child := n.Child(i); child != nil {
			if bad := firstError(child); bad != nil {
				return bad
			}
		}
	}
	return n
}
