/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package lsp

import (
	"fortio.org/safecast"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/annieversary/zephyr/class"
)

func (s *Server) hover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	text, ok := s.document(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	return s.hoverAt(text, params.Position)
}

// hoverAt previews the class under pos. Words that do not expand get no
// hover rather than an error.
func (s *Server) hoverAt(text string, pos protocol.Position) (*protocol.Hover, error) {
	lineNo, err := safecast.Conv[int](pos.Line)
	if err != nil {
		return nil, err
	}
	col, err := safecast.Conv[int](pos.Character)
	if err != nil {
		return nil, err
	}
	line, ok := lineAt(text, lineNo)
	if !ok {
		return nil, nil
	}

	start, end := tokenAt(line, byteOffset(line, col))
	if start == end {
		return nil, nil
	}
	rule, err := class.Generate(s.reg, line[start:end])
	if err != nil {
		return nil, nil
	}

	startCol, err := safecast.Conv[protocol.UInteger](utf16Column(line, start))
	if err != nil {
		return nil, err
	}
	endCol, err := safecast.Conv[protocol.UInteger](utf16Column(line, end))
	if err != nil {
		return nil, err
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: "```css\n" + rule.Format(true) + "```",
		},
		Range: &protocol.Range{
			Start: protocol.Position{Line: pos.Line, Character: startCol},
			End:   protocol.Position{Line: pos.Line, Character: endCol},
		},
	}, nil
}

// tokenAt returns the bounds of the class token around byte offset off.
// Tokens end at whitespace and quotes.
func tokenAt(line string, off int) (int, int) {
	start, end := off, off
	for start > 0 && !isBoundary(line[start-1]) {
		start--
	}
	for end < len(line) && !isBoundary(line[end]) {
		end++
	}
	return start, end
}

func isBoundary(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\f', '\r', '"', '\'', '`':
		return true
	}
	return false
}
