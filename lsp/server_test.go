/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"go.uber.org/zap/zaptest"

	"github.com/annieversary/zephyr/registry"
)

const uri = "file:///project/index.html"

func open(t *testing.T, s *Server, text string) {
	t.Helper()
	err := s.didOpen(nil, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: "html", Text: text},
	})
	require.NoError(t, err)
}

func hoverParams(line, char protocol.UInteger) *protocol.HoverParams {
	return &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Line: line, Character: char},
		},
	}
}

func TestHover(t *testing.T) {
	s := New(registry.Default(), "test", zaptest.NewLogger(t))
	open(t, s, "<main>\n  <div class=\"flex m[1rem]sm\">hi</div>\n</main>\n")

	h, err := s.hover(nil, hoverParams(1, 22))
	require.NoError(t, err)
	require.NotNil(t, h)

	content, ok := h.Contents.(protocol.MarkupContent)
	require.True(t, ok)
	assert.Equal(t, protocol.MarkupKindMarkdown, content.Kind)
	assert.Equal(t, "```css\n@media (min-width:640px) {\n  .m\\[1rem\\]sm {\n    margin:1rem;\n  }\n}\n```", content.Value)
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 1, Character: 19},
		End:   protocol.Position{Line: 1, Character: 28},
	}, *h.Range)
}

func TestHover_NoClass(t *testing.T) {
	s := New(nil, "test", nil)
	open(t, s, "<div class=\"flex\">hello world</div>")

	tests := []struct {
		name string
		char protocol.UInteger
	}{
		{"plain word", 22},
		{"attribute name", 6},
		{"past end of line", 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := s.hover(nil, hoverParams(0, tt.char))
			require.NoError(t, err)
			assert.Nil(t, h)
		})
	}

	h, err := s.hover(nil, hoverParams(3, 0))
	require.NoError(t, err)
	assert.Nil(t, h, "line past end of document")
}

func TestHover_UnknownDocument(t *testing.T) {
	s := New(nil, "test", nil)
	h, err := s.hover(nil, hoverParams(0, 0))
	require.NoError(t, err)
	assert.Nil(t, h)
}

func TestHover_UTF16Columns(t *testing.T) {
	s := New(nil, "test", nil)
	// U+1F600 takes two UTF-16 units and four bytes.
	open(t, s, "<p title=\"\U0001F600\" class=\"w[full]\">")

	h, err := s.hover(nil, hoverParams(0, 23))
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Equal(t, protocol.UInteger(21), h.Range.Start.Character)
	assert.Equal(t, protocol.UInteger(28), h.Range.End.Character)
}

func TestDidChange(t *testing.T) {
	s := New(nil, "test", nil)
	open(t, s, "<div class=\"p[1rem]\">\n</div>")

	err := s.didChange(nil, &protocol.DidChangeTextDocumentParams{
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEvent{
				Range: &protocol.Range{
					Start: protocol.Position{Line: 0, Character: 12},
					End:   protocol.Position{Line: 0, Character: 13},
				},
				Text: "m",
			},
		},
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
		},
	})
	require.NoError(t, err)

	text, ok := s.document(uri)
	require.True(t, ok)
	assert.Equal(t, "<div class=\"m[1rem]\">\n</div>", text)

	err = s.didChange(nil, &protocol.DidChangeTextDocumentParams{
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "flex"}},
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
		},
	})
	require.NoError(t, err)
	text, _ = s.document(uri)
	assert.Equal(t, "flex", text)
}

func TestDidClose(t *testing.T) {
	s := New(nil, "test", nil)
	open(t, s, "flex")
	require.NoError(t, s.didClose(nil, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}))
	_, ok := s.document(uri)
	assert.False(t, ok)
}

func TestInitialize(t *testing.T) {
	s := New(nil, "v1.2.3", nil)
	res, err := s.initialize(nil, &protocol.InitializeParams{})
	require.NoError(t, err)

	result, ok := res.(protocol.InitializeResult)
	require.True(t, ok)
	assert.Equal(t, Name, result.ServerInfo.Name)
	assert.Equal(t, "v1.2.3", *result.ServerInfo.Version)
	assert.Equal(t, true, result.Capabilities.HoverProvider)
}

func TestTokenAt(t *testing.T) {
	tests := []struct {
		line     string
		off      int
		expected string
	}{
		{`class="a b[1px]<md c"`, 11, "b[1px]<md"},
		{`class="a"`, 7, "a"},
		{`  x  `, 0, ""},
		{`m{'a'}`, 1, "m{"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			start, end := tokenAt(tt.line, tt.off)
			assert.Equal(t, tt.expected, tt.line[start:end])
		})
	}
}
