/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package lsp

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"fortio.org/safecast"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"go.uber.org/zap"
)

func (s *Server) didOpen(_ *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[params.TextDocument.URI] = params.TextDocument.Text
	return nil
}

func (s *Server) didChange(_ *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	uri := params.TextDocument.URI
	text := s.docs[uri]
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = c.Text
		case protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				text = c.Text
				continue
			}
			next, err := replaceRange(text, *c.Range, c.Text)
			if err != nil {
				s.log.Warn("dropping change", zap.String("uri", uri), zap.Error(err))
				continue
			}
			text = next
		}
	}
	s.docs[uri] = text
	return nil
}

func (s *Server) didClose(_ *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, params.TextDocument.URI)
	return nil
}

func (s *Server) document(uri protocol.DocumentUri) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.docs[uri]
	return text, ok
}

func replaceRange(text string, r protocol.Range, newText string) (string, error) {
	start, err := offset(text, r.Start)
	if err != nil {
		return "", err
	}
	end, err := offset(text, r.End)
	if err != nil {
		return "", err
	}
	if end < start {
		start, end = end, start
	}
	return text[:start] + newText + text[end:], nil
}

// offset converts a protocol position to a byte offset in text. Positions
// past the end of a line or of the text are clamped.
func offset(text string, pos protocol.Position) (int, error) {
	line, err := safecast.Conv[int](pos.Line)
	if err != nil {
		return 0, err
	}
	col, err := safecast.Conv[int](pos.Character)
	if err != nil {
		return 0, err
	}

	start := 0
	for range line {
		i := strings.IndexByte(text[start:], '\n')
		if i < 0 {
			return len(text), nil
		}
		start += i + 1
	}
	end := len(text)
	if i := strings.IndexByte(text[start:], '\n'); i >= 0 {
		end = start + i
	}
	return start + byteOffset(text[start:end], col), nil
}

// lineAt returns the given zero-based line of text without its newline.
func lineAt(text string, line int) (string, bool) {
	for range line {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			return "", false
		}
		text = text[i+1:]
	}
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSuffix(text, "\r"), true
}

// byteOffset converts a UTF-16 column to a byte offset in line.
func byteOffset(line string, col int) int {
	units := 0
	for i, r := range line {
		if units >= col {
			return i
		}
		units += utf16.RuneLen(r)
	}
	return len(line)
}

// utf16Column converts a byte offset in line to a UTF-16 column.
func utf16Column(line string, off int) int {
	units := 0
	for len(line[:off]) > 0 {
		r, size := utf8.DecodeRuneInString(line[:off])
		units += utf16.RuneLen(r)
		line, off = line[size:], off-size
	}
	return units
}
