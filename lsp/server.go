/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package lsp implements a language server that previews the CSS a
// utility class expands to when hovered.
package lsp

import (
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
	"go.uber.org/zap"

	"github.com/annieversary/zephyr/registry"
)

// Name is reported to clients as the server name.
const Name = "zephyr"

// Server holds open documents and the registry classes expand against.
type Server struct {
	reg     *registry.Registry
	version string
	log     *zap.Logger
	handler protocol.Handler

	mu   sync.RWMutex
	docs map[protocol.DocumentUri]string
}

// New creates a Server. A nil registry means the defaults.
func New(reg *registry.Registry, version string, log *zap.Logger) *Server {
	if reg == nil {
		reg = registry.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		reg:     reg,
		version: version,
		log:     log.Named("lsp"),
		docs:    make(map[protocol.DocumentUri]string),
	}
	s.handler = protocol.Handler{
		Initialize:            s.initialize,
		Initialized:           s.initialized,
		Shutdown:              s.shutdown,
		SetTrace:              s.setTrace,
		TextDocumentDidOpen:   s.didOpen,
		TextDocumentDidChange: s.didChange,
		TextDocumentDidClose:  s.didClose,
		TextDocumentHover:     s.hover,
	}
	return s
}

// RunStdio serves the protocol over stdin and stdout until the client
// disconnects.
func (s *Server) RunStdio() error {
	return server.NewServer(&s.handler, Name, false).RunStdio()
}

func (s *Server) initialize(_ *glsp.Context, params *protocol.InitializeParams) (any, error) {
	caps := s.handler.CreateServerCapabilities()
	kind := protocol.TextDocumentSyncKindIncremental
	caps.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &protocol.True,
		Change:    &kind,
	}
	if params.ClientInfo != nil {
		s.log.Debug("initialize", zap.String("client", params.ClientInfo.Name))
	}
	return protocol.InitializeResult{
		Capabilities: caps,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    Name,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(_ *glsp.Context, _ *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(_ *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(_ *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}
