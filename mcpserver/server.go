/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mcpserver exposes class generation as Model Context Protocol
// tools.
package mcpserver

import (
	"context"
	"slices"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/annieversary/zephyr/class"
	"github.com/annieversary/zephyr/generate"
	"github.com/annieversary/zephyr/registry"
)

// Name is reported to clients as the server name.
const Name = "zephyr"

// GenerateInput is the generate_css tool input.
type GenerateInput struct {
	Classes []string `json:"classes" jsonschema:"utility classes or whole class attribute values, e.g. m[1rem]sm or flex-col items-center"`
	Pretty  bool     `json:"pretty,omitempty" jsonschema:"indent the generated CSS"`
}

// GenerateOutput is the generate_css tool output.
type GenerateOutput struct {
	CSS    string   `json:"css" jsonschema:"the generated stylesheet"`
	Errors []string `json:"errors,omitempty" jsonschema:"classes that could not be expanded and why"`
}

// ExplainInput is the explain_class tool input.
type ExplainInput struct {
	Class string `json:"class" jsonschema:"a single utility class"`
}

// ExplainOutput is the explain_class tool output.
type ExplainOutput struct {
	Selector string   `json:"selector"`
	Body     string   `json:"body"`
	Media    []string `json:"media,omitempty"`
	CSS      string   `json:"css"`
}

type tools struct {
	reg *registry.Registry
	log *zap.Logger
}

// New creates an MCP server whose tools expand classes against reg. A
// nil registry means the defaults.
func New(reg *registry.Registry, version string, log *zap.Logger) *mcp.Server {
	if reg == nil {
		reg = registry.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	t := &tools{reg: reg, log: log.Named("mcp")}

	s := mcp.NewServer(&mcp.Implementation{Name: Name, Version: version}, nil)
	mcp.AddTool(s, &mcp.Tool{
		Name:        "generate_css",
		Description: "Generate a stylesheet for zephyr utility classes. Classes that fail are reported in errors and left out of the CSS.",
	}, t.generate)
	mcp.AddTool(s, &mcp.Tool{
		Name:        "explain_class",
		Description: "Show the selector, declarations and media conditions a single zephyr utility class expands to.",
	}, t.explain)
	return s
}

func (t *tools) generate(ctx context.Context, _ *mcp.CallToolRequest, in GenerateInput) (*mcp.CallToolResult, GenerateOutput, error) {
	g := generate.New(t.reg, generate.Options{Pretty: in.Pretty}, t.log)
	css, err := g.Strict(ctx, slices.Values(in.Classes))
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, GenerateOutput{}, ctxErr
	}

	out := GenerateOutput{CSS: css}
	for _, e := range multierr.Errors(err) {
		out.Errors = append(out.Errors, e.Error())
	}
	t.log.Debug("generate_css", zap.Int("classes", len(in.Classes)), zap.Int("errors", len(out.Errors)))
	return nil, out, nil
}

func (t *tools) explain(_ context.Context, _ *mcp.CallToolRequest, in ExplainInput) (*mcp.CallToolResult, ExplainOutput, error) {
	rule, err := class.Generate(t.reg, in.Class)
	if err != nil {
		return nil, ExplainOutput{}, err
	}
	return nil, ExplainOutput{
		Selector: rule.Selector,
		Body:     rule.Body,
		Media:    rule.Media,
		CSS:      rule.String(),
	}, nil
}
