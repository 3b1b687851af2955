/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mcp provides the mcp command for zephyr.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/annieversary/zephyr/config"
	zfs "github.com/annieversary/zephyr/fs"
	"github.com/annieversary/zephyr/internal/logger"
	"github.com/annieversary/zephyr/internal/version"
	"github.com/annieversary/zephyr/mcpserver"
)

// Cmd is the mcp cobra command.
var Cmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol server over stdio",
	Long: `Serve the generate_css and explain_class tools on stdin and stdout,
using the project config in the working directory.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Open(zfs.NewOSFileSystem(), ".")
	if err != nil {
		logger.Warn("ignoring config: %v", err)
		cfg = config.Default()
	}
	server := mcpserver.New(cfg.Registry(), version.Get(), logger.Zap())
	return server.Run(cmd.Context(), &mcp.StdioTransport{})
}
