/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package lsp provides the lsp command for zephyr.
package lsp

import (
	"github.com/spf13/cobra"

	"github.com/annieversary/zephyr/config"
	zfs "github.com/annieversary/zephyr/fs"
	"github.com/annieversary/zephyr/internal/logger"
	"github.com/annieversary/zephyr/internal/version"
	zlsp "github.com/annieversary/zephyr/lsp"
)

// Cmd is the lsp cobra command.
var Cmd = &cobra.Command{
	Use:   "lsp",
	Short: "Run the language server over stdio",
	Long: `Run a language server on stdin and stdout. Hovering a class shows the
CSS it expands to, using the project config in the working directory.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Open(zfs.NewOSFileSystem(), ".")
	if err != nil {
		logger.Warn("ignoring config: %v", err)
		cfg = config.Default()
	}
	return zlsp.New(cfg.Registry(), version.Get(), logger.Zap()).RunStdio()
}
