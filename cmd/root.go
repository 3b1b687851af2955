/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for zephyr.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/annieversary/zephyr/cmd/explain"
	"github.com/annieversary/zephyr/cmd/generate"
	"github.com/annieversary/zephyr/cmd/list"
	"github.com/annieversary/zephyr/cmd/lsp"
	"github.com/annieversary/zephyr/cmd/mcp"
	"github.com/annieversary/zephyr/cmd/search"
	"github.com/annieversary/zephyr/cmd/validate"
	"github.com/annieversary/zephyr/cmd/version"
	"github.com/annieversary/zephyr/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "zephyr",
	Short: "Generate CSS from utility classes",
	Long: `zephyr reads the classes used in your markup, such as m[1rem]sm or
flex-col|hover, and writes a stylesheet with one rule per class.`,
	SilenceUsage: true,
}

// Execute runs the root command. Interrupts cancel the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug messages")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(explain.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(search.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(lsp.Cmd)
	rootCmd.AddCommand(mcp.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

func initConfig() {
	viper.SetEnvPrefix("ZEPHYR")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	logger.SetVerbose(viper.GetBool("verbose"))
}
