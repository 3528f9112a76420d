// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The hive-json-schema Authors

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/jabberwockkie/hive-json-schema/internal/logging"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	logOpts := logging.DefaultOptions()
	var logCleanup func() error

	rootCmd := &cobra.Command{
		Use:   "hiveschema",
		Short: "Generate Hive DDL from an example JSON or XML document",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cleanup, err := logging.Setup(logOpts)
			if err != nil {
				return err
			}
			logCleanup = cleanup
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logCleanup != nil {
				return logCleanup()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&logOpts.Level, "log-level", logOpts.Level,
		"Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logOpts.File, "log-file", "",
		"Write logs to a rotated file instead of stderr")

	registerInitCmd(rootCmd)
	registerGenerateCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}
