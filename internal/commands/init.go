// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The hive-json-schema Authors

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jabberwockkie/hive-json-schema/internal/config"
	"github.com/jabberwockkie/hive-json-schema/internal/prompts"
)

type initOptions struct {
	tableName      string
	nonInteractive bool
}

func registerInitCmd(parent *cobra.Command) {
	parent.AddCommand(newInitCmd())
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a hiveschema.yaml project configuration",
		Long: `Write a hiveschema.yaml configuration file to the current directory.
The file can pin a default table name and override the envelope key names
so generate runs don't need to repeat them.`,
		Example: `  # Interactive mode
  hiveschema init

  # Non-interactive
  hiveschema init --table-name events --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVar(&opts.tableName, "table-name", "", "Default table name for generated schemas")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runInit(opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	cfgPath := filepath.Join(cwd, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return errors.New(config.FileName + " already exists; project already initialized")
	}

	if !opts.nonInteractive {
		if err := prompts.RunInitForm(&opts.tableName); err != nil {
			return err
		}
	}

	cfg := config.Default()
	cfg.TableName = opts.tableName
	if err := cfg.Save(cfgPath); err != nil {
		return fmt.Errorf("failed to write %s: %w", config.FileName, err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Config", Value: cfgPath},
	}, "Project initialized")
	return nil
}
