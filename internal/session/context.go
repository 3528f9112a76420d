// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The hive-json-schema Authors

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jabberwockkie/hive-json-schema/internal/config"
)

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration. The configuration
// file is optional; when the working directory has none, Config carries
// the defaults.
type Context struct {
	Config *config.Config
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	cfg, err := config.LoadDir(cwd)
	if err != nil {
		return nil, err
	}

	return context.WithValue(ctx, contextKey{}, &Context{Config: cfg}), nil
}

// From extracts the project Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if projCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return projCtx
	}
	return nil
}

// FromCommand extracts the project Context from a cobra.Command's context.
// Returns nil if no Context is stored.
func FromCommand(cmd *cobra.Command) *Context {
	return From(cmd.Context())
}

// RequireFromCommand extracts the project Context from a cobra.Command's
// context, returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	ctx := FromCommand(cmd)
	if ctx == nil {
		return nil, errors.New("project context not loaded")
	}
	return ctx, nil
}

// PreRunLoad is a cobra PreRunE hook that loads the project context and
// stores it in the command's context for the RunE that follows.
func PreRunLoad(cmd *cobra.Command, _ []string) error {
	ctx, err := Load(cmd.Context())
	if err != nil {
		return err
	}
	cmd.SetContext(ctx)
	return nil
}
