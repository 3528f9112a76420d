// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The hive-json-schema Authors

package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jabberwockkie/hive-json-schema/internal/config"
)

func TestInit_WritesConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	err := runCLI(t, "init", "--table-name", "events", "--non-interactive")
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, config.CurrentConfigVersion, cfg.Version)
	assert.Equal(t, "events", cfg.TableName)
}

func TestInit_FailsWhenAlreadyInitialized(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, runCLI(t, "init", "--non-interactive"))

	err := runCLI(t, "init", "--non-interactive")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already initialized")
}

func TestVersionCmd(t *testing.T) {
	assert.NoError(t, runCLI(t, "version"))
}
