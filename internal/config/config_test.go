// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The hive-json-schema Authors

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_LoadAndSave(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, FileName)

	cfg := Config{
		Version:   1,
		TableName: "events",
		Envelope: Envelope{
			Root:      "Outer",
			Response:  "Payload",
			KeyedData: []string{"audit"},
		},
	}

	err := cfg.Save(cfgPath)
	require.NoError(t, err)

	loaded, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, cfg.Version, loaded.Version)
	assert.Equal(t, cfg.TableName, loaded.TableName)
	assert.Equal(t, cfg.Envelope, loaded.Envelope)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "valid config",
			cfg:     Config{Version: 1},
			wantErr: "",
		},
		{
			name:    "unsupported version",
			cfg:     Config{Version: 99},
			wantErr: "unsupported config version",
		},
		{
			name:    "missing version",
			cfg:     Config{},
			wantErr: "unsupported config version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfig_LoadDir(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := LoadDir(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, CurrentConfigVersion, cfg.Version)
		assert.Empty(t, cfg.TableName)
	})

	t.Run("present file is loaded", func(t *testing.T) {
		dir := t.TempDir()
		cfg := Config{Version: 1, TableName: "orders"}
		require.NoError(t, cfg.Save(filepath.Join(dir, FileName)))

		loaded, err := LoadDir(dir)
		require.NoError(t, err)
		assert.Equal(t, "orders", loaded.TableName)
	})

	t.Run("broken file is rejected", func(t *testing.T) {
		dir := t.TempDir()
		err := os.WriteFile(filepath.Join(dir, FileName), []byte("version: [\n"), 0o600)
		require.NoError(t, err)

		_, err = LoadDir(dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("wrong version is rejected", func(t *testing.T) {
		dir := t.TempDir()
		cfg := Config{Version: 7}
		require.NoError(t, cfg.Save(filepath.Join(dir, FileName)))

		_, err := LoadDir(dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalid)
	})
}
