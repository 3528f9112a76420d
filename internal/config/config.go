// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The hive-json-schema Authors

// Package config handles the optional hiveschema project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the name of the project configuration file, looked up in
// the working directory.
const FileName = "hiveschema.yaml"

// ErrInvalid indicates the config file exists but cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// Envelope overrides the document envelope key names. Empty fields keep
// the built-in defaults.
type Envelope struct {
	Root      string   `yaml:"root,omitempty"`
	Response  string   `yaml:"response,omitempty"`
	KeyedData []string `yaml:"keyed_data,omitempty"`
}

// Config represents the hiveschema.yaml project configuration file.
type Config struct {
	Version   int      `yaml:"version"`
	TableName string   `yaml:"table_name,omitempty"`
	Envelope  Envelope `yaml:"envelope,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{Version: CurrentConfigVersion}
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDir reads the project config from dir, falling back to defaults
// when no config file exists there.
func LoadDir(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for supported values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	return nil
}
