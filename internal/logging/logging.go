// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The hive-json-schema Authors

// Package logging wires the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the log level and an optional rotated log file.
type Options struct {
	// Level is one of debug, info, warn, error.
	Level string
	// File receives log output instead of stderr when set. The file is
	// size-rotated.
	File string
	// MaxSizeMB is the rotation threshold.
	MaxSizeMB int
	// MaxBackups bounds how many rotated files are kept.
	MaxBackups int
}

// DefaultOptions logs info and above to stderr.
func DefaultOptions() Options {
	return Options{
		Level:      "info",
		MaxSizeMB:  20,
		MaxBackups: 3,
	}
}

// Setup installs the default slog logger. The returned cleanup closes the
// log file, if one was opened.
func Setup(opts Options) (func() error, error) {
	var writer io.Writer = os.Stderr
	cleanup := func() error { return nil }

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o750); err != nil {
			return nil, err
		}
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			LocalTime:  true,
		}
		writer = lj
		cleanup = lj.Close
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: parseLevel(opts.Level),
	})
	slog.SetDefault(slog.New(handler))

	return cleanup, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
