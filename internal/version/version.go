// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The hive-json-schema Authors

// Package version provides build-time version information.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// These variables are set at build time using ldflags. When they are not,
// init falls back to module build info, which covers "go install".
var (
	// Version is the semantic version (e.g., "0.1.0").
	Version = "dev"
	// Commit is the git commit SHA.
	Commit = "none"
	// Date is the build date in RFC3339 format.
	Date = "unknown"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if Commit == "none" && len(setting.Value) >= 7 {
				Commit = setting.Value[:7]
			}
		case "vcs.time":
			if Date == "unknown" {
				Date = setting.Value
			}
		}
	}
}

// Info returns formatted version information.
func Info() string {
	return fmt.Sprintf("hiveschema version %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, runtime.Version())
}

// Short returns just the version string.
func Short() string {
	return Version
}
