// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The hive-json-schema Authors

package prompts

import "github.com/charmbracelet/huh"

// RunInitForm runs the interactive form for the init command.
func RunInitForm(tableName *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Default table name").
				Placeholder("hive_table").
				Value(tableName),
		),
	).WithTheme(Theme()).Run()
}
