// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The hive-json-schema Authors

// Package prompts provides interactive terminal prompts for CLI commands.
package prompts

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Theme returns the shared huh theme used across all CLI forms.
func Theme() *huh.Theme {
	theme := huh.ThemeBase16()
	theme.FieldSeparator = lipgloss.NewStyle().SetString("\n").MarginBottom(1)
	theme.Form.Base = theme.Form.Base.MarginTop(1)
	theme.Group.Base = theme.Group.Base.MarginTop(1)
	theme.Focused.Title = theme.Focused.Title.Foreground(lipgloss.Color("#e8a33d"))
	theme.Focused.Description = theme.Focused.Description.Foreground(lipgloss.Color("#8a8a8a"))
	theme.Blurred.Title = theme.Blurred.Title.Foreground(lipgloss.Color("#8a8a8a"))
	return theme
}

// ResultField is a label-value pair for PrintResult.
type ResultField struct {
	Label string
	Value string
}

// PrintResult prints a styled summary with green checkmarks and aligned
// gray labels.
func PrintResult(fields []ResultField, successMsg string) {
	success := lipgloss.NewStyle().Foreground(lipgloss.Color("#2ecc71"))
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("#8a8a8a"))
	check := success.Render("✓")

	width := 0
	for _, f := range fields {
		if len(f.Label) > width {
			width = len(f.Label)
		}
	}

	fmt.Println()
	for _, f := range fields {
		fmt.Printf("%s %s %s\n", check, label.Render(fmt.Sprintf("%-*s", width+1, f.Label+":")), f.Value)
	}

	if successMsg != "" {
		fmt.Println(success.Render("\n" + successMsg))
	}
}

func requiredValidator(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func fileValidator(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		info, err := os.Stat(s)
		if err != nil {
			return fmt.Errorf("%s: %v", field, err)
		}
		if info.IsDir() {
			return fmt.Errorf("%s is a directory", field)
		}
		return nil
	}
}
