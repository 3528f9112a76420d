// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The hive-json-schema Authors

package prompts

import "github.com/charmbracelet/huh"

// RunGenerateForm prompts for the generate inputs the flags left unset.
// Values already filled in are not asked again.
func RunGenerateForm(input, output, inputType *string) error {
	var groups []*huh.Group

	if *input == "" {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Example document").
				Placeholder("./example.json").
				Validate(fileValidator("input file")).
				Value(input),
		))
	}

	if *inputType == "" {
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[string]().
				Title("Input format").
				Options(
					huh.NewOption("JSON", "JSON"),
					huh.NewOption("XML", "XML"),
				).
				Value(inputType),
		))
	}

	if *output == "" {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Output file").
				Placeholder("./schema.hql").
				Validate(requiredValidator("output file")).
				Value(output),
		))
	}

	if len(groups) == 0 {
		return nil
	}
	return huh.NewForm(groups...).WithTheme(Theme()).Run()
}
