// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The hive-json-schema Authors

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jabberwockkie/hive-json-schema/internal/version"
)

func registerVersionCmd(parent *cobra.Command) {
	parent.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.Info())
		},
	})
}
