// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The hive-json-schema Authors

package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jabberwockkie/hive-json-schema/internal/config"
	"github.com/jabberwockkie/hive-json-schema/internal/document"
	"github.com/jabberwockkie/hive-json-schema/internal/envelope"
	"github.com/jabberwockkie/hive-json-schema/internal/hive"
	"github.com/jabberwockkie/hive-json-schema/internal/jsonschema"
	"github.com/jabberwockkie/hive-json-schema/internal/prompts"
	"github.com/jabberwockkie/hive-json-schema/internal/session"
)

const defaultTableName = "hive_table"

type generateOptions struct {
	input          string
	output         string
	inputType      string
	tableName      string
	typePaths      string
	skipEnvelope   bool
	schemaOut      string
	nonInteractive bool
}

func registerGenerateCmd(parent *cobra.Command) {
	parent.AddCommand(newGenerateCmd())
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate table DDL and a flattening view from an example document",
		Long: `Generate a CREATE EXTERNAL TABLE statement and a flattening CREATE VIEW
query from a single example JSON or XML document.

The document is expected to arrive in the conventional keyed response
envelope; pass --skip-keyed-response for documents without it. Type paths
pick which parts of the response payload become top-level columns.`,
		Example: `  # Interactive mode
  hiveschema generate

  # JSON document
  hiveschema generate --input example.json --output schema.hql --table-name events

  # XML feed, typing one array element independently
  hiveschema generate -i feed.xml -o schema.hql --input-type XML \
    --type-paths "Response,Records/Record@type:master"

  # Document without the keyed envelope
  hiveschema generate -i plain.json -o schema.hql --skip-keyed-response

  # Also emit a JSON Schema describing the projected document
  hiveschema generate -i example.json -o schema.hql --json-schema schema.json`,
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runGenerate(ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Example document to build the schema from")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "File the generated DDL is written to")
	cmd.Flags().StringVar(&opts.inputType, "input-type", "JSON", "Input document format (JSON or XML)")
	cmd.Flags().StringVar(&opts.tableName, "table-name", "", "Table name for the generated schema (default \"hive_table\")")
	cmd.Flags().StringVar(&opts.typePaths, "type-paths", "Response", "Comma-separated paths typed as top-level columns")
	cmd.Flags().BoolVar(&opts.skipEnvelope, "skip-keyed-response", false, "Document has no keyed response envelope")
	cmd.Flags().StringVar(&opts.schemaOut, "json-schema", "", "Also write a JSON Schema of the projected document to this file")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --input and --output)")

	return cmd
}

func runGenerate(ctx *session.Context, opts *generateOptions) error {
	cfg := ctx.Config

	if opts.nonInteractive {
		if opts.input == "" || opts.output == "" {
			return errors.New("non-interactive mode requires --input and --output")
		}
	} else {
		if err := prompts.RunGenerateForm(&opts.input, &opts.output, &opts.inputType); err != nil {
			return err
		}
	}

	serde, err := parseInputType(opts.inputType)
	if err != nil {
		return err
	}

	tableName := opts.tableName
	if tableName == "" {
		tableName = cfg.TableName
	}
	if tableName == "" {
		tableName = defaultTableName
	}

	doc, err := readDocument(opts.input, serde)
	if err != nil {
		return err
	}

	envOpts := envelopeOptions(cfg, opts, serde == hive.SerdeXML)
	projected, entries, err := envelope.Project(doc, envOpts)
	if err != nil {
		return err
	}

	gen := &hive.Generator{
		TableName: tableName,
		Serde:     serde,
		XMLRoot:   envOpts.XMLRoot(),
		XPaths:    entries,
	}

	schema, err := gen.Schema(projected)
	if err != nil {
		return err
	}
	ddl := schema + "\n" + gen.Query(projected)
	slog.Debug("rendered DDL", "table", tableName, "bytes", len(ddl))

	// Echo first, write after: a rendering failure never leaves a
	// partial output file behind.
	fmt.Println(ddl)

	if err := os.WriteFile(opts.output, []byte(ddl), 0o600); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if opts.schemaOut != "" {
		data, err := jsonschema.Marshal(jsonschema.FromValue(projected))
		if err != nil {
			return fmt.Errorf("failed to render JSON Schema: %w", err)
		}
		if err := os.WriteFile(opts.schemaOut, data, 0o600); err != nil {
			return fmt.Errorf("failed to write JSON Schema: %w", err)
		}
	}

	fields := []prompts.ResultField{
		{Label: "Table", Value: tableName},
		{Label: "Output", Value: opts.output},
	}
	if opts.schemaOut != "" {
		fields = append(fields, prompts.ResultField{Label: "JSON Schema", Value: opts.schemaOut})
	}
	prompts.PrintResult(fields, "Schema generated")
	return nil
}

func readDocument(path string, serde hive.Serde) (*document.Value, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer func() { _ = f.Close() }()

	if serde == hive.SerdeXML {
		return document.ParseXML(f)
	}
	return document.ParseJSON(f)
}

func parseInputType(s string) (hive.Serde, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "JSON":
		return hive.SerdeJSON, nil
	case "XML":
		return hive.SerdeXML, nil
	}
	return 0, fmt.Errorf("unsupported input type %q (expected JSON or XML)", s)
}

func envelopeOptions(cfg *config.Config, opts *generateOptions, xml bool) envelope.Options {
	envOpts := envelope.DefaultOptions()
	if cfg.Envelope.Root != "" {
		envOpts.Root = cfg.Envelope.Root
	}
	if cfg.Envelope.Response != "" {
		envOpts.Response = cfg.Envelope.Response
	}
	if len(cfg.Envelope.KeyedData) > 0 {
		envOpts.KeyedData = cfg.Envelope.KeyedData
	}
	envOpts.Skip = opts.skipEnvelope
	envOpts.XML = xml

	var paths []string
	for _, p := range strings.Split(opts.typePaths, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		paths = append(paths, p)
	}
	envOpts.TypePaths = paths

	return envOpts
}
