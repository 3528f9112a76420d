// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The hive-json-schema Authors

// Package jsonschema emits a JSON Schema describing a parsed document.
// It generates schemas following JSON Schema Draft 2020-12.
package jsonschema

import (
	"strings"

	json "github.com/goccy/go-json"
	"github.com/invopop/jsonschema"

	"github.com/jabberwockkie/hive-json-schema/internal/document"
)

const draft = "https://json-schema.org/draft/2020-12/schema"

// FromValue maps a document onto a JSON Schema tree. Object properties
// keep the document's declaration order, and arrays are typed from their
// first element, matching the DDL inference rules.
func FromValue(v *document.Value) *jsonschema.Schema {
	schema := fromValue(v)
	schema.Version = draft
	return schema
}

func fromValue(v *document.Value) *jsonschema.Schema {
	switch v.Kind() {
	case document.KindNull:
		return &jsonschema.Schema{Type: "null"}
	case document.KindBool:
		return &jsonschema.Schema{Type: "boolean"}
	case document.KindNumber:
		if strings.ContainsAny(v.Text(), ".eE") {
			return &jsonschema.Schema{Type: "number"}
		}
		return &jsonschema.Schema{Type: "integer"}
	case document.KindString:
		return &jsonschema.Schema{Type: "string"}
	case document.KindObject:
		schema := &jsonschema.Schema{
			Type:       "object",
			Properties: jsonschema.NewProperties(),
		}
		for _, key := range v.Keys() {
			field, _ := v.Field(key)
			schema.Properties.Set(key, fromValue(field))
		}
		return schema
	case document.KindArray:
		schema := &jsonschema.Schema{Type: "array"}
		if elems := v.Elems(); len(elems) > 0 {
			schema.Items = fromValue(elems[0])
		}
		return schema
	}
	return &jsonschema.Schema{}
}

// Marshal renders the schema as indented JSON.
func Marshal(s *jsonschema.Schema) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
