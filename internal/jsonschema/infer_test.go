// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The hive-json-schema Authors

package jsonschema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jabberwockkie/hive-json-schema/internal/document"
)

func parse(t *testing.T, src string) *document.Value {
	t.Helper()
	doc, err := document.ParseJSON(strings.NewReader(src))
	require.NoError(t, err)
	return doc
}

func TestFromValue_Scalars(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"integer", `3`, "integer"},
		{"decimal", `3.5`, "number"},
		{"exponent", `1e3`, "number"},
		{"string", `"x"`, "string"},
		{"boolean", `true`, "boolean"},
		{"null", `null`, "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := FromValue(parse(t, tt.src))
			assert.Equal(t, tt.want, schema.Type)
		})
	}
}

func TestFromValue_ObjectKeepsOrder(t *testing.T) {
	schema := FromValue(parse(t, `{"zebra": 1, "apple": "x"}`))

	require.Equal(t, "object", schema.Type)
	require.NotNil(t, schema.Properties)

	var keys []string
	for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	assert.Equal(t, []string{"zebra", "apple"}, keys)

	zebra, ok := schema.Properties.Get("zebra")
	require.True(t, ok)
	assert.Equal(t, "integer", zebra.Type)
}

func TestFromValue_ArrayItemsFromFirstElement(t *testing.T) {
	schema := FromValue(parse(t, `[{"id": 1}, {"id": "mixed"}]`))

	require.Equal(t, "array", schema.Type)
	require.NotNil(t, schema.Items)
	assert.Equal(t, "object", schema.Items.Type)

	id, ok := schema.Items.Properties.Get("id")
	require.True(t, ok)
	assert.Equal(t, "integer", id.Type)
}

func TestFromValue_EmptyArrayHasUntypedItems(t *testing.T) {
	schema := FromValue(parse(t, `[]`))

	assert.Equal(t, "array", schema.Type)
	assert.Nil(t, schema.Items)
}

func TestMarshal(t *testing.T) {
	schema := FromValue(parse(t, `{"a": 1}`))

	data, err := Marshal(schema)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, `"$schema"`)
	assert.Contains(t, text, "draft/2020-12")
	assert.Contains(t, text, `"integer"`)
}
