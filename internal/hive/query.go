// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The hive-json-schema Authors

package hive

import (
	"sort"
	"strings"

	"github.com/jabberwockkie/hive-json-schema/internal/document"
)

// Query renders the CREATE VIEW statement that flattens the table's
// columns. Object columns contribute one select line per immediate field;
// deeper nesting is left to the reader. Lines are sorted by their full
// rendered text, like the schema columns.
func (g *Generator) Query(doc *document.Value) string {
	var lines []string
	for _, key := range doc.Keys() {
		val, _ := doc.Field(key)
		if val.Kind() == document.KindObject {
			for _, nested := range val.Keys() {
				lines = append(lines, selectNested(key, nested))
			}
			continue
		}
		lines = append(lines, selectColumn(key))
	}
	sort.Strings(lines)

	var sb strings.Builder
	sb.WriteString("CREATE VIEW view_name AS SELECT\n")
	writeLines(&sb, lines)
	sb.WriteString("FROM ")
	sb.WriteString(g.TableName)
	sb.WriteString(" \n")
	return sb.String()
}

// selectColumn aliases a scalar or array column to itself, with dots
// rewritten so the alias stays a valid identifier.
func selectColumn(key string) string {
	k := strings.ToLower(key)
	return k + " AS " + strings.ReplaceAll(k, ".", "_")
}

// selectNested addresses one field of a struct column.
func selectNested(key, nested string) string {
	k := strings.ToLower(key)
	n := strings.ToLower(nested)
	return k + "." + n + " AS " + k + "_" + n
}
