// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The hive-json-schema Authors

// Package hive renders Hive DDL from a parsed example document: a
// CREATE EXTERNAL TABLE schema, a flattening CREATE VIEW query, and the
// XML serde column.xpath properties that accompany XML-sourced tables.
package hive

import "strings"

// reservedWords is the Hive keyword list. Column and struct field names
// that collide with it are wrapped in backticks. Built once, never mutated.
var reservedWords = newWordSet(
	"ALL", "ALTER", "AND", "ARRAY", "AS", "AUTHORIZATION", "BETWEEN",
	"BIGINT", "BINARY", "BOOLEAN", "BOTH", "BY", "CASE", "CAST", "CHAR",
	"COLUMN", "CONF", "CREATE", "CROSS", "CUBE", "CURRENT", "CURRENT_DATE",
	"CURRENT_TIMESTAMP", "CURSOR", "DATABASE", "DATE", "DECIMAL", "DELETE",
	"DESCRIBE", "DISTINCT", "DOUBLE", "DROP", "ELSE", "END", "EXCHANGE",
	"EXISTS", "EXTENDED", "EXTERNAL", "FALSE", "FETCH", "FLOAT",
	"FOLLOWING", "FOR", "FROM", "FULL", "FUNCTION", "GRANT", "GROUP",
	"GROUPING", "HAVING", "IF", "IMPORT", "IN", "INNER", "INSERT", "INT",
	"INTERSECT", "INTERVAL", "INTO", "IS", "JOIN", "LATERAL", "LEFT",
	"LESS", "LIKE", "LOCAL", "MACRO", "MAP", "MORE", "NONE", "NOT", "NULL",
	"OF", "ON", "OR", "ORDER", "OUT", "OUTER", "OVER", "PARTIALSCAN",
	"PARTITION", "PERCENT", "PRECEDING", "PRESERVE", "PROCEDURE", "RANGE",
	"READS", "REDUCE", "REGEXP", "REVOKE", "RIGHT", "RLIKE", "ROLLUP",
	"ROW", "ROWS", "SELECT", "SET", "SMALLINT", "TABLE", "TABLESAMPLE",
	"THEN", "TIMESTAMP", "TO", "TRANSFORM", "TRIGGER", "TRUE", "TRUNCATE",
	"UNBOUNDED", "UNION", "UNIQUEJOIN", "UPDATE", "USER", "USING",
	"VALUES", "VARCHAR", "WHEN", "WHERE", "WINDOW", "WITH",
)

func newWordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// IsReserved reports whether name matches a Hive keyword, ignoring case.
func IsReserved(name string) bool {
	_, ok := reservedWords[strings.ToUpper(name)]
	return ok
}
