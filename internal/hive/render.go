// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The hive-json-schema Authors

package hive

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jabberwockkie/hive-json-schema/internal/document"
)

var (
	// ErrEmptyArray indicates an array with no elements, whose element
	// type cannot be inferred from an example document.
	ErrEmptyArray = errors.New("cannot determine type of empty array")

	// ErrUnsupportedType indicates a value outside the document model.
	ErrUnsupportedType = errors.New("unsupported value type")
)

// scalarType maps a leaf value to its Hive column type. Numbers whose
// literal carries a fraction or exponent become double, the rest int.
// Null falls back to string since an example null says nothing about
// the real type.
func scalarType(v *document.Value) string {
	switch v.Kind() {
	case document.KindString:
		return "string"
	case document.KindBool:
		return "boolean"
	case document.KindNumber:
		if strings.ContainsAny(v.Text(), ".eE") {
			return "double"
		}
		return "int"
	}
	return "string"
}

// renderType renders the full Hive type expression for a value. hint names
// the enclosing field and replaces struct fields called "content", which
// XML conversion synthesizes for element text.
func renderType(v *document.Value, hint string) (string, error) {
	switch v.Kind() {
	case document.KindObject:
		return renderStruct(v, hint)
	case document.KindArray:
		return renderArray(v, hint)
	case document.KindNull, document.KindBool, document.KindNumber, document.KindString:
		return scalarType(v), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedType, v.Kind())
}

func renderStruct(obj *document.Value, hint string) (string, error) {
	fields := make([]string, 0, obj.Len())
	for _, key := range obj.Keys() {
		val, _ := obj.Field(key)
		name := key
		if name == document.ContentKey {
			name = hint
		}
		// Nested hints carry the original key, not the renamed field.
		typ, err := renderType(val, key)
		if err != nil {
			return "", err
		}
		fields = append(fields, fieldName(name)+":"+typ)
	}
	return "struct<" + strings.Join(fields, ", ") + ">", nil
}

func renderArray(arr *document.Value, hint string) (string, error) {
	elems := arr.Elems()
	if len(elems) == 0 {
		return "", fmt.Errorf("%w: %q", ErrEmptyArray, hint)
	}
	// Element type is inferred from the first element only.
	typ, err := renderType(elems[0], hint)
	if err != nil {
		return "", err
	}
	return "array<" + typ + ">", nil
}

// fieldName prepares a struct field name: colons (from XML namespace
// prefixes) become underscores, keywords get backticks. Case is kept.
func fieldName(name string) string {
	escaped := strings.ReplaceAll(name, ":", "_")
	if IsReserved(name) {
		return "`" + escaped + "`"
	}
	return escaped
}

// columnName prepares a top-level column name: lower-cased, colons to
// underscores, keywords backticked.
func columnName(key string) string {
	name := strings.ReplaceAll(strings.ToLower(key), ":", "_")
	if IsReserved(key) {
		return "`" + name + "`"
	}
	return name
}
