// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The hive-json-schema Authors

// Package document models a parsed example document as an ordered value tree.
//
// JSON and XML inputs both reduce to the same Value union so the schema
// generator works from a single representation. Object fields keep their
// declaration order and numbers keep their source literal, because both
// leak into the generated DDL.
package document

import (
	"fmt"
	"strconv"
)

// ContentKey is the synthetic field name XML conversion gives to element
// text that sits alongside attributes or child elements. The schema
// renderer renames it to the enclosing element's name.
const ContentKey = "content"

// Kind discriminates the Value union.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindObject
	KindArray
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is a single node of a parsed document.
type Value struct {
	kind   Kind
	text   string
	keys   []string
	fields map[string]*Value
	elems  []*Value
}

// Null returns the null value.
func Null() *Value {
	return &Value{kind: KindNull}
}

// Bool returns a boolean value.
func Bool(b bool) *Value {
	return &Value{kind: KindBool, text: strconv.FormatBool(b)}
}

// Number returns a numeric value holding its source literal verbatim.
func Number(literal string) *Value {
	return &Value{kind: KindNumber, text: literal}
}

// String returns a string value.
func String(s string) *Value {
	return &Value{kind: KindString, text: s}
}

// NewObject returns an empty object. Field order follows Set calls.
func NewObject() *Value {
	return &Value{kind: KindObject, fields: make(map[string]*Value)}
}

// NewArray returns an empty array.
func NewArray() *Value {
	return &Value{kind: KindArray}
}

// Kind reports which member of the union v is. A nil value counts as null.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsScalar reports whether v is a leaf (anything but object or array).
func (v *Value) IsScalar() bool {
	k := v.Kind()
	return k != KindObject && k != KindArray
}

// Text returns the scalar text: the string content, the number literal,
// or "true"/"false" for booleans. Null, objects and arrays yield "".
func (v *Value) Text() string {
	if v == nil {
		return ""
	}
	return v.text
}

// Len returns the number of object fields or array elements.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	if v.kind == KindArray {
		return len(v.elems)
	}
	return len(v.keys)
}

// Keys returns object field names in declaration order.
func (v *Value) Keys() []string {
	if v == nil {
		return nil
	}
	return v.keys
}

// Field returns the named object field.
func (v *Value) Field(name string) (*Value, bool) {
	if v == nil {
		return nil, false
	}
	f, ok := v.fields[name]
	return f, ok
}

// Set stores a field on an object. A new name is appended to the field
// order; an existing name is replaced in place.
func (v *Value) Set(name string, val *Value) {
	if _, ok := v.fields[name]; !ok {
		v.keys = append(v.keys, name)
	}
	v.fields[name] = val
}

// Elems returns the array elements in order.
func (v *Value) Elems() []*Value {
	if v == nil {
		return nil
	}
	return v.elems
}

// Append adds an element to the end of an array.
func (v *Value) Append(val *Value) {
	v.elems = append(v.elems, val)
}
