// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The hive-json-schema Authors

package hive

import (
	"fmt"
	"strings"
)

// TypeTag classifies what an XPath serde property addresses. It decides
// how the expression is decorated when rendered.
type TypeTag int

const (
	// TagPrimitive addresses a leaf; the expression selects its text().
	TagPrimitive TypeTag = iota
	// TagStruct addresses an element subtree.
	TagStruct
	// TagArray addresses a repeated element.
	TagArray
	// TagMap is recognized but has no XPath rendering; entries carrying
	// it are dropped from the serde properties.
	TagMap
)

// XPathEntry is one column.xpath serde property for an XML-backed table.
type XPathEntry struct {
	// Column is the table column the property maps. Rendered lower-case.
	Column string
	// Path is the root-anchored element path, without decoration.
	Path string
	// Tag selects the decoration.
	Tag TypeTag
}

// String renders the serde property line, or "" for unrenderable tags.
func (e XPathEntry) String() string {
	var expr string
	switch e.Tag {
	case TagPrimitive:
		expr = e.Path + "/text()"
	case TagStruct:
		expr = e.Path
	case TagArray:
		expr = "/" + e.Path
	default:
		return ""
	}
	return fmt.Sprintf("%q=%q", "column.xpath."+strings.ToLower(e.Column), expr)
}
