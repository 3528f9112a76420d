// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The hive-json-schema Authors

package document

import (
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"
	json "github.com/goccy/go-json"
)

// ParseXML reads a single XML document from r and converts it to the same
// value tree a JSON document produces. The conversion mirrors the usual
// XML-to-JSON mapping: attributes become fields, repeated sibling elements
// collect into arrays, and element text lands under the "content" field
// when it shares the element with attributes or children. An element with
// nothing but text collapses to that text's scalar value, and an empty
// element becomes the empty string.
func ParseXML(r io.Reader) (*Value, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	root := NewObject()
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		if n.Type != xmlquery.ElementNode {
			continue
		}
		accumulate(root, elementName(n), convertElement(n))
	}
	if root.Len() == 0 {
		return nil, fmt.Errorf("%w: no root element", ErrParse)
	}
	return root, nil
}

func convertElement(n *xmlquery.Node) *Value {
	obj := NewObject()

	for _, attr := range n.Attr {
		accumulate(obj, attrName(attr), scalarFromText(attr.Value))
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case xmlquery.ElementNode:
			accumulate(obj, elementName(c), convertElement(c))
		case xmlquery.TextNode, xmlquery.CharDataNode:
			text := strings.TrimSpace(c.Data)
			if text != "" {
				accumulate(obj, ContentKey, scalarFromText(text))
			}
		}
	}

	if obj.Len() == 0 {
		return String("")
	}
	if keys := obj.Keys(); len(keys) == 1 && keys[0] == ContentKey {
		content, _ := obj.Field(ContentKey)
		return content
	}
	return obj
}

// accumulate inserts val under key, turning repeated keys into an array.
func accumulate(obj *Value, key string, val *Value) {
	existing, ok := obj.Field(key)
	if !ok {
		obj.Set(key, val)
		return
	}
	if existing.Kind() == KindArray {
		existing.Append(val)
		return
	}
	arr := NewArray()
	arr.Append(existing)
	arr.Append(val)
	obj.Set(key, arr)
}

func elementName(n *xmlquery.Node) string {
	if n.Prefix != "" {
		return n.Prefix + ":" + n.Data
	}
	return n.Data
}

func attrName(a xmlquery.Attr) string {
	if a.Name.Space != "" {
		return a.Name.Space + ":" + a.Name.Local
	}
	return a.Name.Local
}

// scalarFromText applies the XML-to-JSON scalar rules to trimmed element
// text: case-insensitive true/false/null, then a strict JSON number (so
// zip-code style literals like "01234" stay strings), else the raw text.
func scalarFromText(s string) *Value {
	switch {
	case s == "":
		return String("")
	case strings.EqualFold(s, "true"):
		return Bool(true)
	case strings.EqualFold(s, "false"):
		return Bool(false)
	case strings.EqualFold(s, "null"):
		return Null()
	}
	if c := s[0]; c == '-' || (c >= '0' && c <= '9') {
		var n json.Number
		if err := json.Unmarshal([]byte(s), &n); err == nil {
			return Number(n.String())
		}
	}
	return String(s)
}
