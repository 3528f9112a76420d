// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The hive-json-schema Authors

// Package envelope re-roots an example document before schema generation.
//
// Feed documents arrive wrapped in a response envelope: a keyed root that
// carries source-record bookkeeping next to the actual response payload.
// Projection builds the object the schema is generated FROM: the keyed
// bookkeeping subtrees, plus one entry per requested type path resolved
// against the response payload.
package envelope

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jabberwockkie/hive-json-schema/internal/document"
	"github.com/jabberwockkie/hive-json-schema/internal/hive"
)

var (
	// ErrMissingEnvelope indicates the expected envelope or response
	// object is absent from the document.
	ErrMissingEnvelope = errors.New("expected envelope object not found")

	// ErrInvalidPath indicates a type path that cannot be interpreted.
	ErrInvalidPath = errors.New("invalid type path")

	// ErrPathNotFound indicates a type path that does not resolve
	// against the response payload.
	ErrPathNotFound = errors.New("type path not found in document")

	// ErrNoMatch indicates an array filter that selects no element.
	ErrNoMatch = errors.New("no array element matches filter")
)

// Defaults for the envelope key names.
const (
	DefaultRoot     = "KeyedResponse"
	DefaultResponse = "Response"
)

// Options configures one projection.
type Options struct {
	// Root is the envelope key at the top of the document.
	Root string
	// Response is the payload key inside the envelope (or at the top
	// level when Skip is set).
	Response string
	// KeyedData names the bookkeeping subtrees copied out of the
	// envelope, in output order.
	KeyedData []string
	// Skip drops the envelope: the payload is looked up at the top
	// level and no bookkeeping subtrees are carried.
	Skip bool
	// TypePaths are resolved against the payload, in order.
	TypePaths []string
	// XML records column.xpath serde entries for everything projected.
	XML bool
}

// DefaultOptions mirrors the conventional feed layout.
func DefaultOptions() Options {
	return Options{
		Root:      DefaultRoot,
		Response:  DefaultResponse,
		KeyedData: []string{"TPSSourceRecord", "ApplicationData", "keyData"},
		TypePaths: []string{DefaultResponse},
	}
}

// XMLRoot is the element the XML serde splits input records on.
func (o Options) XMLRoot() string {
	if o.Skip {
		return o.Response
	}
	return o.Root
}

// xpathPrefix anchors serde expressions at the record element.
func (o Options) xpathPrefix() string {
	if o.Skip {
		return "/"
	}
	return o.Root + "/"
}

// Project builds the object schema generation runs on, together with the
// XPath serde entries recorded along the way (XML mode only).
func Project(doc *document.Value, opts Options) (*document.Value, []hive.XPathEntry, error) {
	if doc.Kind() != document.KindObject {
		return nil, nil, fmt.Errorf("%w: document root is not an object", ErrMissingEnvelope)
	}

	var entries []hive.XPathEntry
	if opts.XML && !opts.Skip {
		// The bookkeeping subtrees always get serde entries, present in
		// this particular document or not.
		for _, name := range opts.KeyedData {
			entries = append(entries, hive.XPathEntry{
				Column: strings.ReplaceAll(name, "/", "_"),
				Path:   opts.xpathPrefix() + name,
				Tag:    hive.TagStruct,
			})
		}
	}

	projected := document.NewObject()
	var payload *document.Value

	if opts.Skip {
		resp, ok := doc.Field(opts.Response)
		if !ok || resp.Kind() != document.KindObject {
			return nil, nil, fmt.Errorf("%w: %q", ErrMissingEnvelope, opts.Response)
		}
		payload = resp
	} else {
		env, ok := doc.Field(opts.Root)
		if !ok || env.Kind() != document.KindObject {
			return nil, nil, fmt.Errorf("%w: %q", ErrMissingEnvelope, opts.Root)
		}
		for _, name := range opts.KeyedData {
			if v, ok := env.Field(name); ok {
				projected.Set(name, v)
			}
		}
		resp, ok := env.Field(opts.Response)
		if !ok || resp.Kind() != document.KindObject {
			return nil, nil, fmt.Errorf("%w: %q", ErrMissingEnvelope, opts.Root+"/"+opts.Response)
		}
		payload = resp
	}

	for _, path := range opts.TypePaths {
		switch {
		case strings.EqualFold(path, opts.Response):
			projected.Set(path, payload)

		case strings.Contains(path, "/"):
			e, err := projectPath(projected, payload, path, opts)
			if err != nil {
				return nil, nil, err
			}
			if opts.XML {
				entries = append(entries, e)
			}

		default:
			return nil, nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
		}
	}

	slog.Debug("projected document",
		"columns", projected.Len(),
		"xpath_entries", len(entries),
		"skip_envelope", opts.Skip)

	return projected, entries, nil
}

// projectPath resolves one slash path (optionally with an @key:value array
// filter), inserts the result into projected, and returns the serde entry
// describing it.
func projectPath(projected, payload *document.Value, path string, opts Options) (hive.XPathEntry, error) {
	queryPath := path
	filterKey, filterValue := "", ""
	filtered := false

	if at := strings.Index(path, "@"); at >= 0 {
		queryPath = path[:at]
		kv := strings.SplitN(path[at+1:], ":", 2)
		if len(kv) != 2 || kv[0] == "" {
			return hive.XPathEntry{}, fmt.Errorf("%w: %q: filter must be key:value", ErrInvalidPath, path)
		}
		filterKey, filterValue = kv[0], kv[1]
		filtered = true
	}

	target, err := resolve(payload, queryPath)
	if err != nil {
		return hive.XPathEntry{}, err
	}

	column := strings.ReplaceAll(queryPath, "/", "_")
	xpath := opts.xpathPrefix() + opts.Response + "/" + queryPath

	if filtered {
		match, err := filterArray(target, filterKey, filterValue, path)
		if err != nil {
			return hive.XPathEntry{}, err
		}
		target = match
		column += "_" + filterValue
		xpath += "[@" + filterKey + "='" + filterValue + "']"
	}

	projected.Set(column, target)

	return hive.XPathEntry{Column: column, Path: xpath, Tag: tagFor(target)}, nil
}

// resolve walks a slash-separated path from the payload: object fields by
// name, array elements by decimal index.
func resolve(payload *document.Value, path string) (*document.Value, error) {
	current := payload
	for _, seg := range strings.Split(strings.TrimPrefix(path, "/"), "/") {
		switch current.Kind() {
		case document.KindObject:
			next, ok := current.Field(seg)
			if !ok {
				return nil, fmt.Errorf("%w: %q has no field %q", ErrPathNotFound, path, seg)
			}
			current = next
		case document.KindArray:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= current.Len() {
				return nil, fmt.Errorf("%w: %q has no element %q", ErrPathNotFound, path, seg)
			}
			current = current.Elems()[idx]
		default:
			return nil, fmt.Errorf("%w: %q: %q is a scalar", ErrPathNotFound, path, seg)
		}
	}
	return current, nil
}

// filterArray returns the first element whose field matches the wanted
// scalar text. Elements missing the field do not match; a non-object
// element is a malformed filter target.
func filterArray(target *document.Value, key, value, path string) (*document.Value, error) {
	if target.Kind() != document.KindArray {
		return nil, fmt.Errorf("%w: %q: filter requires an array", ErrInvalidPath, path)
	}
	for _, elem := range target.Elems() {
		if elem.Kind() != document.KindObject {
			return nil, fmt.Errorf("%w: %q: array element is not an object", ErrInvalidPath, path)
		}
		field, ok := elem.Field(key)
		if ok && field.IsScalar() && field.Text() == value {
			return elem, nil
		}
	}
	return nil, fmt.Errorf("%w: %s=%q in %q", ErrNoMatch, key, value, path)
}

func tagFor(v *document.Value) hive.TypeTag {
	switch v.Kind() {
	case document.KindObject:
		return hive.TagStruct
	case document.KindArray:
		return hive.TagArray
	}
	return hive.TagPrimitive
}
