// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The hive-json-schema Authors

package document

import (
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

var (
	// ErrParse indicates the input document could not be parsed.
	ErrParse = errors.New("malformed document")

	// ErrDuplicateKey indicates a JSON object declares the same key twice.
	ErrDuplicateKey = errors.New("duplicate object key")
)

// ParseJSON reads a single JSON document from r. Object key order and
// number literals are preserved exactly as written. Content after the
// top-level value is rejected.
func ParseJSON(r io.Reader) (*Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	v, err := parseValue(dec, tok)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected content after top-level value", ErrParse)
	}
	return v, nil
}

func parseValue(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		}
		return nil, fmt.Errorf("%w: unexpected %q", ErrParse, t.String())
	case string:
		return String(t), nil
	case json.Number:
		return Number(t.String()), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	}
	return nil, fmt.Errorf("%w: unexpected token %v", ErrParse, tok)
}

func parseObject(dec *json.Decoder) (*Value, error) {
	obj := NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key is not a string", ErrParse)
		}
		if _, exists := obj.Field(key); exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, key)
		}
		valTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		val, err := parseValue(dec, valTok)
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)
	}
	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return obj, nil
}

func parseArray(dec *json.Decoder) (*Value, error) {
	arr := NewArray()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		elem, err := parseValue(dec, tok)
		if err != nil {
			return nil, err
		}
		arr.Append(elem)
	}
	// closing bracket
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return arr, nil
}
