package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrNotObject   = errors.New("record is not a JSON object")
	ErrMissingID   = errors.New("record has no identifier")
	errUnsupported = errors.New("unsupported JSON type")
)

// Extra holds upstream fields the service does not recognize. They survive a
// decode/encode round trip but nothing reads them.
type Extra map[string]json.RawMessage

type fields map[string]json.RawMessage

func splitFields(data []byte) (fields, error) {
	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotObject, err)
	}
	if f == nil {
		return nil, ErrNotObject
	}
	return f, nil
}

// take removes every alias from f and returns the first non-null value among them
// together with the key it was found under.
func (f fields) take(keys ...string) (string, json.RawMessage, bool) {
	var (
		foundKey string
		found    json.RawMessage
		ok       bool
	)
	for _, key := range keys {
		raw, exists := f[key]
		if !exists {
			continue
		}
		delete(f, key)
		if !ok && !isNull(raw) {
			foundKey, found, ok = key, raw, true
		}
	}
	return foundKey, found, ok
}

// text, number and flag put a recognized field holding a value of an unexpected type
// back into f, so it ends up in Extra instead of failing the whole record.
func (f fields) text(keys ...string) *string {
	key, raw, ok := f.take(keys...)
	if !ok {
		return nil
	}
	s, err := decodeText(raw)
	if err != nil {
		f[key] = raw
		return nil
	}
	return &s
}

func (f fields) number(keys ...string) *float64 {
	key, raw, ok := f.take(keys...)
	if !ok {
		return nil
	}
	n, err := decodeNumber(raw)
	if err != nil {
		f[key] = raw
		return nil
	}
	return &n
}

func (f fields) flag(keys ...string) *bool {
	key, raw, ok := f.take(keys...)
	if !ok {
		return nil
	}
	b, err := decodeBool(raw)
	if err != nil {
		f[key] = raw
		return nil
	}
	return &b
}

func (f fields) id(keys ...string) (string, error) {
	id := f.text(keys...)
	if id == nil || strings.TrimSpace(*id) == "" {
		return "", ErrMissingID
	}
	return *id, nil
}

func object[T any](f fields, key string) (T, bool) {
	var value T
	_, raw, ok := f.take(key)
	if !ok {
		return value, false
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		f[key] = raw
		return *new(T), false
	}
	return value, true
}

func (f fields) extra() Extra {
	if len(f) == 0 {
		return nil
	}
	return Extra(f)
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func decodeText(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), nil
	}
	return "", errUnsupported
}

func decodeNumber(raw json.RawMessage) (float64, error) {
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strconv.ParseFloat(strings.TrimSpace(s), 64)
	}
	return 0, errUnsupported
}

// decodeBool accepts JSON booleans, 0/1 numbers and the usual status words.
func decodeBool(raw json.RawMessage) (bool, error) {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, nil
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n != 0, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return false, errUnsupported
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "active", "enabled":
		return true, nil
	case "false", "0", "no", "inactive", "disabled":
		return false, nil
	}
	return false, errUnsupported
}

func marshalRecord(extra Extra, known map[string]any) ([]byte, error) {
	out := make(map[string]any, len(extra)+len(known))
	for key, value := range extra {
		out[key] = value
	}
	for key, value := range known {
		out[key] = value
	}
	return json.Marshal(out)
}
