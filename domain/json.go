package domain

import (
	"bytes"
	"encoding/json"
	"math"
)

// DecodeObject parses body into a generic JSON object with numbers kept as
// json.Number so integer fields can be checked strictly (see IntStrict).
//
// Parameter body — raw request body bytes; empty body is an error.
//
// Returns: (map, nil) when body is a JSON object; (nil, error) on empty body,
// malformed JSON or a non-object top level.
//
// Called from the order/user/product handlers and the order placement workflow when
// parsing command bodies.
func DecodeObject(body []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// IntStrict extracts an integer field from a decoded object. The value must be a JSON
// number (not a string), must not have a fractional part (2.0 passes, 1.2 does not)
// and must fit int32.
//
// Parameters: obj — object from DecodeObject; key — field name.
//
// Returns: (value, true) for a strictly integral number; (0, false) when the field is
// missing, null, non-numeric, fractional or out of range.
func IntStrict(obj map[string]any, key string) (int, bool) {
	raw, ok := obj[key]
	if !ok || raw == nil {
		return 0, false
	}
	num, ok := raw.(json.Number)
	if !ok {
		return 0, false
	}
	f, err := num.Float64()
	if err != nil {
		return 0, false
	}
	if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// Float extracts a numeric field as float64. Returns (0, false) when missing, null or
// not a JSON number.
func Float(obj map[string]any, key string) (float64, bool) {
	raw, ok := obj[key]
	if !ok || raw == nil {
		return 0, false
	}
	num, ok := raw.(json.Number)
	if !ok {
		return 0, false
	}
	f, err := num.Float64()
	if err != nil {
		return 0, false
	}
	return f, true
}

// String extracts a string field. Returns ("", false) when missing, null or not a string.
func String(obj map[string]any, key string) (string, bool) {
	raw, ok := obj[key]
	if !ok || raw == nil {
		return "", false
	}
	s, ok := raw.(string)
	return s, ok
}
