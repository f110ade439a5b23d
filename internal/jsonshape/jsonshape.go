// Package jsonshape provides tolerant accessors over decoded JSON trees whose
// shape is not guaranteed. Every accessor returns a zero value instead of
// failing when the requested shape is absent.
package jsonshape

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Document is a decoded JSON object as returned by upstream APIs.
type Document = map[string]any

// Object returns v as a JSON object, or nil.
func Object(v any) map[string]any {
	obj, _ := v.(map[string]any)
	return obj
}

// List returns v as a JSON array, or nil.
func List(v any) []any {
	list, _ := v.([]any)
	return list
}

// Objects returns the object elements of v when v is an array, skipping non-objects.
func Objects(v any) []map[string]any {
	list := List(v)
	if len(list) == 0 {
		return nil
	}
	out := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if obj := Object(item); obj != nil {
			out = append(out, obj)
		}
	}
	return out
}

// Child returns obj[key] as an object, or nil.
func Child(obj map[string]any, key string) map[string]any {
	if obj == nil {
		return nil
	}
	return Object(obj[key])
}

// Text renders a scalar as a trimmed string. Objects, arrays and null yield "".
func Text(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		if val == math.Trunc(val) && math.Abs(val) < 1e15 {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

// String returns obj[key] rendered with Text.
func String(obj map[string]any, key string) string {
	if obj == nil {
		return ""
	}
	return Text(obj[key])
}

// FirstString returns the first non-empty value among keys, probed in order.
func FirstString(obj map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := String(obj, key); s != "" {
			return s
		}
	}
	return ""
}

// FirstPresent returns the first non-null, non-empty raw value among keys.
func FirstPresent(obj map[string]any, keys ...string) (any, bool) {
	if obj == nil {
		return nil, false
	}
	for _, key := range keys {
		v, ok := obj[key]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			continue
		}
		return v, true
	}
	return nil, false
}

// Int coerces v into an integer. Objects are probed for value/displayValue/score,
// arrays use their first element, strings are parsed as integers or floats.
func Int(v any) (int, bool) {
	switch val := v.(type) {
	case nil:
		return 0, false
	case bool:
		return 0, false
	case float64:
		return int(val), true
	case int:
		return val, true
	case int64:
		return int(val), true
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return int(n), true
		}
		if f, err := val.Float64(); err == nil {
			return int(f), true
		}
		return 0, false
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return 0, false
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f), true
		}
		return 0, false
	case map[string]any:
		for _, key := range []string{"value", "displayValue", "score"} {
			if inner, ok := val[key]; ok && inner != nil {
				return Int(inner)
			}
		}
		return 0, false
	case []any:
		if len(val) == 0 {
			return 0, false
		}
		return Int(val[0])
	default:
		return 0, false
	}
}

// Bool reports v when it is a JSON boolean; ok is false for any other shape.
func Bool(v any) (value bool, ok bool) {
	b, ok := v.(bool)
	return b, ok
}
