// Package settings reads the flat user option bundle that accompanies every render.
// Values arrive as strings, booleans, numbers, or lists of those when a form or
// query string repeats a key; list values use their last element.
package settings

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/preston-bernstein/cfb-display-service/internal/jsonshape"
)

// Bundle is the raw option mapping echoed back to templates.
type Bundle map[string]any

var (
	trueTokens  = map[string]struct{}{"1": {}, "true": {}, "yes": {}, "on": {}, "checked": {}}
	falseTokens = map[string]struct{}{"0": {}, "false": {}, "no": {}, "off": {}, "": {}}
)

// FromValues converts url.Values into a Bundle; repeated keys become lists.
func FromValues(values url.Values) Bundle {
	b := make(Bundle, len(values))
	for key, vals := range values {
		switch len(vals) {
		case 0:
			continue
		case 1:
			b[key] = vals[0]
		default:
			list := make([]any, len(vals))
			for i, v := range vals {
				list[i] = v
			}
			b[key] = list
		}
	}
	return b
}

// FromPairs parses "key=value" strings; a bare key is treated as "true".
func FromPairs(pairs []string) Bundle {
	values := url.Values{}
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if !found {
			value = "true"
		}
		values.Add(key, value)
	}
	return FromValues(values)
}

// Raw returns the scalar stored under key, unwrapping lists to their last element.
func (b Bundle) Raw(key string) (any, bool) {
	v, ok := b[key]
	if !ok {
		return nil, false
	}
	if list, isList := v.([]any); isList {
		if len(list) == 0 {
			return nil, true
		}
		return list[len(list)-1], true
	}
	if list, isList := v.([]string); isList {
		if len(list) == 0 {
			return nil, true
		}
		return list[len(list)-1], true
	}
	return v, true
}

// Bool applies the boolean coercion contract; absent keys yield def.
func (b Bundle) Bool(key string, def bool) bool {
	v, ok := b.Raw(key)
	if !ok {
		return def
	}
	return ToBool(v)
}

// ToBool coerces a scalar: known true/false tokens, any other non-empty string is true,
// null is false.
func ToBool(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		s := strings.ToLower(strings.TrimSpace(val))
		if _, ok := trueTokens[s]; ok {
			return true
		}
		if _, ok := falseTokens[s]; ok {
			return false
		}
		return true
	case float64:
		return val != 0
	case int:
		return val != 0
	default:
		return true
	}
}

// String returns the trimmed, lowercased option or def when empty.
func (b Bundle) String(key, def string) string {
	v, _ := b.Raw(key)
	s := strings.ToLower(jsonshape.Text(v))
	if s == "" {
		return def
	}
	return s
}

// Int returns the option as an int or def when absent or unparseable. Zero is a
// valid value; an empty string is not.
func (b Bundle) Int(key string, def int) int {
	v, _ := b.Raw(key)
	n, ok := jsonshape.Int(v)
	if !ok {
		return def
	}
	return n
}

// IntClamped returns Int bounded to [lo, hi].
func (b Bundle) IntClamped(key string, def, lo, hi int) int {
	n := b.Int(key, def)
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// Year returns a season year in [2000, 2100], or 0 when absent or out of range.
func (b Bundle) Year(key string) int {
	v, _ := b.Raw(key)
	s := jsonshape.Text(v)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 2000 || n > 2100 {
		return 0
	}
	return n
}

// OneOf returns the lowercased option when it is among allowed, else def.
func (b Bundle) OneOf(key, def string, allowed ...string) string {
	s := b.String(key, def)
	for _, a := range allowed {
		if s == a {
			return s
		}
	}
	return def
}
