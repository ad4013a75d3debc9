package render

import (
	"strconv"
	"strings"
)

// Map is the arbitrary JSON-shaped document data submitted by a caller.
// Every accessor tolerates missing, null, or mistyped fields and returns a
// zero value instead of failing, which is what lets templates omit blocks
// cleanly rather than erroring on partial input.
type Map map[string]any

// lookup walks a dot-separated path ("from.address") through nested objects.
func (m Map) lookup(path string) (any, bool) {
	var cur any = map[string]any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			if mm, isMap := cur.(Map); isMap {
				obj = map[string]any(mm)
			} else {
				return nil, false
			}
		}
		cur, ok = obj[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Str returns the string at path, or "" if absent or not a string.
// Numbers are rendered with their natural decimal form so callers may pass
// e.g. an invoice number as either a string or a number.
func (m Map) Str(path string) string {
	v, ok := m.lookup(path)
	if !ok || v == nil {
		return ""
	}
	return coerceString(v)
}

func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

// Float returns the number at path, or 0 if absent or not numeric.
func (m Map) Float(path string) float64 {
	v, ok := m.lookup(path)
	if !ok {
		return 0
	}
	return toFloat(v)
}

// Truthy reports whether path holds a value a template condition should act
// on: present, non-null, non-empty, non-zero.
func (m Map) Truthy(path string) bool {
	v, ok := m.lookup(path)
	if !ok {
		return false
	}
	return truthy(v)
}

// Objects returns the list of objects at path, preserving caller order.
// Non-object elements are skipped; a missing or mistyped field yields nil.
func (m Map) Objects(path string) []Map {
	v, ok := m.lookup(path)
	if !ok {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []Map
	for _, el := range list {
		if obj, ok := el.(map[string]any); ok {
			out = append(out, Map(obj))
		}
	}
	return out
}

// Strings returns the list at path coerced to strings, preserving caller
// order. Elements that have no string form are skipped.
func (m Map) Strings(path string) []string {
	v, ok := m.lookup(path)
	if !ok {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, el := range list {
		if s := coerceString(el); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// toFloat coerces JSON numbers, Go ints, and numeric strings to float64.
// Anything else is 0.
func toFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

// truthy mirrors the loose conditional semantics of the document data model:
// empty strings, zero numbers, false, null, and empty collections all read
// as absent.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case int:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	case Map:
		return len(t) > 0
	}
	return true
}
