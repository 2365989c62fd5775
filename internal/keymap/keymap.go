// Package keymap translates the field casing of decoded JSON values between
// the backend's snake_case and the client's camelCase. Every resource service
// goes through it instead of renaming fields by hand, so the two conventions
// cannot drift apart per resource.
package keymap

import "github.com/iancoleman/strcase"

// CamelKeys rewrites every map key in v to lowerCamel, recursing into nested
// maps and slices. Non-container values are returned unchanged. Keys already
// in camelCase pass through untouched, so payloads where the backend mixes
// both conventions normalize to a single shape.
func CamelKeys(v any) any {
	return mapKeys(v, strcase.ToLowerCamel)
}

// SnakeKeys rewrites every map key in v to snake_case, recursing into nested
// maps and slices.
func SnakeKeys(v any) any {
	return mapKeys(v, strcase.ToSnake)
}

func mapKeys(v any, rename func(string) string) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[rename(k)] = mapKeys(inner, rename)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = mapKeys(inner, rename)
		}
		return out
	default:
		return v
	}
}
