// File: lixenwraith/classkit/helper.go
package classkit

import (
	"sort"
	"strings"
)

// flattenPatch converts a parsed document into a Patch. Top-level values that
// are not tables are dropped, as are non-string keys.
func flattenPatch(doc map[string]any) Patch {
	patch := make(Patch, len(doc))
	for section, value := range doc {
		entries, ok := value.(map[string]any)
		if !ok {
			continue
		}
		patch[section] = entries
	}
	return patch
}

// normalizeValue rewrites decoder-specific containers into map[string]any / []any
// so values from every source look the same to generators.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, x := range val {
			val[k] = normalizeValue(x)
		}
		return val
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, x := range val {
			if ks, ok := k.(string); ok {
				out[ks] = normalizeValue(x)
			}
		}
		return out
	case []map[string]any:
		out := make([]any, len(val))
		for i, x := range val {
			out[i] = normalizeValue(x)
		}
		return out
	case []any:
		for i, x := range val {
			val[i] = normalizeValue(x)
		}
		return val
	}
	return v
}

// sortedKeys returns the keys of a string-keyed map in lexical order.
func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// isValidKeySegment checks if a single theme entry name is a valid TOML bare key.
func isValidKeySegment(s string) bool {
	if len(s) == 0 {
		return false
	}
	if strings.ContainsRune(s, '.') {
		return false
	}

	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		isUnderscore := r == '_'
		isDash := r == '-'

		if !(isLetter || isDigit || isUnderscore || isDash) {
			return false
		}
	}
	return true
}
