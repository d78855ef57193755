// FILE: lixenwraith/classkit/fragment.go
package classkit

import (
	"fmt"
	"sort"
	"strings"
)

// Fragment is a flat style record mapping property names to values.
// Fragments returned by the engine are shared with its cache and must not be modified.
type Fragment map[string]any

// Clone returns a shallow copy of the fragment.
func (f Fragment) Clone() Fragment {
	out := make(Fragment, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Keys returns the property names in sorted order.
func (f Fragment) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String formats the fragment as "{a: 1, b: x}" with sorted keys.
func (f Fragment) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range f.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", k, f[k])
	}
	b.WriteByte('}')
	return b.String()
}

// MergeFragments folds fragments left to right; for each property the last fragment wins.
func MergeFragments(frags ...Fragment) Fragment {
	out := make(Fragment)
	for _, f := range frags {
		for k, v := range f {
			out[k] = v
		}
	}
	return out
}

// toFragment converts values found in theme sections into a fragment.
// Lists of records are merged with last-wins semantics.
func toFragment(v any) (Fragment, bool) {
	switch val := v.(type) {
	case Fragment:
		return val, true
	case map[string]any:
		return Fragment(val), true
	case []Fragment:
		return MergeFragments(val...), true
	case []map[string]any:
		out := make(Fragment)
		for _, m := range val {
			for k, x := range m {
				out[k] = x
			}
		}
		return out, true
	case []any:
		out := make(Fragment)
		for _, item := range val {
			f, ok := toFragment(item)
			if !ok {
				return nil, false
			}
			for k, x := range f {
				out[k] = x
			}
		}
		return out, true
	}
	return nil, false
}
