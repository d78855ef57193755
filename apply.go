// FILE: lixenwraith/classkit/apply.go
package classkit

import (
	"strings"
)

// Apply normalizes inputs into an ordered fragment list.
//
// Accepted inputs:
//   - string: resolved as a class key
//   - Fragment, map[string]any: passed through
//   - []Fragment, []map[string]any, []string, []any: flattened one level
//   - nil, "", false and empty fragments: dropped
//
// Order is preserved. Consumers merging the list must let later fragments
// override earlier ones property by property (see MergeFragments).
func (e *Engine) Apply(inputs ...any) []Fragment {
	out := make([]Fragment, 0, len(inputs))
	for _, in := range inputs {
		out = e.appendInput(out, in, true)
	}
	return out
}

// appendInput appends the fragments of a single input. Slices are expanded
// only when flatten is set, which limits flattening to one level.
func (e *Engine) appendInput(out []Fragment, in any, flatten bool) []Fragment {
	switch v := in.(type) {
	case nil:
	case string:
		if v == "" {
			break
		}
		if f := e.Resolve(v); len(f) > 0 {
			out = append(out, f)
		}
	case Fragment:
		if len(v) > 0 {
			out = append(out, v)
		}
	case map[string]any:
		if len(v) > 0 {
			out = append(out, Fragment(v))
		}
	case []Fragment:
		if flatten {
			for _, f := range v {
				out = e.appendInput(out, f, false)
			}
		}
	case []map[string]any:
		if flatten {
			for _, f := range v {
				out = e.appendInput(out, f, false)
			}
		}
	case []string:
		if flatten {
			for _, s := range v {
				out = e.appendInput(out, s, false)
			}
		}
	case []any:
		if flatten {
			for _, item := range v {
				out = e.appendInput(out, item, false)
			}
		}
	}
	return out
}

// ClassNames combines class tokens, conditional class maps and literal
// fragments, then delegates to Apply: the class tokens come first, in the
// order given, followed by the merged literal fragment.
//
// Accepted params:
//   - string: one or more space-separated class tokens
//   - map[string]bool: each key whose value is true becomes a token,
//     in lexical order since maps carry no order
//   - map[string]any, Fragment: boolean entries toggle their key as a token;
//     if any entry is not boolean the whole object is merged as a literal
//   - []Fragment, []map[string]any: merged into the literal fragment immediately
//   - []any: every element that is a fragment (or a list of them) is merged
//     into the literal; other elements are ignored
func (e *Engine) ClassNames(params ...any) []Fragment {
	tokens, literal := SplitClassNames(params...)
	inputs := make([]any, 0, len(tokens)+1)
	for _, t := range tokens {
		inputs = append(inputs, t)
	}
	inputs = append(inputs, literal)
	return e.Apply(inputs...)
}

// SplitClassNames returns the class tokens and the merged literal fragment
// that ClassNames would pass to Apply.
func SplitClassNames(params ...any) ([]string, Fragment) {
	literal := make(Fragment)
	var classes strings.Builder

	addToken := func(token string) {
		classes.WriteByte(' ')
		classes.WriteString(token)
	}

	mergeLiteral := func(f Fragment) {
		for key, value := range f {
			literal[key] = value
		}
	}

	mergeObject := func(obj map[string]any) {
		hasLiteral := false
		for _, key := range sortedKeys(obj) {
			if b, isBool := obj[key].(bool); isBool {
				if b {
					addToken(key)
				}
				continue
			}
			hasLiteral = true
		}
		if hasLiteral {
			mergeLiteral(obj)
		}
	}

	for _, param := range params {
		switch p := param.(type) {
		case string:
			addToken(p)
		case []Fragment:
			for _, f := range p {
				mergeLiteral(f)
			}
		case []map[string]any:
			for _, f := range p {
				mergeLiteral(f)
			}
		case []any:
			for _, item := range p {
				if f, ok := toFragment(item); ok {
					mergeLiteral(f)
				}
			}
		case map[string]bool:
			for _, key := range sortedKeys(p) {
				if p[key] {
					addToken(key)
				}
			}
		case Fragment:
			mergeObject(p)
		case map[string]any:
			mergeObject(p)
		}
	}

	return strings.Fields(classes.String()), literal
}
