// FILE: lixenwraith/classkit/parser.go
package classkit

import (
	"strconv"
	"strings"
)

// ParseKey splits a class key into its lower-cased prefix and its modifier.
// The boundary is the first lower-to-upper transition, letter-to-digit
// transition or underscore after the first character. The modifier is
// returned as written, including a leading underscore ("mt_1" -> "mt", "_1").
// Keys without a boundary have an empty modifier. ParseKey never fails.
func ParseKey(key string) (prefix, modifier string) {
	for i := 1; i < len(key); i++ {
		prev, cur := key[i-1], key[i]
		switch {
		case cur == '_':
		case isLower(prev) && isUpper(cur):
		case isAlpha(prev) && isDigit(cur):
		default:
			continue
		}
		return strings.ToLower(key[:i]), key[i:]
	}
	return strings.ToLower(key), ""
}

// MaxModifier bounds the magnitude of numeric modifiers and of the sizes
// computed from them.
const MaxModifier = 1<<31 - 1

// ParseModifier interprets a size modifier. A leading underscore negates the
// value ("_2" -> -2). ok is false when the modifier is not a plain integer
// or its magnitude exceeds MaxModifier.
func ParseModifier(modifier string) (n int, ok bool) {
	sign := 1
	if strings.HasPrefix(modifier, "_") {
		sign = -1
		modifier = modifier[1:]
	}
	if modifier == "" {
		return 0, false
	}
	for i := 0; i < len(modifier); i++ {
		if !isDigit(modifier[i]) {
			return 0, false
		}
	}
	v, err := strconv.ParseInt(modifier, 10, 32)
	if err != nil {
		return 0, false
	}
	return sign * int(v), true
}

// isReservedKey reports names that must never reach the dictionary.
func isReservedKey(key string) bool {
	switch key {
	case "", "prototype", "__proto__", "constructor", "toJSON", "$$typeof":
		return true
	}
	return false
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isAlpha(c byte) bool { return isLower(c) || isUpper(c) }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
