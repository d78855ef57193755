// FILE: lixenwraith/classkit/errors.go
package classkit

import "errors"

var (
	// ErrUnknownKey is returned when a key's prefix is neither a dictionary prefix nor a custom class.
	ErrUnknownKey = errors.New("unknown class key")

	// ErrReservedKey is returned for reserved protocol names that never resolve.
	ErrReservedKey = errors.New("reserved class key")

	// ErrUnrecognized is returned when a known prefix does not accept the key's modifier.
	ErrUnrecognized = errors.New("unrecognized modifier")

	// ErrMutationNotAllowed is returned by Engine.Set; Extend is the only mutation path.
	ErrMutationNotAllowed = errors.New("direct mutation is not allowed, use Extend")

	// ErrInvalidPrefix is returned when registering an empty or malformed dictionary prefix.
	ErrInvalidPrefix = errors.New("invalid dictionary prefix")

	// ErrDuplicatePrefix is returned when a prefix is registered twice.
	ErrDuplicatePrefix = errors.New("dictionary prefix already registered")

	// ErrThemeNotFound is returned when a theme file does not exist. It is not fatal for Builder.Build.
	ErrThemeNotFound = errors.New("theme file not found")

	// ErrValueSize is returned when an environment value exceeds MaxValueSize.
	ErrValueSize = errors.New("value size exceeds limit")
)

// MaxValueSize limits the length of a single value read from the environment.
const MaxValueSize = 1024 * 1024
