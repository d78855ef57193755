// File: lixenwraith/classkit/convenience.go
package classkit

import (
	"fmt"
	"io"
	"strings"
)

// Quick creates an engine with the built-in dictionary, the default theme,
// an optional theme file and an optional environment prefix.
// A missing theme file returns ErrThemeNotFound together with a usable engine.
func Quick(themeFile, envPrefix string) (*Engine, error) {
	b := NewBuilder().WithEnvPrefix(envPrefix)
	if themeFile != "" {
		b = b.WithFile(themeFile)
	}
	return b.Build()
}

// MustQuick is like Quick but panics on error
func MustQuick(themeFile, envPrefix string) *Engine {
	e, err := Quick(themeFile, envPrefix)
	if e == nil {
		panic(fmt.Sprintf("classkit initialization failed: %v", err))
	}
	return e
}

// Debug returns a formatted string showing theme values, defaults and cache state
func (e *Engine) Debug() string {
	e.mutex.RLock()
	defer e.mutex.RUnlock()

	var b strings.Builder
	b.WriteString("Engine Debug Info:\n")
	stats := e.cache.Stats()
	b.WriteString(fmt.Sprintf("Cache: %d entries, %d hits, %d misses\n", stats.Entries, stats.Hits, stats.Misses))
	b.WriteString(fmt.Sprintf("Dictionary: %d prefixes\n", e.dict.Len()))
	b.WriteString(fmt.Sprintf("Modified: %v\n", e.theme.Modified()))
	b.WriteString("Theme:\n")
	for _, line := range strings.Split(strings.TrimRight(e.theme.Describe(), "\n"), "\n") {
		if line != "" {
			b.WriteString("  " + line + "\n")
		}
	}
	return b.String()
}

// Dump writes the current theme to w in TOML format
func (e *Engine) Dump(w io.Writer) error {
	e.mutex.RLock()
	data, err := e.theme.MarshalTOML()
	e.mutex.RUnlock()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
