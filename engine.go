// FILE: lixenwraith/classkit/engine.go
package classkit

import (
	"fmt"
	"strings"
	"sync"
)

// Engine resolves class keys to fragments. It owns the theme, the dictionary
// and the cache, and is safe for concurrent use.
type Engine struct {
	theme       *Theme
	dict        *Dictionary
	cache       *Cache
	classIndex  map[string]struct{}
	diagnostics DiagnosticFunc
	viewport    ViewportFunc
	mutex       sync.RWMutex // Guards theme/cache consistency; Extend holds it exclusively

	watchMu sync.Mutex
	watcher *watcher
}

// New creates an engine with the built-in dictionary and the default theme.
// Diagnostics are logged to stderr.
func New() *Engine {
	return newEngine(Builtin(), DefaultTheme())
}

// NewWithDictionary creates an engine with a copy of dict and the default theme.
// Later changes to dict are not seen by the engine; use Register instead.
func NewWithDictionary(dict *Dictionary) *Engine {
	return newEngine(dict.Clone(), DefaultTheme())
}

func newEngine(dict *Dictionary, theme *Theme) *Engine {
	e := &Engine{
		theme:       theme,
		dict:        dict,
		cache:       NewCache(),
		diagnostics: LogDiagnostics(nil),
		viewport:    TerminalWidth,
	}
	e.reindexClasses()
	return e
}

// Theme returns the engine's theme for reading.
func (e *Engine) Theme() *Theme {
	return e.theme
}

// Dictionary returns a copy of the engine's dictionary. Registering on the
// copy does not affect the engine.
func (e *Engine) Dictionary() *Dictionary {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	return e.dict.Clone()
}

// Register adds a generator to the engine's dictionary and invalidates the
// cache in the same exclusive step, so a class cached under the same key
// gives way to the new prefix.
func (e *Engine) Register(prefix string, gen Generator) error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if err := e.dict.Register(prefix, gen); err != nil {
		return err
	}
	e.cache.Clear()
	return nil
}

// CacheStats returns the cache counters.
func (e *Engine) CacheStats() CacheStats {
	return e.cache.Stats()
}

// Resolve returns the fragment for key, or an empty fragment when the key
// does not resolve. It never fails; use Lookup to learn why a key is empty.
func (e *Engine) Resolve(key string) Fragment {
	f, _ := e.Lookup(key)
	return f
}

// Lookup resolves key and reports ErrReservedKey, ErrUnknownKey or
// ErrUnrecognized when it does not resolve. Unknown and unrecognized keys
// are also reported to the diagnostic sink.
func (e *Engine) Lookup(key string) (Fragment, error) {
	f, diag, err := e.lookup(key)
	if diag != nil {
		e.report(*diag)
	}
	return f, err
}

// lookup does the resolution under the read lock and returns the diagnostic
// to emit once the lock is released.
func (e *Engine) lookup(key string) (Fragment, *Diagnostic, error) {
	if isReservedKey(key) {
		return Fragment{}, nil, fmt.Errorf("%w: %q", ErrReservedKey, key)
	}

	e.mutex.RLock()
	defer e.mutex.RUnlock()

	prefix, modifier := ParseKey(key)
	gen, known := e.dict.Lookup(prefix)
	if !known && !e.isClassKey(key) {
		return Fragment{}, &Diagnostic{
			Kind:    DiagUnknownKey,
			Key:     key,
			Message: fmt.Sprintf("the key %q does not exist", key),
		}, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}

	if f, ok := e.cache.Get(key); ok {
		return f, nil, nil
	}

	var (
		f  Fragment
		ok bool
	)
	if known {
		f, ok = gen(e.theme, modifier, key)
	}
	if !ok {
		f, ok = e.customClass(key)
	}
	if !ok {
		return Fragment{}, &Diagnostic{
			Kind:    DiagUnrecognized,
			Key:     key,
			Message: fmt.Sprintf("modifier %q is not recognized for %q", modifier, prefix),
		}, fmt.Errorf("%w: %q", ErrUnrecognized, key)
	}

	e.cache.Set(key, f)
	return f, nil, nil
}

// isClassKey reports whether key's prefix belongs to a custom class.
// Class names are stored lower-case, so the lower-cased key is tried as well.
func (e *Engine) isClassKey(key string) bool {
	prefix, _ := ParseKey(key)
	if _, ok := e.classIndex[prefix]; ok {
		return true
	}
	prefix, _ = ParseKey(strings.ToLower(key))
	_, ok := e.classIndex[prefix]
	return ok
}

// customClass returns the exact custom class for key, case-insensitively.
func (e *Engine) customClass(key string) (Fragment, bool) {
	v, ok := e.theme.Entry(SectionClasses, key)
	if !ok {
		return nil, false
	}
	return toFragment(v)
}

// Has reports whether key is exactly a declared dictionary prefix or resolves to a
// non-empty fragment. It does not emit diagnostics.
func (e *Engine) Has(key string) bool {
	if isReservedKey(key) {
		return false
	}
	if _, ok := e.dict.Lookup(key); ok {
		return true
	}
	f, _, err := e.lookup(key)
	return err == nil && len(f) > 0
}

// Exists is an alias of Has.
func (e *Engine) Exists(key string) bool {
	return e.Has(key)
}

// Set rejects any direct definition of a key. The engine state is unchanged
// and a diagnostic is emitted; Extend is the only mutation path.
func (e *Engine) Set(key string, _ any) error {
	e.report(Diagnostic{
		Kind:    DiagMutation,
		Key:     key,
		Message: "set is not allowed, use the Extend method instead",
	})
	return fmt.Errorf("%w: %q", ErrMutationNotAllowed, key)
}

// Keys returns the dictionary prefixes. Cache contents are not enumerated.
func (e *Engine) Keys() []string {
	return e.dict.Prefixes()
}

// Component returns the default fragments stored for a component in the
// components section. A string value is treated as a space-separated class list.
func (e *Engine) Component(name string) []Fragment {
	e.mutex.RLock()
	v, ok := e.theme.Entry(SectionComponents, name)
	e.mutex.RUnlock()
	if !ok {
		return []Fragment{}
	}
	if s, isString := v.(string); isString {
		return e.Apply(strings.Fields(s))
	}
	return e.Apply(v)
}

func (e *Engine) report(d Diagnostic) {
	if e.diagnostics != nil {
		e.diagnostics(d)
	}
}
