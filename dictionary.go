// FILE: lixenwraith/classkit/dictionary.go
package classkit

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Generator builds the fragment for a key whose prefix it is registered under.
// It receives the key's modifier and the full key, and reads theme values from t.
// It returns false when it does not recognize the modifier.
// Generators must depend only on their arguments.
type Generator func(t *Theme, modifier, key string) (Fragment, bool)

// Dictionary maps lower-cased prefixes to generators.
type Dictionary struct {
	generators map[string]Generator
	mutex      sync.RWMutex
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{generators: make(map[string]Generator)}
}

// Register adds a generator under prefix. The prefix is lower-cased and
// must be a single parseable segment, so that ParseKey can reach it.
func (d *Dictionary) Register(prefix string, gen Generator) error {
	if gen == nil {
		return fmt.Errorf("%w: nil generator for %q", ErrInvalidPrefix, prefix)
	}
	prefix = strings.ToLower(prefix)
	if p, m := ParseKey(prefix); prefix == "" || m != "" || p != prefix || !isValidKeySegment(prefix) {
		return fmt.Errorf("%w: %q", ErrInvalidPrefix, prefix)
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	if _, exists := d.generators[prefix]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicatePrefix, prefix)
	}
	d.generators[prefix] = gen
	return nil
}

// MustRegister is like Register but panics on error.
func (d *Dictionary) MustRegister(prefix string, gen Generator) {
	if err := d.Register(prefix, gen); err != nil {
		panic(fmt.Sprintf("dictionary register failed: %v", err))
	}
}

// Lookup returns the generator for prefix.
func (d *Dictionary) Lookup(prefix string) (Generator, bool) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	gen, ok := d.generators[prefix]
	return gen, ok
}

// Has reports whether prefix is registered.
func (d *Dictionary) Has(prefix string) bool {
	_, ok := d.Lookup(strings.ToLower(prefix))
	return ok
}

// Prefixes returns every registered prefix in sorted order.
func (d *Dictionary) Prefixes() []string {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	prefixes := make([]string, 0, len(d.generators))
	for p := range d.generators {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)
	return prefixes
}

// Len returns the number of registered prefixes.
func (d *Dictionary) Len() int {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return len(d.generators)
}

// Clone returns an independent copy sharing the same generator functions.
func (d *Dictionary) Clone() *Dictionary {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	clone := NewDictionary()
	for p, gen := range d.generators {
		clone.generators[p] = gen
	}
	return clone
}
