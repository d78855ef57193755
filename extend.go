// FILE: lixenwraith/classkit/extend.go
package classkit

import (
	"fmt"
	"sort"
)

// Patch is a partial theme: section name -> entry name -> value.
type Patch map[string]map[string]any

// patchOrder records the declaration order of entries per section, when the
// source of a patch preserves it.
type patchOrder map[string][]string

// names returns the keys of entries, first in recorded order, then the rest sorted.
func (o patchOrder) names(section string, entries map[string]any) []string {
	out := make([]string, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, name := range o[section] {
		if _, ok := entries[name]; ok && !seen[name] {
			out = append(out, name)
			seen[name] = true
		}
	}

	var rest []string
	for name := range entries {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// Extend merges patch into the theme and invalidates every cached fragment.
// Only sections the theme already declares are merged; unknown sections are
// silently dropped. Entry names are lower-cased. Within a section each entry
// replaces the previous value of the same name.
//
// Entry names must be usable in a "section.entry" path and in a saved TOML
// file: ASCII letters, digits, '_' and '-'. Other names (dots, spaces,
// non-ASCII) are skipped and reported as DiagInvalidEntry.
func (e *Engine) Extend(patch Patch) {
	e.extend(patch, nil)
}

// extend performs the cache clear, theme merge and class reindex as one
// exclusive step, so no resolution can observe a cached fragment computed
// against an older theme. Rejected entries are reported after the lock is released.
func (e *Engine) extend(patch Patch, order patchOrder) []string {
	e.mutex.Lock()
	e.cache.Clear()
	changed, rejected := e.theme.merge(patch, order)
	e.reindexClasses()
	e.mutex.Unlock()

	for _, path := range rejected {
		e.report(Diagnostic{
			Kind:    DiagInvalidEntry,
			Key:     path,
			Message: fmt.Sprintf("theme entry %q skipped: names may only contain letters, digits, '_' and '-'", path),
		})
	}
	return changed
}

// reindexClasses rebuilds the set of prefixes that custom classes answer to.
// Caller must hold the write lock.
func (e *Engine) reindexClasses() {
	index := make(map[string]struct{})
	for _, name := range e.theme.Entries(SectionClasses) {
		prefix, _ := ParseKey(name)
		index[prefix] = struct{}{}
	}
	e.classIndex = index
}
