// FILE: lixenwraith/classkit/theme.go
package classkit

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// Theme section names.
const (
	SectionColors     = "colors"
	SectionFonts      = "fonts"
	SectionSizing     = "sizing"
	SectionLayout     = "layout"
	SectionComponents = "components"
	SectionClasses    = "classes"
)

// themeItem holds both the default and current value for a theme entry
type themeItem struct {
	defaultValue any
	currentValue any
}

// themeSection keeps entries in declaration order
type themeSection struct {
	names []string
	items map[string]themeItem
}

// Theme is the mutable configuration read by generators: named sections of
// named entries. Entry names are lower-case. Sections and entries keep their
// declaration order. Mutation happens only through Engine.Extend; the exported
// methods of Theme are read-only.
type Theme struct {
	sections map[string]*themeSection
	order    []string
	mutex    sync.RWMutex
}

// NewTheme creates a theme with the standard sections and no entries.
func NewTheme() *Theme {
	t := &Theme{sections: make(map[string]*themeSection)}
	for _, name := range []string{SectionColors, SectionFonts, SectionSizing, SectionLayout, SectionComponents, SectionClasses} {
		t.addSection(name)
	}
	return t
}

// DefaultTheme creates a theme populated with the built-in defaults.
func DefaultTheme() *Theme {
	t := NewTheme()

	colors := [][2]string{
		{"black", "#000000"},
		{"white", "#FFFFFF"},
		{"red", "#E06C75"},
		{"green", "#98C379"},
		{"blue", "#61AFEF"},
		{"yellow", "#E5C07B"},
		{"magenta", "#C678DD"},
		{"cyan", "#56B6C2"},
		{"gray", "#808080"},
		{"primary", "#569CD6"},
		{"secondary", "#4EC9B0"},
		{"transparent", "transparent"},
	}
	for _, c := range colors {
		t.register(SectionColors, c[0], c[1])
	}

	t.register(SectionFonts, "primary", "monospace")
	t.register(SectionFonts, "secondary", "sans-serif")

	sizing := []struct {
		name  string
		value int64
	}{
		{"base", 1},
		{"xs", 12},
		{"s", 14},
		{"m", 16},
		{"l", 20},
		{"xl", 24},
		{"xxl", 32},
	}
	for _, s := range sizing {
		t.register(SectionSizing, s.name, s.value)
	}

	t.register(SectionLayout, "sm", Below(300))
	t.register(SectionLayout, "md", Between(301, 500))
	t.register(SectionLayout, "lg", Above(501))

	return t
}

// addSection declares a section. Existing sections are left untouched.
func (t *Theme) addSection(name string) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if _, exists := t.sections[name]; exists {
		return
	}
	t.sections[name] = &themeSection{items: make(map[string]themeItem)}
	t.order = append(t.order, name)
}

// register declares an entry with its default value. Only used while building a theme.
func (t *Theme) register(section, name string, defaultValue any) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	s, ok := t.sections[section]
	if !ok {
		return
	}
	name = strings.ToLower(name)
	if _, exists := s.items[name]; !exists {
		s.names = append(s.names, name)
	}
	s.items[name] = themeItem{defaultValue: defaultValue, currentValue: defaultValue}
}

// merge shallow-merges patch entries into existing sections and returns the
// "section.entry" paths whose value changed. Sections not declared on the
// theme are ignored. New entries are appended in the order given by order,
// falling back to lexical order for names order does not list. Entry names
// that are not TOML bare keys once lower-cased are skipped and returned as
// rejected.
func (t *Theme) merge(patch Patch, order patchOrder) (changed, rejected []string) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	sectionNames := make([]string, 0, len(patch))
	for name := range patch {
		sectionNames = append(sectionNames, name)
	}
	sort.Strings(sectionNames)

	for _, sectionName := range sectionNames {
		s, exists := t.sections[sectionName]
		if !exists {
			continue
		}

		entries := patch[sectionName]
		for _, raw := range order.names(sectionName, entries) {
			name := strings.ToLower(raw)
			if !isValidKeySegment(name) {
				rejected = append(rejected, sectionName+"."+raw)
				continue
			}
			value := entries[raw]

			item, known := s.items[name]
			if !known {
				s.names = append(s.names, name)
			} else if reflect.DeepEqual(item.currentValue, value) {
				continue
			}
			item.currentValue = value
			s.items[name] = item
			changed = append(changed, sectionName+"."+name)
		}
	}

	return changed, rejected
}

// HasSection reports whether the section is declared.
func (t *Theme) HasSection(section string) bool {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	_, ok := t.sections[section]
	return ok
}

// Sections returns the declared section names in declaration order.
func (t *Theme) Sections() []string {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Entries returns the entry names of a section in declaration order.
func (t *Theme) Entries(section string) []string {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	s, ok := t.sections[section]
	if !ok {
		return nil
	}
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Entry returns the current value of a section entry. Names are case-insensitive.
func (t *Theme) Entry(section, name string) (any, bool) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	s, ok := t.sections[section]
	if !ok {
		return nil, false
	}
	item, ok := s.items[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return item.currentValue, true
}

// Get retrieves a value by "section.entry" path.
func (t *Theme) Get(path string) (any, bool) {
	section, name, ok := strings.Cut(path, ".")
	if !ok {
		return nil, false
	}
	return t.Entry(section, name)
}

// Section returns a copy of the current values of a section.
func (t *Theme) Section(section string) map[string]any {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	s, ok := t.sections[section]
	if !ok {
		return nil
	}
	out := make(map[string]any, len(s.items))
	for name, item := range s.items {
		out[name] = item.currentValue
	}
	return out
}

// Modified returns the "section.entry" paths whose value differs from the default.
// Entries added after construction count as modified.
func (t *Theme) Modified() []string {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	var paths []string
	for _, sectionName := range t.order {
		s := t.sections[sectionName]
		for _, name := range s.names {
			item := s.items[name]
			if !reflect.DeepEqual(item.currentValue, item.defaultValue) {
				paths = append(paths, sectionName+"."+name)
			}
		}
	}
	return paths
}

// Clone creates a deep copy of the theme structure. Values are shared.
func (t *Theme) Clone() *Theme {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	clone := &Theme{
		sections: make(map[string]*themeSection, len(t.sections)),
		order:    append([]string(nil), t.order...),
	}
	for name, s := range t.sections {
		cs := &themeSection{
			names: append([]string(nil), s.names...),
			items: make(map[string]themeItem, len(s.items)),
		}
		for n, item := range s.items {
			cs.items[n] = item
		}
		clone.sections[name] = cs
	}
	return clone
}

// nested builds a section -> entry -> value map of the current state.
func (t *Theme) nested() map[string]any {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	out := make(map[string]any, len(t.sections))
	for name, s := range t.sections {
		section := make(map[string]any, len(s.items))
		for n, item := range s.items {
			if item.currentValue != nil {
				section[n] = item.currentValue
			}
		}
		out[name] = section
	}
	return out
}

// Describe lists every entry as "section.entry = value" in declaration order.
func (t *Theme) Describe() string {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	var b strings.Builder
	for _, sectionName := range t.order {
		s := t.sections[sectionName]
		for _, name := range s.names {
			fmt.Fprintf(&b, "%s.%s = %v\n", sectionName, name, s.items[name].currentValue)
		}
	}
	return b.String()
}
