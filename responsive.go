// FILE: lixenwraith/classkit/responsive.go
package classkit

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"golang.org/x/term"
)

const (
	// MaxBreakpointWidth is the upper bound used when a breakpoint has no lte
	MaxBreakpointWidth = 10000
	// DefaultViewportWidth is used when the terminal width cannot be determined
	DefaultViewportWidth = 80
	// DefaultBreakpoint is the entry Responsive falls back to
	DefaultBreakpoint = "default"
)

// ViewportFunc reports the current viewport width. It is read once per call.
type ViewportFunc func() int

// TerminalWidth reports the width of the terminal attached to stdout,
// then $COLUMNS, then DefaultViewportWidth.
func TerminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols
	}
	return DefaultViewportWidth
}

// FixedWidth returns a ViewportFunc that always reports width.
func FixedWidth(width int) ViewportFunc {
	return func() int { return width }
}

// Breakpoint is a named inclusive width range.
type Breakpoint struct {
	Name string
	Gte  int
	Lte  int
}

// Contains reports whether width lies in [Gte, Lte].
func (b Breakpoint) Contains(width int) bool {
	return width >= b.Gte && width <= b.Lte
}

// breakpointBounds is the decoded form of a layout entry
type breakpointBounds struct {
	Gte *int `toml:"gte"`
	Lte *int `toml:"lte"`
}

// Below returns a layout entry matching widths up to lte.
func Below(lte int) map[string]any {
	return map[string]any{"lte": lte}
}

// Above returns a layout entry matching widths from gte.
func Above(gte int) map[string]any {
	return map[string]any{"gte": gte}
}

// Between returns a layout entry matching widths in [gte, lte].
func Between(gte, lte int) map[string]any {
	return map[string]any{"gte": gte, "lte": lte}
}

// Breakpoints decodes the layout section in declaration order.
// A missing gte defaults to 0 and a missing lte to MaxBreakpointWidth.
func (t *Theme) Breakpoints() ([]Breakpoint, error) {
	var (
		out  []Breakpoint
		errs []error
	)
	for _, name := range t.Entries(SectionLayout) {
		raw, _ := t.Entry(SectionLayout, name)
		var bounds breakpointBounds
		if err := decodeValue(raw, &bounds); err != nil {
			errs = append(errs, fmt.Errorf("breakpoint %q: %w", name, err))
			continue
		}
		bp := Breakpoint{Name: name, Gte: 0, Lte: MaxBreakpointWidth}
		if bounds.Gte != nil {
			bp.Gte = *bounds.Gte
		}
		if bounds.Lte != nil {
			bp.Lte = *bounds.Lte
		}
		out = append(out, bp)
	}
	return out, errors.Join(errs...)
}

// Breakpoint returns the name of the first declared breakpoint containing
// the current viewport width, or "" when none does.
func (e *Engine) Breakpoint() string {
	width := e.viewport()

	e.mutex.RLock()
	bps, err := e.theme.Breakpoints()
	e.mutex.RUnlock()

	if err != nil {
		e.report(Diagnostic{Kind: DiagBreakpoint, Key: SectionLayout, Message: err.Error()})
	}
	for _, bp := range bps {
		if bp.Contains(width) {
			return bp.Name
		}
	}
	return ""
}

// Responsive picks the entry of byBreakpoint named after the active
// breakpoint, falling back to the "default" entry, and passes it through
// Apply. Entries may be anything Apply accepts. The viewport is read once;
// callers re-invoke Responsive when they re-render.
func (e *Engine) Responsive(byBreakpoint map[string]any) []Fragment {
	if name := e.Breakpoint(); name != "" {
		if entry, ok := byBreakpoint[name]; ok {
			return e.Apply(entry)
		}
	}
	if entry, ok := byBreakpoint[DefaultBreakpoint]; ok {
		return e.Apply(entry)
	}
	return []Fragment{}
}
