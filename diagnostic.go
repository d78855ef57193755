// FILE: lixenwraith/classkit/diagnostic.go
package classkit

import (
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

// DiagnosticKind classifies non-fatal conditions reported by the engine.
type DiagnosticKind string

const (
	// DiagUnknownKey reports a key whose prefix is not known
	DiagUnknownKey DiagnosticKind = "unknown_key"
	// DiagUnrecognized reports a known prefix that rejected the modifier
	DiagUnrecognized DiagnosticKind = "unrecognized_modifier"
	// DiagMutation reports a rejected direct write on the resolver
	DiagMutation DiagnosticKind = "mutation_rejected"
	// DiagBreakpoint reports a layout entry that could not be decoded
	DiagBreakpoint DiagnosticKind = "invalid_breakpoint"
	// DiagInvalidEntry reports a patch entry whose name cannot be stored
	DiagInvalidEntry DiagnosticKind = "invalid_entry"
)

// Diagnostic is a non-fatal report. Resolution continues after it is emitted.
type Diagnostic struct {
	Kind    DiagnosticKind
	Key     string
	Message string
}

// DiagnosticFunc receives diagnostics. It is called outside the engine lock,
// so a sink may resolve keys, but it must not block.
type DiagnosticFunc func(d Diagnostic)

// DiscardDiagnostics drops every diagnostic.
func DiscardDiagnostics(Diagnostic) {}

// LogDiagnostics returns a sink writing warnings to logger.
// A nil logger writes to stderr with a "classkit" prefix.
func LogDiagnostics(logger *log.Logger) DiagnosticFunc {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "classkit"})
	}
	return func(d Diagnostic) {
		logger.Warn(d.Message, "kind", string(d.Kind), "key", d.Key)
	}
}

// DiagnosticRecorder collects diagnostics, mostly useful in tests and tooling.
type DiagnosticRecorder struct {
	mu    sync.Mutex
	items []Diagnostic
}

// Record is a DiagnosticFunc.
func (r *DiagnosticRecorder) Record(d Diagnostic) {
	r.mu.Lock()
	r.items = append(r.items, d)
	r.mu.Unlock()
}

// Diagnostics returns a copy of everything recorded so far.
func (r *DiagnosticRecorder) Diagnostics() []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Diagnostic, len(r.items))
	copy(out, r.items)
	return out
}

// Reset forgets recorded diagnostics.
func (r *DiagnosticRecorder) Reset() {
	r.mu.Lock()
	r.items = nil
	r.mu.Unlock()
}
