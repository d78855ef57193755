// File: lixenwraith/classkit/builder.go
package classkit

import (
	"errors"
	"fmt"
)

// ValidatorFunc defines the signature for a function that can validate an Engine.
// It receives the fully built engine and should return an error if validation fails.
type ValidatorFunc func(e *Engine) error

// Builder provides a fluent interface for building engines
type Builder struct {
	dict        *Dictionary
	theme       *Theme
	patches     []Patch
	file        string
	envPrefix   string
	viewport    ViewportFunc
	diagnostics DiagnosticFunc
	err         error
	validators  []ValidatorFunc
}

// NewBuilder creates a new engine builder with the built-in dictionary,
// the default theme and logging diagnostics.
func NewBuilder() *Builder {
	return &Builder{
		dict:        Builtin(),
		theme:       DefaultTheme(),
		viewport:    TerminalWidth,
		diagnostics: LogDiagnostics(nil),
		validators:  make([]ValidatorFunc, 0),
	}
}

// WithDictionary replaces the dictionary. The builder works on a clone.
func (b *Builder) WithDictionary(dict *Dictionary) *Builder {
	if dict == nil {
		b.err = errors.Join(b.err, fmt.Errorf("nil dictionary"))
		return b
	}
	b.dict = dict.Clone()
	return b
}

// WithGenerator registers an additional generator on the builder's dictionary
func (b *Builder) WithGenerator(prefix string, gen Generator) *Builder {
	if err := b.dict.Register(prefix, gen); err != nil {
		b.err = errors.Join(b.err, err)
	}
	return b
}

// WithTheme replaces the starting theme. The builder works on a clone.
func (b *Builder) WithTheme(theme *Theme) *Builder {
	if theme == nil {
		b.err = errors.Join(b.err, fmt.Errorf("nil theme"))
		return b
	}
	b.theme = theme.Clone()
	return b
}

// WithPatch queues a patch applied through Extend during Build, in call order
func (b *Builder) WithPatch(patch Patch) *Builder {
	b.patches = append(b.patches, patch)
	return b
}

// WithFile sets a theme file applied after the patches
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithEnvPrefix enables environment overrides, applied last
func (b *Builder) WithEnvPrefix(prefix string) *Builder {
	b.envPrefix = prefix
	return b
}

// WithViewport sets the viewport width source used by Responsive and Render
func (b *Builder) WithViewport(fn ViewportFunc) *Builder {
	if fn != nil {
		b.viewport = fn
	}
	return b
}

// WithDiagnostics sets the diagnostic sink. nil discards diagnostics.
func (b *Builder) WithDiagnostics(fn DiagnosticFunc) *Builder {
	if fn == nil {
		fn = DiscardDiagnostics
	}
	b.diagnostics = fn
	return b
}

// WithValidator adds a validation function that runs at the end of the build process
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build creates the Engine. Precedence, lowest to highest: theme defaults,
// patches, theme file, environment. A missing theme file is reported as
// ErrThemeNotFound together with a usable engine.
func (b *Builder) Build() (*Engine, error) {
	if b.err != nil {
		return nil, b.err
	}

	e := newEngine(b.dict.Clone(), b.theme.Clone())
	e.viewport = b.viewport
	e.diagnostics = b.diagnostics

	for _, p := range b.patches {
		e.Extend(p)
	}

	var loadErr error
	if b.file != "" {
		if _, err := e.ExtendFile(b.file); err != nil {
			if !errors.Is(err, ErrThemeNotFound) {
				return nil, err
			}
			loadErr = err
		}
	}

	if b.envPrefix != "" {
		if _, err := e.ExtendEnv(b.envPrefix); err != nil {
			return nil, fmt.Errorf("failed to load environment theme: %w", err)
		}
	}

	for _, validator := range b.validators {
		if err := validator(e); err != nil {
			return nil, fmt.Errorf("engine validation failed: %w", err)
		}
	}

	// ErrThemeNotFound or nil
	return e, loadErr
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Engine {
	e, err := b.Build()
	if err != nil {
		// A missing theme file is not fatal; the engine runs with defaults.
		if !errors.Is(err, ErrThemeNotFound) {
			panic(fmt.Sprintf("classkit build failed: %v", err))
		}
	}
	return e
}
