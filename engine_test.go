// FILE: lixenwraith/classkit/engine_test.go
package classkit

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEngine builds an engine with recorded diagnostics and a fixed viewport
func newTestEngine(t *testing.T, width int) (*Engine, *DiagnosticRecorder) {
	t.Helper()
	rec := &DiagnosticRecorder{}
	e, err := NewBuilder().
		WithDiagnostics(rec.Record).
		WithViewport(FixedWidth(width)).
		Build()
	require.NoError(t, err)
	return e, rec
}

// TestResolve tests resolution through built-in generators
func TestResolve(t *testing.T) {
	e, rec := newTestEngine(t, 80)

	assert.Equal(t, Fragment{"backgroundColor": "#E06C75"}, e.Resolve("bgRed"))
	assert.Equal(t, Fragment{"color": "#569CD6"}, e.Resolve("textPrimary"))
	assert.Equal(t, Fragment{"textAlign": "center"}, e.Resolve("textCenter"))
	assert.Equal(t, Fragment{"marginTop": -2}, e.Resolve("mt_2"))
	assert.Equal(t, Fragment{"paddingLeft": 3, "paddingRight": 3}, e.Resolve("px3"))
	assert.Equal(t, Fragment{"width": "50%"}, e.Resolve("wHalf"))
	assert.Equal(t, Fragment{"fontSize": 16}, e.Resolve("fontM"))
	assert.Equal(t, Fragment{"fontFamily": "monospace"}, e.Resolve("familyPrimary"))
	assert.Equal(t, Fragment{"flexDirection": "row-reverse"}, e.Resolve("rowReverse"))
	assert.Equal(t, Fragment{"justifyContent": "space-between"}, e.Resolve("justifyBetween"))
	assert.Equal(t, Fragment{"textTransform": "uppercase"}, e.Resolve("uppercase"))

	assert.Empty(t, rec.Diagnostics())
}

// TestResolveCaching tests that generators run once per key until the theme changes
func TestResolveCaching(t *testing.T) {
	var calls atomic.Int32
	dict := NewDictionary()
	dict.MustRegister("tone", func(th *Theme, modifier, _ string) (Fragment, bool) {
		calls.Add(1)
		c, ok := themeColor(th, modifier)
		return Fragment{"color": c}, ok
	})

	e, err := NewBuilder().
		WithDictionary(dict).
		WithDiagnostics(nil).
		Build()
	require.NoError(t, err)

	first := e.Resolve("toneRed")
	second := e.Resolve("toneRed")
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), calls.Load())

	stats := e.CacheStats()
	assert.Equal(t, 1, stats.Entries)
	assert.Equal(t, int64(1), stats.Hits)

	e.Extend(Patch{SectionColors: {"red": "#FF0000"}})
	assert.Equal(t, Fragment{"color": "#FF0000"}, e.Resolve("toneRed"))
	assert.Equal(t, int32(2), calls.Load())
}

// TestResolveFailures tests unknown, unrecognized and reserved keys
func TestResolveFailures(t *testing.T) {
	t.Run("UnknownKey", func(t *testing.T) {
		e, rec := newTestEngine(t, 80)

		f, err := e.Lookup("totallyUnknownKey")
		assert.ErrorIs(t, err, ErrUnknownKey)
		assert.NotNil(t, f)
		assert.Empty(t, f)

		diags := rec.Diagnostics()
		require.Len(t, diags, 1)
		assert.Equal(t, DiagUnknownKey, diags[0].Kind)
		assert.Equal(t, "totallyUnknownKey", diags[0].Key)
	})

	t.Run("Unrecognized", func(t *testing.T) {
		e, rec := newTestEngine(t, 80)

		_, err := e.Lookup("bgNope")
		assert.ErrorIs(t, err, ErrUnrecognized)
		require.Len(t, rec.Diagnostics(), 1)
		assert.Equal(t, DiagUnrecognized, rec.Diagnostics()[0].Kind)

		// Misses are not cached
		assert.Equal(t, 0, e.CacheStats().Entries)
	})

	t.Run("ReservedKeys", func(t *testing.T) {
		e, rec := newTestEngine(t, 80)

		for _, key := range []string{"", "prototype", "__proto__", "constructor", "toJSON", "$$typeof"} {
			f, err := e.Lookup(key)
			assert.ErrorIs(t, err, ErrReservedKey, key)
			assert.Empty(t, f)
			assert.False(t, e.Exists(key))
		}
		assert.Empty(t, rec.Diagnostics())
	})

	t.Run("ResolveNeverFails", func(t *testing.T) {
		e, _ := newTestEngine(t, 80)
		assert.Equal(t, Fragment{}, e.Resolve("nothingHere"))
	})
}

// TestSetRejected tests that direct mutation leaves the engine unchanged
func TestSetRejected(t *testing.T) {
	e, rec := newTestEngine(t, 80)
	before := e.Resolve("bgRed")

	err := e.Set("bgRed", Fragment{"backgroundColor": "#000000"})
	assert.ErrorIs(t, err, ErrMutationNotAllowed)
	assert.Equal(t, before, e.Resolve("bgRed"))

	diags := rec.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, DiagMutation, diags[0].Kind)
	assert.Contains(t, diags[0].Message, "Extend")
}

// TestExists tests membership checks
func TestExists(t *testing.T) {
	e, rec := newTestEngine(t, 80)

	assert.True(t, e.Exists("bgRed"))
	assert.True(t, e.Has("bg"))
	assert.True(t, e.Has("uppercase"))
	assert.False(t, e.Exists("totallyUnknownKey"))
	assert.False(t, e.Has("bgNope"))

	// Prefixes match exactly, as Resolve does
	assert.False(t, e.Has("Bg"))

	// Membership checks are silent
	assert.Empty(t, rec.Diagnostics())
	assert.Empty(t, e.Resolve("Bg"))

	keys := e.Keys()
	assert.Contains(t, keys, "bg")
	assert.Contains(t, keys, "mt")
	assert.IsIncreasing(t, keys)
}

// TestCustomClasses tests resolution of classes added through Extend
func TestCustomClasses(t *testing.T) {
	e, rec := newTestEngine(t, 80)

	e.Extend(Patch{SectionClasses: {
		"card":          Fragment{"padding": 2, "borderStyle": "rounded"},
		"primaryButton": map[string]any{"backgroundColor": "#569CD6"},
		"bgFancy":       []any{map[string]any{"color": "red"}, map[string]any{"color": "blue", "fontStyle": "italic"}},
	}})

	t.Run("Exact", func(t *testing.T) {
		assert.Equal(t, Fragment{"padding": 2, "borderStyle": "rounded"}, e.Resolve("card"))
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		assert.Equal(t, "#569CD6", e.Resolve("primaryButton")["backgroundColor"])
		assert.Equal(t, "#569CD6", e.Resolve("primarybutton")["backgroundColor"])
	})

	t.Run("GeneratorFallback", func(t *testing.T) {
		// bg declines "Fancy", the class takes over; lists merge last-wins
		assert.Equal(t, Fragment{"color": "blue", "fontStyle": "italic"}, e.Resolve("bgFancy"))
	})

	t.Run("ClassPrefixNotExact", func(t *testing.T) {
		_, err := e.Lookup("cardLarge")
		assert.ErrorIs(t, err, ErrUnrecognized)
	})

	assert.Len(t, rec.Diagnostics(), 1)
}

// TestEngineRegister tests that new prefixes take over cached custom classes
func TestEngineRegister(t *testing.T) {
	e, _ := newTestEngine(t, 80)
	e.Extend(Patch{SectionClasses: {"card": Fragment{"padding": 2}}})
	assert.Equal(t, Fragment{"padding": 2}, e.Resolve("card"))
	require.Positive(t, e.CacheStats().Entries)

	require.NoError(t, e.Register("card", constGenerator(Fragment{"borderStyle": "rounded"})))
	assert.Equal(t, 0, e.CacheStats().Entries)
	assert.Equal(t, Fragment{"borderStyle": "rounded"}, e.Resolve("card"))

	assert.ErrorIs(t, e.Register("card", constGenerator(Fragment{})), ErrDuplicatePrefix)
	assert.ErrorIs(t, e.Register("bad.prefix", constGenerator(Fragment{})), ErrInvalidPrefix)

	t.Run("DictionaryIsCopy", func(t *testing.T) {
		e.Dictionary().MustRegister("glow", constGenerator(Fragment{"shadowRadius": 8}))
		assert.False(t, e.Has("glow"))
		assert.Empty(t, e.Resolve("glow"))
	})

	t.Run("NewWithDictionaryCopies", func(t *testing.T) {
		dict := NewDictionary()
		dict.MustRegister("only", constGenerator(Fragment{"only": true}))
		engine := NewWithDictionary(dict)
		dict.MustRegister("late", constGenerator(Fragment{"late": true}))

		assert.True(t, engine.Has("only"))
		assert.False(t, engine.Dictionary().Has("late"))
	})
}

func TestComponent(t *testing.T) {
	e, _ := newTestEngine(t, 80)
	e.Extend(Patch{SectionComponents: {
		"button": "bgPrimary p1",
		"panel":  []any{"bgGray", map[string]any{"padding": 4}},
	}})

	button := e.Component("button")
	require.Len(t, button, 2)
	assert.Equal(t, Fragment{"backgroundColor": "#569CD6"}, button[0])
	assert.Equal(t, Fragment{"padding": 1}, button[1])

	panel := e.Component("panel")
	require.Len(t, panel, 2)
	assert.Equal(t, Fragment{"padding": 4}, panel[1])

	assert.Empty(t, e.Component("missing"))
}

// TestEngineConcurrent resolves keys while the theme is being extended
func TestEngineConcurrent(t *testing.T) {
	e, _ := newTestEngine(t, 80)
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				f := e.Resolve("bgBrand")
				if c, ok := f["backgroundColor"]; ok {
					assert.Contains(t, c, "#")
				}
				e.Apply("bgRed", "p2", "textBrand")
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 50; j++ {
			e.Extend(Patch{SectionColors: {"brand": fmt.Sprintf("#%06d", j)}})
		}
	}()
	wg.Wait()

	assert.Equal(t, "#000049", e.Resolve("bgBrand")["backgroundColor"])
}
