// FILE: lixenwraith/classkit/builtin_test.go
package classkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestBuiltinGenerators tests the built-in dictionary against the default theme
func TestBuiltinGenerators(t *testing.T) {
	e, _ := newTestEngine(t, 80)

	tests := []struct {
		key  string
		want Fragment
	}{
		{"bgPrimary", Fragment{"backgroundColor": "#569CD6"}},
		{"textRight", Fragment{"textAlign": "right"}},
		{"textCyan", Fragment{"color": "#56B6C2"}},
		{"borderHairline", Fragment{"borderWidth": 1}},
		{"border2", Fragment{"borderWidth": 2}},
		{"borderThick", Fragment{"borderStyle": "thick"}},
		{"borderRed", Fragment{"borderColor": "#E06C75"}},
		{"m", Fragment{"margin": 1}},
		{"m4", Fragment{"margin": 4}},
		{"mb_1", Fragment{"marginBottom": -1}},
		{"myL", Fragment{"marginTop": 20, "marginBottom": 20}},
		{"pt2", Fragment{"paddingTop": 2}},
		{"wFull", Fragment{"width": "100%"}},
		{"hQuarter", Fragment{"height": "25%"}},
		{"w10", Fragment{"width": 10}},
		{"font3", Fragment{"fontSize": 3}},
		{"radiusS", Fragment{"borderRadius": 14}},
		{"weightBold", Fragment{"fontWeight": "bold"}},
		{"weight7", Fragment{"fontWeight": "700"}},
		{"familySecondary", Fragment{"fontFamily": "sans-serif"}},
		{"flex", Fragment{"flex": 1}},
		{"flex2", Fragment{"flex": 2}},
		{"row", Fragment{"flexDirection": "row"}},
		{"col", Fragment{"flexDirection": "column"}},
		{"colReverse", Fragment{"flexDirection": "column-reverse"}},
		{"itemsCenter", Fragment{"alignItems": "center"}},
		{"justifyEnd", Fragment{"justifyContent": "flex-end"}},
		{"lowercase", Fragment{"textTransform": "lowercase"}},
		{"capitalize", Fragment{"textTransform": "capitalize"}},
		{"strike", Fragment{"textDecorationLine": "line-through"}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Resolve(tt.key))
		})
	}
}

func TestBuiltinShadow(t *testing.T) {
	e, _ := newTestEngine(t, 80)

	f := e.Resolve("shadowLg")
	assert.Equal(t, "#000000", f["shadowColor"])
	assert.Equal(t, 8, f["shadowRadius"])
	assert.Equal(t, 8, f["elevation"])
	assert.InDelta(t, 0.26, f["shadowOpacity"], 1e-9)

	assert.Equal(t, 2, e.Resolve("shadow")["elevation"])
}

// TestBuiltinRejects tests modifiers the generators decline
func TestBuiltinRejects(t *testing.T) {
	e, _ := newTestEngine(t, 80)

	for _, key := range []string{"bg", "bgChartreuse", "weight0", "weightHeavy", "family", "familyMono", "shadowHuge", "flex_1", "rowUp", "itemsLeft", "boldItalic", "borderSquiggly"} {
		_, err := e.Lookup(key)
		assert.ErrorIs(t, err, ErrUnrecognized, key)
	}
}

func TestBuiltinSizingBase(t *testing.T) {
	e, _ := newTestEngine(t, 80)
	e.Extend(Patch{SectionSizing: {"base": 4}})

	assert.Equal(t, Fragment{"padding": 8}, e.Resolve("p2"))
	assert.Equal(t, Fragment{"margin": 4}, e.Resolve("m"))
	// Named sizes are absolute
	assert.Equal(t, Fragment{"fontSize": 16}, e.Resolve("fontM"))
}

// TestSizeBounds tests that oversized numeric modifiers are declined, not wrapped
func TestSizeBounds(t *testing.T) {
	e, rec := newTestEngine(t, 80)

	_, err := e.Lookup("mt99999999999999999999")
	assert.ErrorIs(t, err, ErrUnrecognized)
	assert.Equal(t, 0, e.CacheStats().Entries)

	// sizing.base scales numeric modifiers, the product is bounded too
	e.Extend(Patch{SectionSizing: {"base": 4}})
	_, err = e.Lookup("p1000000000")
	assert.ErrorIs(t, err, ErrUnrecognized)
	assert.Equal(t, Fragment{"padding": 4000}, e.Resolve("p1000"))
	assert.Equal(t, Fragment{"marginTop": -8}, e.Resolve("mt_2"))

	assert.Len(t, rec.Diagnostics(), 2)
}

func TestScaleSize(t *testing.T) {
	n, ok := scaleSize(3, 2)
	assert.True(t, ok)
	assert.Equal(t, int64(6), n)

	n, ok = scaleSize(-3, 2)
	assert.True(t, ok)
	assert.Equal(t, int64(-6), n)

	n, ok = scaleSize(5, 0)
	assert.True(t, ok)
	assert.Equal(t, int64(0), n)

	_, ok = scaleSize(MaxModifier, 2)
	assert.False(t, ok)
	_, ok = scaleSize(-MaxModifier, -2)
	assert.False(t, ok)
}
