// FILE: lixenwraith/classkit/apply_test.go
package classkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestApply tests input normalization
func TestApply(t *testing.T) {
	e, _ := newTestEngine(t, 80)
	literal := Fragment{"color": "red"}

	t.Run("DropsEmptyInputs", func(t *testing.T) {
		assert.Equal(t, e.Apply(literal), e.Apply(nil, "", literal))
		assert.Equal(t, []Fragment{literal}, e.Apply(nil, "", false, Fragment{}, literal))
	})

	t.Run("KeepsOrder", func(t *testing.T) {
		got := e.Apply("bgRed", literal, "p2")
		require.Len(t, got, 3)
		assert.Equal(t, Fragment{"backgroundColor": "#E06C75"}, got[0])
		assert.Equal(t, literal, got[1])
		assert.Equal(t, Fragment{"padding": 2}, got[2])
	})

	t.Run("FlattensOneLevel", func(t *testing.T) {
		got := e.Apply([]string{"bgRed", "p2"}, []Fragment{literal}, []any{"m1", map[string]any{"x": 1}})
		assert.Len(t, got, 5)

		nested := e.Apply([]any{[]string{"bgRed"}})
		assert.Empty(t, nested)
	})

	t.Run("UnknownKeysDropped", func(t *testing.T) {
		got := e.Apply("notAKey", "bgRed")
		require.Len(t, got, 1)
		assert.Equal(t, "#E06C75", got[0]["backgroundColor"])
	})

	t.Run("Empty", func(t *testing.T) {
		got := e.Apply()
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

// TestClassNames tests conditional class composition
func TestClassNames(t *testing.T) {
	e, _ := newTestEngine(t, 80)

	t.Run("TokensThenLiteral", func(t *testing.T) {
		got := e.ClassNames("bgRed", map[string]bool{"p2": true, "m2": false}, Fragment{"color": "red"})
		require.Len(t, got, 3)
		assert.Equal(t, Fragment{"backgroundColor": "#E06C75"}, got[0])
		assert.Equal(t, Fragment{"padding": 2}, got[1])
		assert.Equal(t, Fragment{"color": "red"}, got[2])
	})

	t.Run("ArrayLiterals", func(t *testing.T) {
		want := []Fragment{{"backgroundColor": "#E06C75"}, {"color": "red"}}
		assert.Equal(t, want, e.ClassNames("bgRed", []any{map[string]any{"color": "red"}}))
		assert.Equal(t, want, e.ClassNames("bgRed", []map[string]any{{"color": "red"}}))
	})

	t.Run("SpaceSeparated", func(t *testing.T) {
		got := e.ClassNames("bgRed  textCenter")
		assert.Len(t, got, 2)
	})

	t.Run("NoLiteral", func(t *testing.T) {
		got := e.ClassNames("p1")
		assert.Equal(t, []Fragment{{"padding": 1}}, got)
	})
}

func TestSplitClassNames(t *testing.T) {
	t.Run("TokensAndLiteral", func(t *testing.T) {
		tokens, literal := SplitClassNames("a", map[string]any{"b": true, "c": false}, map[string]any{"color": "red"})
		assert.Equal(t, []string{"a", "b"}, tokens)
		assert.Equal(t, Fragment{"color": "red"}, literal)
	})

	t.Run("BooleanObject", func(t *testing.T) {
		tokens, literal := SplitClassNames("bgRed textCenter", map[string]any{"p1": true, "m1": false})
		assert.Equal(t, []string{"bgRed", "textCenter", "p1"}, tokens)
		assert.Empty(t, literal)
	})

	t.Run("MixedObjectMergedAsLiteral", func(t *testing.T) {
		tokens, literal := SplitClassNames(map[string]any{"p1": true, "color": "red"})
		assert.Equal(t, []string{"p1"}, tokens)
		assert.Equal(t, Fragment{"p1": true, "color": "red"}, literal)
	})

	t.Run("ConditionalMapSorted", func(t *testing.T) {
		tokens, _ := SplitClassNames(map[string]bool{"zeta": true, "alpha": true, "mid": false})
		assert.Equal(t, []string{"alpha", "zeta"}, tokens)
	})

	t.Run("AnyListMerged", func(t *testing.T) {
		tokens, literal := SplitClassNames([]any{
			Fragment{"color": "red"},
			"ignored",
			[]any{map[string]any{"padding": 1}},
			map[string]any{"color": "blue"},
		})
		assert.Empty(t, tokens)
		assert.Equal(t, Fragment{"color": "blue", "padding": 1}, literal)
	})

	t.Run("MapListMerged", func(t *testing.T) {
		_, literal := SplitClassNames([]map[string]any{{"color": "red"}, {"margin": 2}})
		assert.Equal(t, Fragment{"color": "red", "margin": 2}, literal)
	})

	t.Run("FragmentListMerged", func(t *testing.T) {
		_, literal := SplitClassNames([]Fragment{{"color": "red"}, {"color": "blue", "padding": 1}})
		assert.Equal(t, Fragment{"color": "blue", "padding": 1}, literal)
	})
}

func TestMergeFragments(t *testing.T) {
	merged := MergeFragments(Fragment{"a": 1, "b": 1}, nil, Fragment{"b": 2})
	assert.Equal(t, Fragment{"a": 1, "b": 2}, merged)
	assert.Equal(t, "{a: 1, b: 2}", merged.String())
}
