// FILE: lixenwraith/classkit/loader_test.go
package classkit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtendFile tests theme patches in every supported format
func TestExtendFile(t *testing.T) {
	tmpDir := t.TempDir()

	files := map[string]string{
		"theme.toml": `
[colors]
brand = "#FF8800"

[sizing]
base = 2

[classes]
card = { padding = 1, borderStyle = "rounded" }
`,
		"theme.yaml": `
colors:
  brand: "#FF8800"
sizing:
  base: 2
classes:
  card:
    padding: 1
    borderStyle: rounded
`,
		"theme.json": `{
  "colors": {"brand": "#FF8800"},
  "sizing": {"base": 2},
  "classes": {"card": {"padding": 1, "borderStyle": "rounded"}}
}`,
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(tmpDir, name)
			require.NoError(t, os.WriteFile(path, []byte(content), 0644))

			e, _ := newTestEngine(t, 80)
			changed, err := e.ExtendFile(path)
			require.NoError(t, err)
			assert.ElementsMatch(t, []string{"colors.brand", "sizing.base", "classes.card"}, changed)

			assert.Equal(t, "#FF8800", e.Resolve("bgBrand")["backgroundColor"])
			// p3 scales with sizing.base
			assert.Equal(t, 6, e.Resolve("p3")["padding"])

			card := e.Resolve("card")
			assert.Equal(t, "rounded", card["borderStyle"])
			n, err := toInt64(card["padding"], "classes.card.padding")
			require.NoError(t, err)
			assert.Equal(t, int64(1), n)
		})
	}
}

func TestExtendFileErrors(t *testing.T) {
	e, _ := newTestEngine(t, 80)

	t.Run("Missing", func(t *testing.T) {
		_, err := e.ExtendFile(filepath.Join(t.TempDir(), "nope.toml"))
		assert.ErrorIs(t, err, ErrThemeNotFound)
	})

	t.Run("Malformed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("[colors\nbrand = "), 0644))
		_, err := e.ExtendFile(path)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrThemeNotFound)
	})

	t.Run("StateUnchangedOnError", func(t *testing.T) {
		assert.Equal(t, "#569CD6", e.Resolve("bgPrimary")["backgroundColor"])
	})
}

// TestParsePatch tests format detection and top-level filtering
func TestParsePatch(t *testing.T) {
	t.Run("AutoJSON", func(t *testing.T) {
		patch, err := ParsePatch([]byte(`{"colors": {"brand": "#010203"}}`), FormatAuto)
		require.NoError(t, err)
		assert.Equal(t, "#010203", patch["colors"]["brand"])
	})

	t.Run("AutoTOML", func(t *testing.T) {
		patch, err := ParsePatch([]byte("[colors]\nbrand = \"#010203\"\n"), FormatAuto)
		require.NoError(t, err)
		assert.Equal(t, "#010203", patch["colors"]["brand"])
	})

	t.Run("AutoYAML", func(t *testing.T) {
		patch, err := ParsePatch([]byte("colors:\n  brand: \"#010203\"\n"), "")
		require.NoError(t, err)
		assert.Equal(t, "#010203", patch["colors"]["brand"])
	})

	t.Run("NonTableDropped", func(t *testing.T) {
		patch, err := ParsePatch([]byte("title = \"x\"\n[colors]\nbrand = \"#010203\"\n"), FormatTOML)
		require.NoError(t, err)
		assert.NotContains(t, patch, "title")
		assert.Contains(t, patch, "colors")
	})

	t.Run("YAMLOrder", func(t *testing.T) {
		_, order, err := parsePatch([]byte("layout:\n  zeta: {lte: 10}\n  alpha: {gte: 5}\n"), FormatYAML)
		require.NoError(t, err)
		assert.Equal(t, []string{"zeta", "alpha"}, order[SectionLayout])
	})

	t.Run("Unsupported", func(t *testing.T) {
		_, err := ParsePatch([]byte("x"), "ini")
		assert.Error(t, err)
	})
}

// TestExtendEnv tests environment overrides
func TestExtendEnv(t *testing.T) {
	t.Setenv("CKTEST_COLORS_BRAND", "#ABCDEF")
	t.Setenv("CKTEST_SIZING_BASE", "3")
	t.Setenv("CKTEST_BOGUS_ENTRY", "ignored")
	t.Setenv("CKTEST_NOSEPARATOR", "ignored")

	e, _ := newTestEngine(t, 80)
	changed, err := e.ExtendEnv("CKTEST_")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"colors.brand", "sizing.base"}, changed)

	assert.Equal(t, "#ABCDEF", e.Resolve("bgBrand")["backgroundColor"])
	assert.Equal(t, 6, e.Resolve("m2")["margin"])

	base, err := e.Theme().Int64("sizing.base")
	require.NoError(t, err)
	assert.Equal(t, int64(3), base)
}

func TestEnvPatch(t *testing.T) {
	t.Run("ValueSizeLimit", func(t *testing.T) {
		huge := "X_COLORS_BIG=" + strings.Repeat("a", MaxValueSize+1)
		_, err := envPatch("X_", []string{huge})
		assert.ErrorIs(t, err, ErrValueSize)
	})

	t.Run("Lowercased", func(t *testing.T) {
		patch, err := envPatch("X_", []string{"X_COLORS_DEEP_BLUE=#000080", "Y_COLORS_RED=#000000"})
		require.NoError(t, err)
		assert.Equal(t, Patch{"colors": {"deep_blue": "#000080"}}, patch)
	})
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, true, parseValue("true"))
	assert.Equal(t, false, parseValue("false"))
	assert.Equal(t, int64(42), parseValue("42"))
	assert.Equal(t, 1.5, parseValue("1.5"))
	assert.Equal(t, "42", parseValue(`"42"`))
	assert.Equal(t, "#FF0000", parseValue("#FF0000"))
}
