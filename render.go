// FILE: lixenwraith/classkit/render.go
package classkit

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Render resolves inputs through Apply and converts the result into a
// lipgloss style, using the current viewport width for percentage sizes.
func (e *Engine) Render(inputs ...any) lipgloss.Style {
	return ToStyle(e.viewport(), e.Apply(inputs...)...)
}

// ToStyle merges fragments (last wins) and maps the recognized properties
// onto a lipgloss style. Percentage widths and heights are taken relative
// to viewport. Properties lipgloss cannot express are ignored.
func ToStyle(viewport int, frags ...Fragment) lipgloss.Style {
	merged := MergeFragments(frags...)
	style := lipgloss.NewStyle()

	if c, ok := stringProp(merged, "color"); ok && c != "transparent" {
		style = style.Foreground(lipgloss.Color(c))
	}
	if c, ok := stringProp(merged, "backgroundColor"); ok && c != "transparent" {
		style = style.Background(lipgloss.Color(c))
	}

	if w, ok := stringProp(merged, "fontWeight"); ok {
		if w == "bold" || w >= "600" && len(w) == 3 {
			style = style.Bold(true)
		}
		if w == "100" || w == "200" || w == "300" {
			style = style.Faint(true)
		}
	}
	if s, ok := stringProp(merged, "fontStyle"); ok && s == "italic" {
		style = style.Italic(true)
	}
	if d, ok := stringProp(merged, "textDecorationLine"); ok {
		style = style.Underline(strings.Contains(d, "underline")).
			Strikethrough(strings.Contains(d, "line-through"))
	}
	if tr, ok := stringProp(merged, "textTransform"); ok {
		switch tr {
		case "uppercase":
			style = style.Transform(strings.ToUpper)
		case "lowercase":
			style = style.Transform(strings.ToLower)
		}
	}
	if a, ok := stringProp(merged, "textAlign"); ok {
		switch a {
		case "center":
			style = style.Align(lipgloss.Center)
		case "right":
			style = style.Align(lipgloss.Right)
		default:
			style = style.Align(lipgloss.Left)
		}
	}

	style = applyBox(style, merged, "margin", viewport)
	style = applyBox(style, merged, "padding", viewport)

	if w, ok := lengthProp(merged, "width", viewport); ok {
		style = style.Width(w)
	}
	if h, ok := lengthProp(merged, "height", viewport); ok {
		style = style.Height(h)
	}

	style = applyBorder(style, merged)
	return style
}

// applyBox maps margin*/padding* properties. Negative values clamp to zero.
func applyBox(style lipgloss.Style, f Fragment, kind string, viewport int) lipgloss.Style {
	var top, right, bottom, left int
	set := false

	if v, ok := lengthProp(f, kind, viewport); ok {
		top, right, bottom, left = v, v, v, v
		set = true
	}
	for side, dst := range map[string]*int{"Top": &top, "Right": &right, "Bottom": &bottom, "Left": &left} {
		if v, ok := lengthProp(f, kind+side, viewport); ok {
			*dst = v
			set = true
		}
	}
	if !set {
		return style
	}

	if kind == "margin" {
		return style.Margin(top, right, bottom, left)
	}
	return style.Padding(top, right, bottom, left)
}

func applyBorder(style lipgloss.Style, f Fragment) lipgloss.Style {
	border, hasStyle := lipgloss.Border{}, false
	if s, ok := stringProp(f, "borderStyle"); ok {
		hasStyle = true
		switch s {
		case "rounded":
			border = lipgloss.RoundedBorder()
		case "thick":
			border = lipgloss.ThickBorder()
		case "double":
			border = lipgloss.DoubleBorder()
		case "hidden":
			border = lipgloss.HiddenBorder()
		default:
			border = lipgloss.NormalBorder()
		}
	}

	width, hasWidth := lengthProp(f, "borderWidth", 0)
	color, hasColor := stringProp(f, "borderColor")

	if !hasStyle && !hasWidth && !hasColor {
		return style
	}
	if hasWidth && width == 0 {
		return style
	}
	if !hasStyle {
		border = lipgloss.NormalBorder()
	}

	style = style.BorderStyle(border).
		BorderTop(true).BorderRight(true).BorderBottom(true).BorderLeft(true)
	if hasColor {
		style = style.BorderForeground(lipgloss.Color(color))
	}
	return style
}

func stringProp(f Fragment, key string) (string, bool) {
	v, ok := f[key]
	if !ok || v == nil {
		return "", false
	}
	switch s := v.(type) {
	case string:
		return s, true
	case int:
		return strconv.Itoa(s), true
	case int64:
		return strconv.FormatInt(s, 10), true
	}
	return "", false
}

// lengthProp reads a cell count; "N%" is taken relative to viewport.
func lengthProp(f Fragment, key string, viewport int) (int, bool) {
	v, ok := f[key]
	if !ok || v == nil {
		return 0, false
	}
	if s, isString := v.(string); isString && strings.HasSuffix(s, "%") {
		pct, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil || viewport <= 0 {
			return 0, false
		}
		return clampCells(int(float64(viewport) * pct / 100)), true
	}
	n, err := toInt64(v, key)
	if err != nil {
		return 0, false
	}
	return clampCells(int(n)), true
}

func clampCells(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
