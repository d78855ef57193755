// FILE: lixenwraith/classkit/builtin.go
package classkit

import (
	"strings"
)

// Builtin returns a new dictionary holding the built-in generators.
// The returned dictionary is independent; registering on it does not affect others.
//
//	bg<Color>                      backgroundColor
//	text<Color> | text<Align>      color | textAlign
//	border[<n>|Hairline|<Style>|<Color>]
//	m, mt, mb, ml, mr, mx, my [<n>|_<n>|<Size>]   margins, _ negates
//	p, pt, pb, pl, pr, px, py [<n>|<Size>]        paddings
//	w, h [<n>|<Size>|Half|Third|Quarter|Full]
//	font<n|Size>, weight<Name|1-9>, family<Font>, radius[<n>|<Size>]
//	shadow[Sm|Md|Lg|Xl], flex[<n>], row[Reverse], col[Reverse]
//	items<Align>, justify<Align>, uppercase, lowercase, capitalize,
//	bold, italic, underline, strike
func Builtin() *Dictionary {
	d := NewDictionary()

	d.MustRegister("bg", colorProperty("backgroundColor"))
	d.MustRegister("text", textGenerator)
	d.MustRegister("border", borderGenerator)

	spacing := map[string][]string{
		"m":  {"margin"},
		"mt": {"marginTop"},
		"mb": {"marginBottom"},
		"ml": {"marginLeft"},
		"mr": {"marginRight"},
		"mx": {"marginLeft", "marginRight"},
		"my": {"marginTop", "marginBottom"},
		"p":  {"padding"},
		"pt": {"paddingTop"},
		"pb": {"paddingBottom"},
		"pl": {"paddingLeft"},
		"pr": {"paddingRight"},
		"px": {"paddingLeft", "paddingRight"},
		"py": {"paddingTop", "paddingBottom"},
	}
	for _, prefix := range sortedKeys(spacing) {
		d.MustRegister(prefix, sizeProperty(spacing[prefix]...))
	}

	d.MustRegister("w", dimensionProperty("width"))
	d.MustRegister("h", dimensionProperty("height"))
	d.MustRegister("font", sizeProperty("fontSize"))
	d.MustRegister("radius", sizeProperty("borderRadius"))
	d.MustRegister("weight", weightGenerator)
	d.MustRegister("family", familyGenerator)
	d.MustRegister("shadow", shadowGenerator)
	d.MustRegister("flex", flexGenerator)
	d.MustRegister("row", directionGenerator("row"))
	d.MustRegister("col", directionGenerator("column"))
	d.MustRegister("items", alignGenerator("alignItems"))
	d.MustRegister("justify", alignGenerator("justifyContent"))

	d.MustRegister("uppercase", fixed(Fragment{"textTransform": "uppercase"}))
	d.MustRegister("lowercase", fixed(Fragment{"textTransform": "lowercase"}))
	d.MustRegister("capitalize", fixed(Fragment{"textTransform": "capitalize"}))
	d.MustRegister("bold", fixed(Fragment{"fontWeight": "bold"}))
	d.MustRegister("italic", fixed(Fragment{"fontStyle": "italic"}))
	d.MustRegister("underline", fixed(Fragment{"textDecorationLine": "underline"}))
	d.MustRegister("strike", fixed(Fragment{"textDecorationLine": "line-through"}))

	return d
}

// fixed answers only the bare prefix
func fixed(f Fragment) Generator {
	return func(_ *Theme, modifier, _ string) (Fragment, bool) {
		if modifier != "" {
			return nil, false
		}
		return f, true
	}
}

// themeColor looks a modifier up in the colors section
func themeColor(t *Theme, modifier string) (string, bool) {
	return t.Color(modifier)
}

// themeSize resolves numeric modifiers against sizing.base and named
// modifiers against the sizing section. An empty modifier means one base unit.
func themeSize(t *Theme, modifier string) (int64, bool) {
	base, err := t.Int64(SectionSizing + ".base")
	if err != nil {
		base = 1
	}
	if modifier == "" {
		return base, true
	}
	if n, ok := ParseModifier(modifier); ok {
		return scaleSize(int64(n), base)
	}
	return t.Size(modifier)
}

// scaleSize multiplies n by base, declining products beyond MaxModifier.
func scaleSize(n, base int64) (int64, bool) {
	if base == 0 || n == 0 {
		return 0, true
	}
	limit := int64(MaxModifier) / abs64(base)
	if abs64(n) > limit {
		return 0, false
	}
	return n * base, true
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func colorProperty(property string) Generator {
	return func(t *Theme, modifier, _ string) (Fragment, bool) {
		c, ok := themeColor(t, modifier)
		if !ok {
			return nil, false
		}
		return Fragment{property: c}, true
	}
}

func sizeProperty(properties ...string) Generator {
	return func(t *Theme, modifier, _ string) (Fragment, bool) {
		v, ok := themeSize(t, modifier)
		if !ok {
			return nil, false
		}
		f := make(Fragment, len(properties))
		for _, p := range properties {
			f[p] = int(v)
		}
		return f, true
	}
}

var fractions = map[string]string{
	"half":    "50%",
	"third":   "33.333%",
	"quarter": "25%",
	"full":    "100%",
}

func dimensionProperty(property string) Generator {
	size := sizeProperty(property)
	return func(t *Theme, modifier, key string) (Fragment, bool) {
		if pct, ok := fractions[strings.ToLower(modifier)]; ok {
			return Fragment{property: pct}, true
		}
		return size(t, modifier, key)
	}
}

var textAlign = map[string]string{
	"left":    "left",
	"center":  "center",
	"right":   "right",
	"justify": "justify",
}

func textGenerator(t *Theme, modifier, key string) (Fragment, bool) {
	if a, ok := textAlign[strings.ToLower(modifier)]; ok {
		return Fragment{"textAlign": a}, true
	}
	return colorProperty("color")(t, modifier, key)
}

var borderStyles = map[string]bool{
	"normal":  true,
	"rounded": true,
	"thick":   true,
	"double":  true,
	"hidden":  true,
}

func borderGenerator(t *Theme, modifier, _ string) (Fragment, bool) {
	lower := strings.ToLower(modifier)
	switch {
	case modifier == "", lower == "hairline":
		return Fragment{"borderWidth": 1}, true
	case borderStyles[lower]:
		return Fragment{"borderStyle": lower}, true
	}
	if n, ok := ParseModifier(modifier); ok && n >= 0 {
		return Fragment{"borderWidth": n}, true
	}
	if c, ok := themeColor(t, modifier); ok {
		return Fragment{"borderColor": c}, true
	}
	return nil, false
}

var weights = map[string]string{
	"thin":     "100",
	"light":    "300",
	"normal":   "normal",
	"medium":   "500",
	"semibold": "600",
	"bold":     "bold",
	"black":    "900",
}

func weightGenerator(_ *Theme, modifier, _ string) (Fragment, bool) {
	if w, ok := weights[strings.ToLower(modifier)]; ok {
		return Fragment{"fontWeight": w}, true
	}
	if len(modifier) == 1 && modifier[0] >= '1' && modifier[0] <= '9' {
		return Fragment{"fontWeight": modifier + "00"}, true
	}
	return nil, false
}

func familyGenerator(t *Theme, modifier, _ string) (Fragment, bool) {
	if modifier == "" {
		return nil, false
	}
	v, ok := t.Entry(SectionFonts, modifier)
	if !ok {
		return nil, false
	}
	name, isString := v.(string)
	if !isString {
		return nil, false
	}
	return Fragment{"fontFamily": name}, true
}

var shadowDepth = map[string]int{
	"":   2,
	"sm": 1,
	"md": 4,
	"lg": 8,
	"xl": 12,
}

func shadowGenerator(t *Theme, modifier, _ string) (Fragment, bool) {
	depth, ok := shadowDepth[strings.ToLower(modifier)]
	if !ok {
		return nil, false
	}
	color, ok := themeColor(t, "black")
	if !ok {
		color = "#000000"
	}
	return Fragment{
		"shadowColor":   color,
		"shadowOpacity": 0.1 + 0.02*float64(depth),
		"shadowRadius":  depth,
		"elevation":     depth,
	}, true
}

func flexGenerator(_ *Theme, modifier, _ string) (Fragment, bool) {
	if modifier == "" {
		return Fragment{"flex": 1}, true
	}
	if n, ok := ParseModifier(modifier); ok && n >= 0 {
		return Fragment{"flex": n}, true
	}
	return nil, false
}

func directionGenerator(direction string) Generator {
	return func(_ *Theme, modifier, _ string) (Fragment, bool) {
		switch strings.ToLower(modifier) {
		case "":
			return Fragment{"flexDirection": direction}, true
		case "reverse":
			return Fragment{"flexDirection": direction + "-reverse"}, true
		}
		return nil, false
	}
}

var alignments = map[string]string{
	"start":    "flex-start",
	"end":      "flex-end",
	"center":   "center",
	"stretch":  "stretch",
	"baseline": "baseline",
	"between":  "space-between",
	"around":   "space-around",
	"evenly":   "space-evenly",
}

func alignGenerator(property string) Generator {
	return func(_ *Theme, modifier, _ string) (Fragment, bool) {
		a, ok := alignments[strings.ToLower(modifier)]
		if !ok {
			return nil, false
		}
		return Fragment{property: a}, true
	}
}
