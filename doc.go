// File: lixenwraith/classkit/doc.go

// Package classkit resolves compact utility class keys such as "bgRed",
// "mt_2" or "textCenter" into style fragments, driven by a mutable theme.
//
// Features:
//   - Prefix/modifier key parsing with a pluggable generator dictionary
//   - Theme sections (colors, fonts, sizing, layout, components, classes)
//   - Memoized resolution with cache invalidation on every theme change
//   - Apply and ClassNames composition helpers
//   - Width-based responsive selection over named breakpoints
//   - Theme patches from Go values, TOML, YAML, JSON and environment variables
//   - Theme file discovery and live reload by polling
//   - Lipgloss rendering of resolved fragments
//
// Quick Start:
//
//	kit, err := classkit.Quick("theme.toml", "CLASSKIT_")
//	if err != nil && !errors.Is(err, classkit.ErrThemeNotFound) {
//	    log.Fatal(err)
//	}
//
//	frags := kit.Apply("bgPrimary", "p2", "textCenter")
//	style := kit.Render("bgPrimary", "p2", "textCenter")
//	fmt.Println(style.Render("hello"))
//
// Theme changes go through Extend only:
//
//	kit.Extend(classkit.Patch{
//	    "colors":  {"brand": "#FF8800"},
//	    "classes": {"card": classkit.Fragment{"padding": 2}},
//	})
//	kit.Resolve("bgBrand") // {backgroundColor: #FF8800}
//	kit.Resolve("card")    // {padding: 2}
//
// Theme precedence when using the Builder (highest to lowest):
//  1. Environment variables (CLASSKIT_COLORS_PRIMARY=#FF0000)
//  2. Theme file (theme.toml)
//  3. Patches given with WithPatch
//  4. Default theme
//
// Thread Safety:
// All operations are thread-safe. Resolutions share a read lock; Extend
// takes the write lock so cache invalidation and the theme merge are seen
// as a single step.
package classkit
