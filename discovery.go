// FILE: lixenwraith/classkit/discovery.go
package classkit

import (
	"os"
	"path/filepath"
	"strings"
)

// FileDiscoveryOptions configures automatic theme file discovery
type FileDiscoveryOptions struct {
	// Base name of theme file (without extension)
	Name string

	// Extensions to try (in order)
	Extensions []string

	// Custom search paths (in addition to defaults)
	Paths []string

	// Environment variable to check for explicit path
	EnvVar string

	// Whether to search in XDG config directories
	UseXDG bool

	// Whether to search in current directory
	UseCurrentDir bool
}

// DefaultDiscoveryOptions returns sensible defaults
func DefaultDiscoveryOptions(appName string) FileDiscoveryOptions {
	return FileDiscoveryOptions{
		Name:          appName,
		Extensions:    []string{".toml", ".yaml", ".yml", ".json"},
		EnvVar:        strings.ToUpper(appName) + "_THEME",
		UseXDG:        true,
		UseCurrentDir: true,
	}
}

// DiscoverFile returns the first theme file found, or "" when none exists.
// An explicit path from EnvVar is returned without checking it exists, so a
// mistyped path surfaces as ErrThemeNotFound when the file is loaded.
func DiscoverFile(opts FileDiscoveryOptions) string {
	if opts.EnvVar != "" {
		if path := os.Getenv(opts.EnvVar); path != "" {
			return path
		}
	}

	for _, path := range opts.candidates() {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// candidates lists every file path to try, directories first, then extensions.
func (opts FileDiscoveryOptions) candidates() []string {
	dirs := append([]string(nil), opts.Paths...)
	if opts.UseCurrentDir {
		if cwd, err := os.Getwd(); err == nil {
			dirs = append(dirs, cwd)
		}
	}
	if opts.UseXDG {
		dirs = append(dirs, getXDGConfigPaths(opts.Name)...)
	}

	paths := make([]string, 0, len(dirs)*len(opts.Extensions))
	for _, dir := range dirs {
		for _, ext := range opts.Extensions {
			paths = append(paths, filepath.Join(dir, opts.Name+ext))
		}
	}
	return paths
}

// WithFileDiscovery sets the theme file to the first one discovered.
// Finding nothing is not an error; the engine runs with defaults.
func (b *Builder) WithFileDiscovery(opts FileDiscoveryOptions) *Builder {
	if path := DiscoverFile(opts); path != "" {
		b.file = path
	}
	return b
}

// getXDGConfigPaths returns XDG-compliant config search paths
func getXDGConfigPaths(appName string) []string {
	var paths []string

	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		paths = append(paths, filepath.Join(xdgHome, appName))
	} else if home := os.Getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", appName))
	}

	if xdgDirs := os.Getenv("XDG_CONFIG_DIRS"); xdgDirs != "" {
		for _, dir := range filepath.SplitList(xdgDirs) {
			paths = append(paths, filepath.Join(dir, appName))
		}
	} else {
		paths = append(paths,
			filepath.Join("/etc/xdg", appName),
			filepath.Join("/etc", appName),
		)
	}

	return paths
}
