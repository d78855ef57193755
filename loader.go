// FILE: lixenwraith/classkit/loader.go
package classkit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Theme file formats
const (
	FormatTOML = "toml"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatAuto = "auto"
)

// ExtendFile reads a theme patch from a TOML, JSON or YAML file and extends
// the theme with it. The format is detected from the extension, then from
// the content. Entry declaration order is preserved for TOML and YAML.
// It returns the "section.entry" paths whose value changed.
func (e *Engine) ExtendFile(path string) ([]string, error) {
	patch, order, err := loadPatchFile(path)
	if err != nil {
		return nil, err
	}
	return e.extend(patch, order), nil
}

// ExtendEnv extends the theme from environment variables named
// PREFIX + SECTION + "_" + ENTRY, e.g. CLASSKIT_COLORS_PRIMARY=#FF0000.
// Values "true"/"false" become booleans, integers and floats are parsed,
// surrounding quotes are removed. Variables naming unknown sections are ignored.
func (e *Engine) ExtendEnv(prefix string) ([]string, error) {
	patch, err := envPatch(prefix, os.Environ())
	if err != nil {
		return nil, err
	}
	if len(patch) == 0 {
		return nil, nil
	}
	return e.extend(patch, nil), nil
}

// ParsePatch parses theme data in the given format ("toml", "json", "yaml" or "auto").
func ParsePatch(data []byte, format string) (Patch, error) {
	patch, _, err := parsePatch(data, format)
	return patch, err
}

// LoadPatchFile reads a theme patch file without applying it.
func LoadPatchFile(path string) (Patch, error) {
	patch, _, err := loadPatchFile(path)
	return patch, err
}

func loadPatchFile(path string) (Patch, patchOrder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s", ErrThemeNotFound, path)
		}
		return nil, nil, fmt.Errorf("failed to read theme file '%s': %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = FormatAuto
	}

	patch, order, err := parsePatch(data, format)
	if err != nil {
		return nil, nil, fmt.Errorf("theme file '%s': %w", path, err)
	}
	return patch, order, nil
}

func parsePatch(data []byte, format string) (Patch, patchOrder, error) {
	if format == "" || format == FormatAuto {
		format = detectFormatFromContent(data)
		if format == "" {
			return nil, nil, fmt.Errorf("unable to determine theme format")
		}
	}

	doc := make(map[string]any)
	order := make(patchOrder)

	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse TOML theme: %w", err)
		}
		for _, key := range md.Keys() {
			if len(key) == 2 {
				order[key[0]] = append(order[key[0]], key[1])
			}
		}

	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&doc); err != nil {
			return nil, nil, fmt.Errorf("failed to parse JSON theme: %w", err)
		}

	case FormatYAML:
		var root yaml.Node
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, nil, fmt.Errorf("failed to parse YAML theme: %w", err)
		}
		if err := root.Decode(&doc); err != nil {
			return nil, nil, fmt.Errorf("failed to decode YAML theme: %w", err)
		}
		yamlOrder(&root, order)

	default:
		return nil, nil, fmt.Errorf("unsupported theme format %q", format)
	}

	for k, v := range doc {
		doc[k] = normalizeValue(v)
	}
	return flattenPatch(doc), order, nil
}

// yamlOrder records second-level mapping keys in document order
func yamlOrder(root *yaml.Node, order patchOrder) {
	node := root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		section, body := node.Content[i].Value, node.Content[i+1]
		if body.Kind != yaml.MappingNode {
			continue
		}
		for j := 0; j+1 < len(body.Content); j += 2 {
			order[section] = append(order[section], body.Content[j].Value)
		}
	}
}

// detectFileFormat determines the format from the file extension
func detectFileFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml", ".tml":
		return FormatTOML
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) string {
	// Try JSON first (strict format)
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return FormatJSON
	}

	// TOML before YAML: a TOML table header is valid YAML flow syntax
	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return FormatTOML
	}

	var yamlTest map[string]any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return FormatYAML
	}

	return ""
}

// envPatch builds a patch from environment entries carrying prefix
func envPatch(prefix string, environ []string) (Patch, error) {
	patch := make(Patch)
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, prefix) {
			continue
		}
		section, entry, ok := strings.Cut(strings.TrimPrefix(name, prefix), "_")
		if !ok || section == "" || entry == "" {
			continue
		}
		if len(value) > MaxValueSize {
			return nil, fmt.Errorf("%w: %s", ErrValueSize, name)
		}

		section = strings.ToLower(section)
		if patch[section] == nil {
			patch[section] = make(map[string]any)
		}
		patch[section][strings.ToLower(entry)] = parseValue(value)
	}
	return patch, nil
}

// parseValue attempts to parse a string into appropriate types
func parseValue(s string) any {
	if s == "true" {
		return true
	}
	if s == "false" {
		return false
	}

	// Remove quotes if present
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// Save writes the current theme to a TOML file atomically.
func (t *Theme) Save(path string) error {
	data, err := t.MarshalTOML()
	if err != nil {
		return err
	}
	return atomicWriteFile(path, data)
}

// MarshalTOML encodes the current theme as TOML, sections and entries sorted.
func (t *Theme) MarshalTOML() ([]byte, error) {
	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf)
	if err := encoder.Encode(t.nested()); err != nil {
		return nil, fmt.Errorf("failed to marshal theme to TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// atomicWriteFile performs atomic file write
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // Clean up on any error

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
