// FILE: lixenwraith/classkit/decode.go
package classkit

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// decodeValue is the single decoding path from raw theme values into typed
// targets. Theme values come from Go patches, TOML, YAML or JSON, so numeric
// types vary; weak typing absorbs the difference.
func decodeValue(input, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("decode target must be non-nil pointer, got %T", target)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "toml",
		WeaklyTypedInput: true,
		DecodeHook:       decodeHook(),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	return nil
}

// decodeHook returns the composite decode hook for theme values
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		fragmentToMapHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// fragmentToMapHookFunc presents Fragment values as plain maps so they decode into structs
func fragmentToMapHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if frag, ok := data.(Fragment); ok {
			return map[string]any(frag), nil
		}
		return data, nil
	}
}

// Scan decodes a theme section, or a single "section.entry" value, into target.
// The target must be a non-nil pointer to a struct or map; struct fields map
// through the "toml" tag.
func (t *Theme) Scan(path string, target any) error {
	path = strings.TrimSuffix(path, ".")

	var data any
	if section, name, isEntry := strings.Cut(path, "."); isEntry {
		v, ok := t.Entry(section, name)
		if !ok {
			return fmt.Errorf("theme path not found: %s", path)
		}
		data = v
	} else {
		if !t.HasSection(path) {
			return fmt.Errorf("theme section not found: %s", path)
		}
		data = t.Section(path)
	}

	if err := decodeValue(data, target); err != nil {
		return fmt.Errorf("failed to scan %q into %T: %w", path, target, err)
	}
	return nil
}
