// File: lixenwraith/classkit/type.go
package classkit

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// value fetches a "section.entry" value or reports the missing path.
func (t *Theme) value(path string) (any, error) {
	val, found := t.Get(path)
	if !found {
		return nil, fmt.Errorf("theme path not found: %s", path)
	}
	return val, nil
}

// String retrieves a string theme value by "section.entry" path.
// Numbers, booleans and Stringers are formatted; nil reads as "".
func (t *Theme) String(path string) (string, error) {
	val, err := t.value(path)
	if err != nil {
		return "", err
	}

	switch v := val.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	case []byte:
		return string(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	}
	return "", conversionError(val, "string", path, nil)
}

// Int64 retrieves an integer theme value by path. Floats are truncated and
// numeric strings (JSON numbers included) are parsed.
func (t *Theme) Int64(path string) (int64, error) {
	val, err := t.value(path)
	if err != nil {
		return 0, err
	}
	return toInt64(val, path)
}

// Float64 retrieves a float64 theme value by path.
func (t *Theme) Float64(path string) (float64, error) {
	val, err := t.value(path)
	if err != nil {
		return 0, err
	}
	if val == nil {
		return 0, conversionError(val, "float64", path, nil)
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	case reflect.String:
		f, perr := strconv.ParseFloat(rv.String(), 64)
		if perr != nil {
			return 0, conversionError(val, "float64", path, perr)
		}
		return f, nil
	}
	return 0, conversionError(val, "float64", path, nil)
}

// Bool retrieves a boolean theme value by path. Numbers read as non-zero.
func (t *Theme) Bool(path string) (bool, error) {
	val, err := t.value(path)
	if err != nil {
		return false, err
	}
	if val == nil {
		return false, conversionError(val, "bool", path, nil)
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.String:
		b, perr := strconv.ParseBool(rv.String())
		if perr != nil {
			return false, conversionError(val, "bool", path, perr)
		}
		return b, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0, nil
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0, nil
	}
	return false, conversionError(val, "bool", path, nil)
}

// Color returns the colors section entry name, case-insensitively.
func (t *Theme) Color(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	c, err := t.String(SectionColors + "." + strings.ToLower(name))
	return c, err == nil
}

// Size returns the sizing section entry name, case-insensitively.
func (t *Theme) Size(name string) (int64, bool) {
	if name == "" {
		return 0, false
	}
	n, err := t.Int64(SectionSizing + "." + strings.ToLower(name))
	return n, err == nil
}

// toInt64 converts numeric theme values. Floats are truncated.
func toInt64(val any, path string) (int64, error) {
	if val == nil {
		return 0, conversionError(val, "int64", path, nil)
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if u := rv.Uint(); u <= uint64(1<<63-1) {
			return int64(u), nil
		}
		return 0, fmt.Errorf("unsigned value for path %s overflows int64", path)
	case reflect.Float32, reflect.Float64:
		return int64(rv.Float()), nil
	case reflect.String:
		s := rv.String()
		if i, err := strconv.ParseInt(s, 0, 64); err == nil {
			return i, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, conversionError(val, "int64", path, err)
		}
		return int64(f), nil
	}
	return 0, conversionError(val, "int64", path, nil)
}

// conversionError describes a failed typed read
func conversionError(val any, target, path string, cause error) error {
	if val == nil {
		return fmt.Errorf("value for path %s is nil, cannot convert to %s", path, target)
	}
	if cause != nil {
		return fmt.Errorf("cannot convert %v to %s for path %s: %w", val, target, path, cause)
	}
	return fmt.Errorf("cannot convert type %T to %s for path %s", val, target, path)
}
