package toml

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"
)

// Unmarshal parses data and decodes it into the struct pointed to by v
// Keys without a matching field fail with *UnknownKeysError after all known keys are set
func Unmarshal(data []byte, v any) error {
	doc, err := Parse(data)
	if err != nil {
		return err
	}
	return Decode(doc, v)
}

// Decode maps a parsed document onto v using `toml` tags, falling back to field names
func Decode(doc map[string]any, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer, got %T", ErrDecode, v)
	}

	d := &decoder{}
	if err := d.decode("", doc, rv.Elem()); err != nil {
		return err
	}
	if len(d.unknown) > 0 {
		sort.Strings(d.unknown)
		return &UnknownKeysError{Keys: d.unknown}
	}
	return nil
}

type decoder struct {
	unknown []string
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func (d *decoder) errorf(path string, format string, args ...any) error {
	if path == "" {
		path = "(root)"
	}
	return fmt.Errorf("%w: %s: %s", ErrDecode, path, fmt.Sprintf(format, args...))
}

func (d *decoder) decode(path string, data any, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Pointer:
		elem := reflect.New(v.Type().Elem())
		if err := d.decode(path, data, elem.Elem()); err != nil {
			return err
		}
		v.Set(elem)

	case reflect.Struct:
		t, ok := data.(map[string]any)
		if !ok {
			return d.errorf(path, "expected table, got %T", data)
		}
		return d.decodeStruct(path, t, v)

	case reflect.Slice:
		items, err := d.items(path, data)
		if err != nil {
			return err
		}
		out := reflect.MakeSlice(v.Type(), len(items), len(items))
		for i, item := range items {
			if err := d.decode(fmt.Sprintf("%s[%d]", path, i), item, out.Index(i)); err != nil {
				return err
			}
		}
		v.Set(out)

	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return d.errorf(path, "map key must be string")
		}
		t, ok := data.(map[string]any)
		if !ok {
			return d.errorf(path, "expected table, got %T", data)
		}
		out := reflect.MakeMapWithSize(v.Type(), len(t))
		for k, item := range t {
			elem := reflect.New(v.Type().Elem()).Elem()
			if err := d.decode(joinPath(path, k), item, elem); err != nil {
				return err
			}
			out.SetMapIndex(reflect.ValueOf(k).Convert(v.Type().Key()), elem)
		}
		v.Set(out)

	case reflect.Interface:
		if data != nil {
			v.Set(reflect.ValueOf(data))
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := toInt(data)
		if !ok {
			return d.errorf(path, "expected integer, got %v", data)
		}
		if v.OverflowInt(n) {
			return d.errorf(path, "%d overflows %s", n, v.Type())
		}
		v.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := toInt(data)
		if !ok || n < 0 {
			return d.errorf(path, "expected non-negative integer, got %v", data)
		}
		if v.OverflowUint(uint64(n)) {
			return d.errorf(path, "%d overflows %s", n, v.Type())
		}
		v.SetUint(uint64(n))

	case reflect.Float32, reflect.Float64:
		switch n := data.(type) {
		case float64:
			v.SetFloat(n)
		case int64:
			v.SetFloat(float64(n))
		default:
			return d.errorf(path, "expected number, got %T", data)
		}

	case reflect.String:
		s, ok := data.(string)
		if !ok {
			return d.errorf(path, "expected string, got %T", data)
		}
		v.SetString(s)

	case reflect.Bool:
		b, ok := data.(bool)
		if !ok {
			return d.errorf(path, "expected boolean, got %T", data)
		}
		v.SetBool(b)

	default:
		return d.errorf(path, "unsupported target kind %s", v.Kind())
	}
	return nil
}

// items normalizes arrays and arrays of tables to []any
func (d *decoder) items(path string, data any) ([]any, error) {
	switch a := data.(type) {
	case []any:
		return a, nil
	case []map[string]any:
		out := make([]any, len(a))
		for i := range a {
			out[i] = a[i]
		}
		return out, nil
	}
	return nil, d.errorf(path, "expected array, got %T", data)
}

// toInt accepts integers and integral floats
func toInt(data any) (int64, bool) {
	switch n := data.(type) {
	case int64:
		return n, true
	case float64:
		if n == math.Trunc(n) && math.Abs(n) < 1<<53 {
			return int64(n), true
		}
	}
	return 0, false
}

// fieldKey returns the document key of a struct field, or "" when skipped
func fieldKey(f reflect.StructField) string {
	if !f.IsExported() {
		return ""
	}
	name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

func (d *decoder) decodeStruct(path string, t map[string]any, v reflect.Value) error {
	typ := v.Type()
	seen := make(map[string]bool, len(t))

	for i := 0; i < typ.NumField(); i++ {
		key := fieldKey(typ.Field(i))
		if key == "" {
			continue
		}
		data, ok := t[key]
		if !ok {
			continue
		}
		seen[key] = true
		if err := d.decode(joinPath(path, key), data, v.Field(i)); err != nil {
			return err
		}
	}

	for k := range t {
		if !seen[k] {
			d.unknown = append(d.unknown, joinPath(path, k))
		}
	}
	return nil
}
