package toml

import (
	"bytes"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Marshal encodes a struct or map[string]T as a TOML document
// Struct fields keep declaration order, map keys are sorted
// Scalars precede sub-tables; slices of structs become [[arrays of tables]]
// Nil pointers and `omitempty` zero values are skipped
func Marshal(v any) ([]byte, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("%w: cannot marshal nil pointer", ErrEncode)
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct && rv.Kind() != reflect.Map {
		return nil, fmt.Errorf("%w: root must be struct or map, got %s", ErrEncode, rv.Kind())
	}

	e := &encoder{}
	if err := e.table(rv, ""); err != nil {
		return nil, err
	}
	return e.buf.Bytes(), nil
}

type encoder struct {
	buf bytes.Buffer
}

type entry struct {
	key string
	val reflect.Value
}

// entries lists the encodable members of a struct or map in output order
func entries(rv reflect.Value) ([]entry, error) {
	var out []entry
	switch rv.Kind() {
	case reflect.Struct:
		typ := rv.Type()
		for i := 0; i < typ.NumField(); i++ {
			f := typ.Field(i)
			key := fieldKey(f)
			if key == "" {
				continue
			}
			val := rv.Field(i)
			if strings.Contains(f.Tag.Get("toml"), ",omitempty") && val.IsZero() {
				continue
			}
			out = append(out, entry{key, val})
		}
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map key must be string", ErrEncode)
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		for _, k := range keys {
			out = append(out, entry{k, rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()))})
		}
	}

	// Drop nil pointers and interfaces, unwrap the rest
	kept := out[:0]
	for _, en := range out {
		for en.val.Kind() == reflect.Pointer || en.val.Kind() == reflect.Interface {
			if en.val.IsNil() {
				en.val = reflect.Value{}
				break
			}
			en.val = en.val.Elem()
		}
		if en.val.IsValid() {
			kept = append(kept, en)
		}
	}
	return kept, nil
}

// isTable reports whether v is written under a header rather than inline
func isTable(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Struct, reflect.Map:
		return true
	case reflect.Slice, reflect.Array:
		if v.Len() == 0 {
			return false
		}
		elem := v.Type().Elem()
		for elem.Kind() == reflect.Pointer {
			elem = elem.Elem()
		}
		return elem.Kind() == reflect.Struct || elem.Kind() == reflect.Map
	}
	return false
}

func (e *encoder) table(rv reflect.Value, prefix string) error {
	list, err := entries(rv)
	if err != nil {
		return err
	}

	for _, en := range list {
		if isTable(en.val) {
			continue
		}
		e.buf.WriteString(formatKey(en.key))
		e.buf.WriteString(" = ")
		if err := e.value(en.val); err != nil {
			return fmt.Errorf("key %s: %w", joinPath(prefix, en.key), err)
		}
		e.buf.WriteByte('\n')
	}

	for _, en := range list {
		if !isTable(en.val) {
			continue
		}
		path := joinPath(prefix, formatKey(en.key))

		if en.val.Kind() == reflect.Struct || en.val.Kind() == reflect.Map {
			e.buf.WriteString("\n[" + path + "]\n")
			if err := e.table(en.val, path); err != nil {
				return err
			}
			continue
		}

		for i := 0; i < en.val.Len(); i++ {
			elem := en.val.Index(i)
			for elem.Kind() == reflect.Pointer && !elem.IsNil() {
				elem = elem.Elem()
			}
			if elem.Kind() == reflect.Pointer {
				continue
			}
			e.buf.WriteString("\n[[" + path + "]]\n")
			if err := e.table(elem, path); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *encoder) value(v reflect.Value) error {
	switch v.Kind() {
	case reflect.String:
		e.buf.WriteString(quote(v.String()))
	case reflect.Bool:
		e.buf.WriteString(strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		e.buf.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v.Uint() > math.MaxInt64 {
			return fmt.Errorf("%w: %d overflows a TOML integer", ErrEncode, v.Uint())
		}
		e.buf.WriteString(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		e.buf.WriteString(formatFloat(v.Float()))
	case reflect.Slice, reflect.Array:
		e.buf.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				e.buf.WriteString(", ")
			}
			elem := v.Index(i)
			for elem.Kind() == reflect.Pointer || elem.Kind() == reflect.Interface {
				if elem.IsNil() {
					return fmt.Errorf("%w: nil array element %d", ErrEncode, i)
				}
				elem = elem.Elem()
			}
			if err := e.value(elem); err != nil {
				return err
			}
		}
		e.buf.WriteByte(']')
	default:
		return fmt.Errorf("%w: unsupported value kind %s", ErrEncode, v.Kind())
	}
	return nil
}

// formatFloat always yields a TOML float, never an integer literal
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-5 || abs >= 1e15) {
		format = 'e'
	}
	s := strconv.FormatFloat(f, format, -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func formatKey(k string) string {
	if k == "" {
		return `""`
	}
	for i := 0; i < len(k); i++ {
		if !isBareKeyChar(k[i]) {
			return quote(k)
		}
	}
	return k
}

// quote writes a basic string, escaping quotes, backslashes and control characters
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&sb, `\u%04X`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
