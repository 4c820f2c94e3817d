package toml

import (
	"strings"
)

// Parse reads a TOML document into nested maps
// Tables are map[string]any, arrays of tables []map[string]any, arrays []any,
// integers int64, floats float64
// Dates and multi-line strings are not supported
func Parse(data []byte) (map[string]any, error) {
	p := &parser{
		scanner: scanner{src: data},
		root:    make(map[string]any),
		defined: make(map[string]bool),
	}
	p.scope = p.root
	if err := p.document(); err != nil {
		return nil, err
	}
	return p.root, nil
}

type parser struct {
	scanner
	root    map[string]any
	scope   map[string]any  // Table receiving key/value pairs
	defined map[string]bool // Explicit [table] headers seen, by dotted path
}

func (p *parser) document() error {
	for {
		p.skipBlank()
		if p.eof() {
			return nil
		}

		var err error
		if p.peek() == '[' {
			err = p.header()
		} else {
			err = p.keyValue(p.scope)
		}
		if err != nil {
			return err
		}
		if err := p.endLine(); err != nil {
			return err
		}
	}
}

// header handles [table] and [[array.of.tables]]
func (p *parser) header() error {
	p.pos++
	array := p.peek() == '['
	if array {
		p.pos++
	}

	keys, err := p.key()
	if err != nil {
		return err
	}
	p.skipSpace()
	if p.peek() != ']' {
		return p.errorf("expected ] after table name")
	}
	p.pos++
	if array {
		if p.peek() != ']' {
			return p.errorf("expected ]] after array table name")
		}
		p.pos++
	}

	parent := p.root
	for _, k := range keys[:len(keys)-1] {
		next, err := p.descend(parent, k)
		if err != nil {
			return err
		}
		parent = next
	}

	last := keys[len(keys)-1]
	path := strings.Join(keys, ".")

	if array {
		var list []map[string]any
		switch v := parent[last].(type) {
		case nil:
		case []map[string]any:
			list = v
		default:
			return p.errorf("%s is not an array of tables", path)
		}
		t := make(map[string]any)
		parent[last] = append(list, t)
		p.scope = t
		p.forget(path)
		return nil
	}

	if p.defined[path] {
		return p.errorf("table %s defined twice", path)
	}
	switch v := parent[last].(type) {
	case nil:
		t := make(map[string]any)
		parent[last] = t
		p.scope = t
	case map[string]any:
		p.scope = v
	default:
		return p.errorf("%s is not a table", path)
	}
	p.defined[path] = true
	return nil
}

// forget clears header history below path when a new array element starts
func (p *parser) forget(path string) {
	prefix := path + "."
	for k := range p.defined {
		if strings.HasPrefix(k, prefix) {
			delete(p.defined, k)
		}
	}
}

// descend walks into key k of t, creating an implicit table when missing
// Arrays of tables resolve to their last element
func (p *parser) descend(t map[string]any, k string) (map[string]any, error) {
	switch v := t[k].(type) {
	case nil:
		next := make(map[string]any)
		t[k] = next
		return next, nil
	case map[string]any:
		return v, nil
	case []map[string]any:
		if len(v) == 0 {
			return nil, p.errorf("empty array of tables %s", k)
		}
		return v[len(v)-1], nil
	}
	return nil, p.errorf("key %s is not a table", k)
}

func (p *parser) keyValue(scope map[string]any) error {
	keys, err := p.key()
	if err != nil {
		return err
	}
	p.skipSpace()
	if p.peek() != '=' {
		return p.errorf("expected = after key %s", strings.Join(keys, "."))
	}
	p.pos++
	p.skipSpace()

	val, err := p.value()
	if err != nil {
		return err
	}

	t := scope
	for _, k := range keys[:len(keys)-1] {
		if t, err = p.descend(t, k); err != nil {
			return err
		}
	}
	last := keys[len(keys)-1]
	if _, dup := t[last]; dup {
		return p.errorf("duplicate key %s", strings.Join(keys, "."))
	}
	t[last] = val
	return nil
}

func (p *parser) value() (any, error) {
	switch p.peek() {
	case '"':
		return p.basicString()
	case '\'':
		return p.literalString()
	case '[':
		return p.array()
	case '{':
		return p.inlineTable()
	}
	return p.scalar()
}

// array reads [a, b, ...], newlines and comments allowed between elements
func (p *parser) array() ([]any, error) {
	p.pos++
	out := make([]any, 0)
	for {
		p.skipBlank()
		if p.peek() == ']' {
			p.pos++
			return out, nil
		}
		if p.eof() {
			return nil, p.errorf("unterminated array")
		}

		v, err := p.value()
		if err != nil {
			return nil, err
		}
		out = append(out, v)

		p.skipBlank()
		switch p.peek() {
		case ',':
			p.pos++
		case ']':
		default:
			return nil, p.errorf("expected , or ] in array")
		}
	}
}

// inlineTable reads { k = v, ... } on a single line
func (p *parser) inlineTable() (map[string]any, error) {
	p.pos++
	t := make(map[string]any)
	p.skipSpace()
	if p.peek() == '}' {
		p.pos++
		return t, nil
	}
	for {
		if err := p.keyValue(t); err != nil {
			return nil, err
		}
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case '}':
			p.pos++
			return t, nil
		default:
			return nil, p.errorf("expected , or } in inline table")
		}
	}
}
