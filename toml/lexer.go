package toml

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// scanner holds the byte cursor shared by the grammar in parser.go
type scanner struct {
	src []byte
	pos int
}

func (s *scanner) eof() bool { return s.pos >= len(s.src) }

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) peekAt(off int) byte {
	if s.pos+off >= len(s.src) {
		return 0
	}
	return s.src[s.pos+off]
}

// errorf builds a SyntaxError at the cursor
func (s *scanner) errorf(format string, args ...any) error {
	line, col := 1, 1
	end := min(s.pos, len(s.src))
	for _, c := range s.src[:end] {
		if c == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return &SyntaxError{Line: line, Col: col, Msg: fmt.Sprintf(format, args...)}
}

// skipSpace skips blanks within a line
func (s *scanner) skipSpace() {
	for !s.eof() {
		switch s.peek() {
		case ' ', '\t':
			s.pos++
		default:
			return
		}
	}
}

// skipComment skips a comment up to, not including, the newline
func (s *scanner) skipComment() {
	if s.peek() != '#' {
		return
	}
	for !s.eof() && s.peek() != '\n' {
		s.pos++
	}
}

// skipBlank skips whitespace, comments and newlines
func (s *scanner) skipBlank() {
	for !s.eof() {
		switch s.peek() {
		case ' ', '\t', '\r', '\n':
			s.pos++
		case '#':
			s.skipComment()
		default:
			return
		}
	}
}

// endLine consumes trailing blanks and a comment, then requires newline or EOF
func (s *scanner) endLine() error {
	s.skipSpace()
	s.skipComment()
	if s.peek() == '\r' && s.peekAt(1) == '\n' {
		s.pos++
	}
	if s.eof() {
		return nil
	}
	if s.peek() != '\n' {
		return s.errorf("expected end of line, found %q", s.peek())
	}
	s.pos++
	return nil
}

func isBareKeyChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '-'
}

// key reads a possibly dotted key
func (s *scanner) key() ([]string, error) {
	var parts []string
	for {
		s.skipSpace()
		var part string
		switch c := s.peek(); {
		case c == '"':
			str, err := s.basicString()
			if err != nil {
				return nil, err
			}
			part = str
		case c == '\'':
			str, err := s.literalString()
			if err != nil {
				return nil, err
			}
			part = str
		case isBareKeyChar(c):
			start := s.pos
			for !s.eof() && isBareKeyChar(s.peek()) {
				s.pos++
			}
			part = string(s.src[start:s.pos])
		default:
			return nil, s.errorf("expected key, found %q", c)
		}
		parts = append(parts, part)

		s.skipSpace()
		if s.peek() != '.' {
			return parts, nil
		}
		s.pos++
	}
}

// basicString reads a "double quoted" string with escapes
func (s *scanner) basicString() (string, error) {
	s.pos++ // opening quote
	var sb strings.Builder
	for {
		if s.eof() {
			return "", s.errorf("unterminated string")
		}
		c := s.peek()
		switch c {
		case '"':
			s.pos++
			return sb.String(), nil
		case '\n':
			return "", s.errorf("newline in basic string")
		case '\\':
			s.pos++
			r, err := s.escape()
			if err != nil {
				return "", err
			}
			sb.WriteRune(r)
		default:
			if c < 0x20 && c != '\t' {
				return "", s.errorf("control character %#x in string", c)
			}
			sb.WriteByte(c)
			s.pos++
		}
	}
}

func (s *scanner) escape() (rune, error) {
	c := s.peek()
	s.pos++
	switch c {
	case '"':
		return '"', nil
	case '\\':
		return '\\', nil
	case 'b':
		return '\b', nil
	case 't':
		return '\t', nil
	case 'n':
		return '\n', nil
	case 'f':
		return '\f', nil
	case 'r':
		return '\r', nil
	case 'u', 'U':
		n := 4
		if c == 'U' {
			n = 8
		}
		if s.pos+n > len(s.src) {
			return 0, s.errorf("short unicode escape")
		}
		v, err := strconv.ParseUint(string(s.src[s.pos:s.pos+n]), 16, 32)
		if err != nil || !utf8.ValidRune(rune(v)) {
			return 0, s.errorf("invalid unicode escape %q", s.src[s.pos:s.pos+n])
		}
		s.pos += n
		return rune(v), nil
	}
	return 0, s.errorf("invalid escape \\%c", c)
}

// literalString reads a 'single quoted' string verbatim
func (s *scanner) literalString() (string, error) {
	s.pos++
	start := s.pos
	for !s.eof() {
		switch s.peek() {
		case '\'':
			str := string(s.src[start:s.pos])
			s.pos++
			return str, nil
		case '\n':
			return "", s.errorf("newline in literal string")
		}
		s.pos++
	}
	return "", s.errorf("unterminated literal string")
}

func isScalarChar(c byte) bool {
	return isBareKeyChar(c) || c == '+' || c == '.'
}

// scalar reads a boolean, integer or float
func (s *scanner) scalar() (any, error) {
	start := s.pos
	for !s.eof() && isScalarChar(s.peek()) {
		s.pos++
	}
	lit := string(s.src[start:s.pos])
	if lit == "" {
		return nil, s.errorf("expected value, found %q", s.peek())
	}

	switch lit {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "inf", "+inf":
		return math.Inf(1), nil
	case "-inf":
		return math.Inf(-1), nil
	case "nan", "+nan", "-nan":
		return math.NaN(), nil
	}

	digits, err := s.stripUnderscores(lit)
	if err != nil {
		return nil, err
	}

	unsigned := strings.TrimLeft(digits, "+-")
	if len(unsigned) > 2 && unsigned[0] == '0' {
		base := 0
		switch unsigned[1] {
		case 'x':
			base = 16
		case 'o':
			base = 8
		case 'b':
			base = 2
		}
		if base != 0 {
			if unsigned != digits {
				return nil, s.errorf("sign on prefixed integer %q", lit)
			}
			v, err := strconv.ParseInt(unsigned[2:], base, 64)
			if err != nil {
				return nil, s.errorf("invalid integer %q", lit)
			}
			return v, nil
		}
	}

	if strings.ContainsAny(digits, ".eE") {
		if strings.HasPrefix(unsigned, ".") || strings.Contains(unsigned, ".e") || strings.Contains(unsigned, ".E") || strings.HasSuffix(unsigned, ".") {
			return nil, s.errorf("invalid float %q", lit)
		}
		v, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			return nil, s.errorf("invalid float %q", lit)
		}
		return v, nil
	}

	if len(unsigned) > 1 && unsigned[0] == '0' {
		return nil, s.errorf("leading zero in integer %q", lit)
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return nil, s.errorf("invalid integer %q", lit)
	}
	return v, nil
}

// stripUnderscores removes digit separators, each must sit between two digits
func (s *scanner) stripUnderscores(lit string) (string, error) {
	if !strings.Contains(lit, "_") {
		return lit, nil
	}
	var sb strings.Builder
	for i := 0; i < len(lit); i++ {
		if lit[i] != '_' {
			sb.WriteByte(lit[i])
			continue
		}
		if i == 0 || i == len(lit)-1 || !isHexDigit(lit[i-1]) || !isHexDigit(lit[i+1]) {
			return "", s.errorf("misplaced underscore in %q", lit)
		}
	}
	return sb.String(), nil
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
