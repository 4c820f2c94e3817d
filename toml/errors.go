package toml

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSyntax = errors.New("toml: syntax error")
	ErrDecode = errors.New("toml: decode error")
	ErrEncode = errors.New("toml: encode error")
)

// SyntaxError locates a parse failure, 1-based line and column
type SyntaxError struct {
	Line int
	Col  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("toml: line %d col %d: %s", e.Line, e.Col, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// UnknownKeysError lists document keys with no matching struct field, as dotted paths
type UnknownKeysError struct {
	Keys []string
}

func (e *UnknownKeysError) Error() string {
	return "toml: unknown keys: " + strings.Join(e.Keys, ", ")
}

func (e *UnknownKeysError) Unwrap() error { return ErrDecode }
