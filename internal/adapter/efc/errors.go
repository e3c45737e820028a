package efc

import (
	"errors"
	"fmt"
)

// Sentinel errors for the efc package.
// Use errors.Is to check: errors.Is(err, efc.ErrInvalidValue)
var (
	ErrSyntax             = errors.New("efc: syntax error")
	ErrInvalidValue       = errors.New("efc: invalid property value")
	ErrUnsupportedVersion = errors.New("efc: unsupported format version")
)

// ParseError reports a problem at a 1-based line of the input.
type ParseError struct {
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("efc: line %d: %s", e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

func parseErrorf(line int, kind error, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Msg: fmt.Sprintf(format, args...), Err: kind}
}
