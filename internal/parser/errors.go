// Package parser builds an AST from a Pascal token sequence.
package parser

import (
	"fmt"

	"github.com/rjmorel/pas2cpp/internal/token"
)

// ParseError reports a syntax error at a source position, carrying the
// offending token's description (§4.2, §7). The parser does not
// resynchronize: the first ParseError aborts parsing.
type ParseError struct {
	Pos     token.Position
	Message string
	Got     string
}

func (e *ParseError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return e.Message
}

func errorf(pos token.Position, format string, args ...any) *ParseError {
	return &ParseError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}

func expectedError(pos token.Position, want, got string) *ParseError {
	return &ParseError{
		Pos:     pos,
		Message: fmt.Sprintf("expected %s, got %s", want, got),
		Got:     got,
	}
}
