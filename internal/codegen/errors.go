// Package codegen lowers a Pascal AST to C++ source text.
package codegen

import (
	"fmt"

	"github.com/rjmorel/pas2cpp/internal/token"
)

// CodeGenError reports a condition that makes the AST impossible to
// lower faithfully: an array dimension whose bounds are not literal
// integers (§4.4, §9 Open Questions — the array-fallback-size policy
// decided here is outright rejection rather than a silently-wrong
// fixed-size or dynamically-sized substitute). It is a sibling of
// LexerError/ParserError, added to keep the fail-fast policy uniform
// across all three pipeline stages.
type CodeGenError struct {
	Pos     token.Position
	Message string
}

func (e *CodeGenError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return e.Message
}

func fail(format string, args ...any) {
	panic(&CodeGenError{Message: fmt.Sprintf(format, args...)})
}

func failAt(pos token.Position, format string, args ...any) {
	panic(&CodeGenError{Pos: pos, Message: fmt.Sprintf(format, args...)})
}
