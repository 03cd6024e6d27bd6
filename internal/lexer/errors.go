package lexer

import (
	"fmt"

	"github.com/rjmorel/pas2cpp/internal/token"
)

// LexerError reports a failure encountered while tokenizing source text:
// an unterminated comment or string literal, a malformed real exponent,
// or a character outside the recognized alphabet (§4.1, §7).
type LexerError struct {
	Pos     token.Position
	Message string
}

func (e *LexerError) Error() string {
	return fmt.Sprintf("lexer error: %s at %s", e.Message, e.Pos)
}
