package pas2cpp

import "fmt"

// LexerError represents a lexical error in Pascal source: an
// unterminated comment or string/char literal, or a character outside
// the dialect's alphabet (§4.1, §7).
type LexerError struct {
	Line    int
	Column  int
	Message string
}

func (e *LexerError) Error() string {
	return fmt.Sprintf("lexer error at %d:%d: %s", e.Line, e.Column, e.Message)
}

// ParserError represents a syntax error in Pascal source (§4.2, §7).
// Parsing never resynchronizes, so a translation run reports exactly
// one of these.
type ParserError struct {
	Line    int
	Column  int
	Message string
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("parser error at %d:%d: %s", e.Line, e.Column, e.Message)
}

// CodeGenError represents a construct the code generator cannot lower
// faithfully, such as an array dimension whose bounds are not literal
// integers (§4.4, §7).
type CodeGenError struct {
	Line    int
	Column  int
	Message string
}

func (e *CodeGenError) Error() string {
	if e.Line == 0 && e.Column == 0 {
		return fmt.Sprintf("codegen error: %s", e.Message)
	}
	return fmt.Sprintf("codegen error at %d:%d: %s", e.Line, e.Column, e.Message)
}
