// Package lexer provides tokenization for the Pascal dialect.
package lexer

import (
	"testing"

	"github.com/rjmorel/pas2cpp/internal/token"
)

// FuzzLexer tests that the lexer handles arbitrary input without panicking,
// never reports a negative position, and reaches EOF or an ILLEGAL token.
func FuzzLexer(f *testing.F) {
	seeds := []string{
		`program P; begin end.`,
		`var a, b: integer; c: real;`,
		`a := b + c * (d - e);`,
		`if a <= b then writeln(a) else writeln(b);`,
		`array[1..10] of integer`,
		`42 3.14 .5 1e 1e+10 1.0e-5`,
		`'a' 'ab' "hello" ''`,
		`{ comment } (* comment *) // comment`,
		``,
		`{ unterminated`,
		`(* unterminated`,
		`"unterminated`,
		`<> <= >= := ..`,
		`repeat x := x + 1 until x >= 10`,
		`case c of 1: writeln('a') else writeln('b') end`,
	}
	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		l := New(data)

		const maxTokens = 10000
		count := 0
		for count < maxTokens {
			tok := l.Scan()
			if tok.Pos.Line < 0 || tok.Pos.Column < 0 {
				t.Fatalf("invalid position: %v", tok.Pos)
			}
			if tok.Type == token.EOF || tok.Type == token.ILLEGAL {
				return
			}
			count++
		}
		t.Skip("too many tokens, possibly malformed input")
	})
}
