// Package lexer provides tokenization for the Pascal dialect.
package lexer

import (
	"unicode/utf8"

	"github.com/rjmorel/pas2cpp/internal/token"
)

// Lexer scans Pascal source text into tokens.
type Lexer struct {
	src     []byte         // Source code
	ch      rune           // Current character (0 at EOF)
	offset  int            // Byte offset of the next unread character
	pos     token.Position // Position of the current character
	nextPos token.Position // Position of the next character
}

// New creates a new Lexer over src.
func New(src []byte) *Lexer {
	l := &Lexer{
		src:     src,
		nextPos: token.Position{Line: 1, Column: 1},
	}
	l.next() // prime l.ch with the first character
	return l
}

// Token is a scanned token with its type, source position and text value.
type Token struct {
	Type  token.Token
	Pos   token.Position
	Value string
}

// Tokenize scans src in full and returns the ordered token sequence,
// terminated by exactly one EOF token (§3.1, §8 invariant 1). It returns
// a *LexerError on the first unterminated comment/string, malformed
// exponent, or character outside the recognized alphabet (§4.1).
func Tokenize(src []byte) ([]Token, error) {
	l := New(src)
	var toks []Token
	for {
		tok := l.Scan()
		if tok.Type == token.ILLEGAL {
			return nil, &LexerError{Pos: tok.Pos, Message: tok.Value}
		}
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks, nil
		}
	}
}

// Scan scans and returns the next token. On failure it returns a token of
// type token.ILLEGAL whose Value carries a human-readable message; callers
// that need a *LexerError (as Tokenize does) wrap it at that point.
func (l *Lexer) Scan() Token {
	if msg, pos, ok := l.skipTrivia(); !ok {
		return Token{Type: token.ILLEGAL, Pos: pos, Value: msg}
	}

	pos := l.pos

	switch {
	case l.ch == 0:
		return Token{Type: token.EOF, Pos: pos}

	case l.ch == '+':
		l.next()
		return Token{Type: token.PLUS, Pos: pos, Value: "+"}
	case l.ch == '-':
		l.next()
		return Token{Type: token.MINUS, Pos: pos, Value: "-"}
	case l.ch == '*':
		l.next()
		return Token{Type: token.STAR, Pos: pos, Value: "*"}
	case l.ch == '/':
		l.next()
		return Token{Type: token.SLASH, Pos: pos, Value: "/"}
	case l.ch == '=':
		l.next()
		return Token{Type: token.EQ, Pos: pos, Value: "="}
	case l.ch == '<':
		l.next()
		if l.ch == '>' {
			l.next()
			return Token{Type: token.NEQ, Pos: pos, Value: "<>"}
		}
		if l.ch == '=' {
			l.next()
			return Token{Type: token.LE, Pos: pos, Value: "<="}
		}
		return Token{Type: token.LT, Pos: pos, Value: "<"}
	case l.ch == '>':
		l.next()
		if l.ch == '=' {
			l.next()
			return Token{Type: token.GE, Pos: pos, Value: ">="}
		}
		return Token{Type: token.GT, Pos: pos, Value: ">"}
	case l.ch == '.':
		l.next()
		if l.ch == '.' {
			l.next()
			return Token{Type: token.RANGE, Pos: pos, Value: ".."}
		}
		return Token{Type: token.DOT, Pos: pos, Value: "."}
	case l.ch == ':':
		l.next()
		if l.ch == '=' {
			l.next()
			return Token{Type: token.ASSIGN, Pos: pos, Value: ":="}
		}
		return Token{Type: token.COLON, Pos: pos, Value: ":"}
	case l.ch == ',':
		l.next()
		return Token{Type: token.COMMA, Pos: pos, Value: ","}
	case l.ch == ';':
		l.next()
		return Token{Type: token.SEMICOLON, Pos: pos, Value: ";"}
	case l.ch == '(':
		l.next()
		return Token{Type: token.LPAREN, Pos: pos, Value: "("}
	case l.ch == ')':
		l.next()
		return Token{Type: token.RPAREN, Pos: pos, Value: ")"}
	case l.ch == '[':
		l.next()
		return Token{Type: token.LBRACKET, Pos: pos, Value: "["}
	case l.ch == ']':
		l.next()
		return Token{Type: token.RBRACKET, Pos: pos, Value: "]"}

	case l.ch == '\'' || l.ch == '"':
		return l.scanString(pos)

	case isDigit(l.ch):
		return l.scanNumber(pos)

	case isIdentStart(l.ch):
		return l.scanIdent(pos)

	default:
		ch := l.ch
		l.next()
		return Token{Type: token.ILLEGAL, Pos: pos, Value: "unrecognized character " + string(ch)}
	}
}

// skipTrivia consumes whitespace and comments ({...}, (*...*), //...\n)
// until the next significant character. It reports failure (ok=false) if
// a block comment is still open at EOF (§4.1).
func (l *Lexer) skipTrivia() (msg string, pos token.Position, ok bool) {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n':
			l.next()

		case l.ch == '{':
			start := l.pos
			l.next()
			for l.ch != '}' && l.ch != 0 {
				l.next()
			}
			if l.ch == 0 {
				return "unterminated comment", start, false
			}
			l.next() // consume '}'

		case l.ch == '(' && l.peek() == '*':
			start := l.pos
			l.next()
			l.next()
			for !(l.ch == '*' && l.peek() == ')') {
				if l.ch == 0 {
					return "unterminated comment", start, false
				}
				l.next()
			}
			l.next()
			l.next() // consume '*)'

		case l.ch == '/' && l.peek() == '/':
			l.next()
			l.next()
			for l.ch != '\n' && l.ch != 0 {
				l.next()
			}

		default:
			return "", token.NoPos, true
		}
	}
}

func (l *Lexer) scanString(pos token.Position) Token {
	quote := l.ch
	l.next() // consume opening quote

	var runes []rune
	for l.ch != quote && l.ch != 0 && l.ch != '\n' {
		runes = append(runes, l.ch)
		l.next()
	}
	if l.ch != quote {
		return Token{Type: token.ILLEGAL, Pos: pos, Value: "unterminated string literal"}
	}
	l.next() // consume closing quote

	text := string(runes)
	if quote == '\'' && len(runes) == 1 {
		return Token{Type: token.CHAR_LIT, Pos: pos, Value: text}
	}
	return Token{Type: token.STRING_LIT, Pos: pos, Value: text}
}

func (l *Lexer) scanNumber(pos token.Position) Token {
	start := pos.Offset
	for isDigit(l.ch) {
		l.next()
	}

	isReal := false
	if l.ch == '.' && isDigit(l.peek()) {
		isReal = true
		l.next() // consume '.'
		for isDigit(l.ch) {
			l.next()
		}
	}

	if isReal && (l.ch == 'e' || l.ch == 'E') {
		l.next()
		if l.ch == '+' || l.ch == '-' {
			l.next()
		}
		if !isDigit(l.ch) {
			return Token{Type: token.ILLEGAL, Pos: pos, Value: "malformed exponent in real literal"}
		}
		for isDigit(l.ch) {
			l.next()
		}
	}

	text := string(l.src[start:l.endOffset()])
	if isReal {
		return Token{Type: token.REAL_LIT, Pos: pos, Value: text}
	}
	return Token{Type: token.INT_LIT, Pos: pos, Value: text}
}

func (l *Lexer) scanIdent(pos token.Position) Token {
	start := pos.Offset
	for isIdentContinue(l.ch) {
		l.next()
	}
	name := string(l.src[start:l.endOffset()])
	return Token{Type: token.LookupIdent(name), Pos: pos, Value: name}
}

// endOffset returns the byte offset just past the current character, for
// slicing l.src. At EOF l.pos no longer advances, so len(l.src) is used.
func (l *Lexer) endOffset() int {
	if l.ch == 0 {
		return len(l.src)
	}
	return l.pos.Offset
}

// next advances the lexer by one character, updating position tracking:
// column increments per character, line increments (and column resets) on
// '\n' (§4.1).
func (l *Lexer) next() {
	if l.offset >= len(l.src) {
		l.pos = l.nextPos
		l.ch = 0
		return
	}
	l.pos = l.nextPos
	r, size := utf8.DecodeRune(l.src[l.offset:])
	l.ch = r
	l.offset += size
	l.nextPos.Offset = l.offset
	if r == '\n' {
		l.nextPos.Line++
		l.nextPos.Column = 1
	} else {
		l.nextPos.Column++
	}
}

// peek returns the character after l.ch without consuming it.
func (l *Lexer) peek() rune {
	if l.offset >= len(l.src) {
		return 0
	}
	r, _ := utf8.DecodeRune(l.src[l.offset:])
	return r
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentContinue(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}
