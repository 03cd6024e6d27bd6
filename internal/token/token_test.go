package token

import "testing"

func TestLookupIdentCaseInsensitive(t *testing.T) {
	tests := []struct {
		name string
		want Token
	}{
		{"program", PROGRAM},
		{"PROGRAM", PROGRAM},
		{"Program", PROGRAM},
		{"Integer", INTEGER},
		{"WRITELN", WRITELN},
		{"x", IDENT},
		{"break", IDENT}, // not reserved: codegen dispatches on name
		{"continue", IDENT},
	}
	for _, tt := range tests {
		if got := LookupIdent(tt.name); got != tt.want {
			t.Errorf("LookupIdent(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestIsOperator(t *testing.T) {
	if !PLUS.IsOperator() {
		t.Error("PLUS should be an operator")
	}
	if PROGRAM.IsOperator() {
		t.Error("PROGRAM should not be an operator")
	}
}

func TestIsKeyword(t *testing.T) {
	if !PROGRAM.IsKeyword() {
		t.Error("PROGRAM should be a keyword")
	}
	if IDENT.IsKeyword() {
		t.Error("IDENT should not be a keyword")
	}
}

func TestIsPrimitiveType(t *testing.T) {
	for _, tok := range []Token{INTEGER, REAL, BOOLEAN, CHAR, STRING} {
		if !tok.IsPrimitiveType() {
			t.Errorf("%s should be a primitive type", tok)
		}
	}
	if PROGRAM.IsPrimitiveType() {
		t.Error("PROGRAM should not be a primitive type")
	}
}

func TestIsBuiltin(t *testing.T) {
	for _, tok := range []Token{READ, READLN, WRITE, WRITELN, ABS, SQR, SQRT, SIN, COS, LN, EXP, LENGTH} {
		if !tok.IsBuiltin() {
			t.Errorf("%s should be a builtin", tok)
		}
	}
	if IDENT.IsBuiltin() {
		t.Error("IDENT should not be a builtin")
	}
}

func TestStringUnknownToken(t *testing.T) {
	var t1 Token = 250
	if t1.String() != "<unknown token>" {
		t.Errorf("got %q, want <unknown token>", t1.String())
	}
}
