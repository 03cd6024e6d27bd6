package parser

import "testing"

// FuzzParse checks that Parse never panics with anything other than the
// recovered *ParseError/LexerError it already converts to a returned
// error, for arbitrary byte input.
func FuzzParse(f *testing.F) {
	seeds := []string{
		`program H; begin writeln('Hello, world!') end.`,
		`program F; var n: integer;
function fact(n: integer): integer;
begin if n <= 1 then fact := 1 else fact := n * fact(n - 1) end;
begin n := 5; writeln(fact(n)) end.`,
		`program S; var a: array[1..5] of integer; i, s: integer;
begin s := 0; for i := 1 to 5 do s := s + a[i]; writeln(s) end.`,
		`program R; var x: integer; begin repeat x := x + 1 until x >= 10 end.`,
		`program C; var c: integer; begin case c of 1, 2: writeln('a'); 3: writeln('b') else writeln('c') end end.`,
		`procedure inc2(var x: integer); begin x := x + 2 end.`,
		`program P; begin if a then if b then x := 1 else x := 2 end.`,
		``,
		`program`,
		`program P`,
		`program P; begin`,
		`program P; var : integer; begin end.`,
		`program P; begin x := end.`,
		`program P; begin x := 1 / 0 end.`,
	}
	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("Parse panicked on input %q: %v", data, r)
			}
		}()
		_, _ = Parse(data)
	})
}
