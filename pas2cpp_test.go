package pas2cpp

import (
	"bytes"
	"strings"
	"testing"
)

func TestTranslateHelloWorld(t *testing.T) {
	out, err := Translate(`program Hello; begin writeln('Hello, world!') end.`, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `cout << "Hello, world!" << endl;`) {
		t.Fatalf("output missing writeln lowering: %s", out)
	}
}

func TestCompileReturnsStats(t *testing.T) {
	src := `program F; var n: integer;
function fact(n: integer): integer;
begin if n <= 1 then fact := 1 else fact := n * fact(n - 1) end;
begin n := 5; writeln(fact(n)) end.`
	prog, err := Compile(src, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stats := prog.Stats()
	if stats.ProgramName != "F" {
		t.Fatalf("ProgramName = %q, want F", stats.ProgramName)
	}
	if stats.Functions != 1 {
		t.Fatalf("Functions = %d, want 1", stats.Functions)
	}
	if prog.Source() != src {
		t.Fatal("Source() did not return the original source")
	}
}

func TestCompileVerboseWritesDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	_, err := Compile(`program P; begin end.`, &Config{Verbose: true, Output: &buf})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected verbose diagnostics to be written")
	}
	if !strings.Contains(buf.String(), "tokens") {
		t.Fatalf("expected a token-count line, got %q", buf.String())
	}
}

func TestCompileParserErrorType(t *testing.T) {
	_, err := Compile(`program P; begin x := end.`, nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, ok := err.(*ParserError); !ok {
		t.Fatalf("err = %#v, want *ParserError", err)
	}
}

func TestCompileCodeGenErrorType(t *testing.T) {
	src := `program P; var n: integer; a: array[1..n] of integer; begin end.`
	_, err := Compile(src, nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, ok := err.(*CodeGenError); !ok {
		t.Fatalf("err = %#v, want *CodeGenError", err)
	}
}

func TestTranslateIsDeterministic(t *testing.T) {
	src := `program P; var x: integer; begin x := 1 + 2 end.`
	a, err := Translate(src, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Translate(src, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Fatal("Translate should be deterministic for identical input")
	}
}

func TestArrayIndexRebaseEndToEnd(t *testing.T) {
	src := `program S; var a: array[1..5] of integer; i, total: integer;
begin total := 0; for i := 1 to 5 do total := total + a[i]; writeln(total) end.`
	out, err := Translate(src, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "a[(i - 1)]") {
		t.Fatalf("expected rebased index, got:\n%s", out)
	}
}
