package codegen

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"
	"github.com/rjmorel/pas2cpp/internal/parser"
)

func generateSrc(t *testing.T, src string) string {
	t.Helper()
	prog, err := parser.Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	out, err := Generate(prog)
	if err != nil {
		t.Fatalf("codegen error: %v", err)
	}
	return out
}

func TestHelloWorld(t *testing.T) {
	out := generateSrc(t, `program Hello; begin writeln('Hello, world!') end.`)
	be.True(t, strings.Contains(out, `cout << "Hello, world!" << endl;`))
	be.True(t, strings.Contains(out, "int main() {"))
	be.True(t, strings.Contains(out, "return 0;"))
}

func TestFactorialFunction(t *testing.T) {
	src := `program F; var n: integer;
function fact(n: integer): integer;
begin if n <= 1 then fact := 1 else fact := n * fact(n - 1) end;
begin n := 5; writeln(fact(n)) end.`
	out := generateSrc(t, src)
	be.True(t, strings.Contains(out, "int fact(int n) {"))
	be.True(t, strings.Contains(out, "int fact_result;"))
	be.True(t, strings.Contains(out, "fact_result = 1;"))
	be.True(t, strings.Contains(out, "fact_result = (n * fact((n - 1)));"))
	be.True(t, strings.Contains(out, "return fact_result;"))
}

func TestArraySumWithOneBasedRebase(t *testing.T) {
	src := `program S; var a: array[1..5] of integer; i, total: integer;
begin total := 0; for i := 1 to 5 do total := total + a[i]; writeln(total) end.`
	out := generateSrc(t, src)
	be.True(t, strings.Contains(out, "int a[5];"))
	be.True(t, strings.Contains(out, "a[(i - 1)]"))
	be.True(t, strings.Contains(out, "for (int i = 1; i <= 5; i++) {"))
}

func TestRepeatUntilInvertsCondition(t *testing.T) {
	out := generateSrc(t, `program R; var x: integer; begin x := 0; repeat x := x + 1 until x >= 10 end.`)
	be.True(t, strings.Contains(out, "do {"))
	be.True(t, strings.Contains(out, "} while (!((x >= 10)));"))
}

func TestCaseStatementLowersToSwitch(t *testing.T) {
	src := `program C; var c: integer; begin case c of 1, 2: writeln('a'); 3: writeln('b') else writeln('c') end end.`
	out := generateSrc(t, src)
	be.True(t, strings.Contains(out, "switch (c) {"))
	be.True(t, strings.Contains(out, "case 1:"))
	be.True(t, strings.Contains(out, "case 2:"))
	be.True(t, strings.Contains(out, "case 3:"))
	be.True(t, strings.Contains(out, "default:"))
}

func TestByReferenceParameterBecomesCppReference(t *testing.T) {
	src := `program P; var n: integer;
procedure inc2(var x: integer);
begin x := x + 2 end;
begin n := 0; inc2(n) end.`
	out := generateSrc(t, src)
	be.True(t, strings.Contains(out, "void inc2(int& x)"))
	be.True(t, strings.Contains(out, "inc2(n);"))
}

func TestArrayParameterIsBareBracketForm(t *testing.T) {
	src := `program P; var a: array[1..10] of integer;
procedure fill(var a: array[1..10] of integer);
begin a[1] := 0 end;
begin fill(a) end.`
	out := generateSrc(t, src)
	be.True(t, strings.Contains(out, "void fill(int a[])"))
}

func TestBinaryOperationsAreAlwaysParenthesized(t *testing.T) {
	out := generateSrc(t, `program P; var x: integer; begin x := 2 + 3 * 4 end.`)
	be.True(t, strings.Contains(out, "x = (2 + (3 * 4));"))
}

func TestRealDivisionCastsToDouble(t *testing.T) {
	out := generateSrc(t, `program P; var x: real; begin x := 1 / 2 end.`)
	be.True(t, strings.Contains(out, "x = (static_cast<double>(1) / 2);"))
}

func TestIntegerDivEmitsPlainSlash(t *testing.T) {
	out := generateSrc(t, `program P; var x: integer; begin x := 7 div 2 end.`)
	be.True(t, strings.Contains(out, "x = (7 / 2);"))
}

func TestLeadingUnaryPlus(t *testing.T) {
	out := generateSrc(t, `program P; var x: integer; begin x := +5 end.`)
	be.True(t, strings.Contains(out, "x = (+5);"))
}

func TestSqrEvaluatesOperandOnce(t *testing.T) {
	out := generateSrc(t, `program P; var x: integer; begin x := sqr(x + 1) end.`)
	be.True(t, strings.Contains(out, "([&]{ auto _t = ((x + 1)); return _t * _t; }())"))
}

func TestLengthCallsStringMethod(t *testing.T) {
	out := generateSrc(t, `program P; var s: string; n: integer; begin n := length(s) end.`)
	be.True(t, strings.Contains(out, "n = s.length();"))
}

func TestBreakAndContinueAreLiteralKeywords(t *testing.T) {
	src := `program P; var i: integer;
begin for i := 1 to 10 do if i = 5 then break else continue end.`
	out := generateSrc(t, src)
	be.True(t, strings.Contains(out, "break;"))
	be.True(t, strings.Contains(out, "continue;"))
}

func TestNonLiteralArrayBoundsIsCodeGenError(t *testing.T) {
	src := `program P; var n: integer; a: array[1..n] of integer; begin end.`
	prog, err := parser.Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	_, err = Generate(prog)
	if err == nil {
		t.Fatal("expected a CodeGenError for a non-literal array bound")
	}
	if _, ok := err.(*CodeGenError); !ok {
		t.Fatalf("err = %#v, want *CodeGenError", err)
	}
}

func TestEmptyProgramStillHasMainSkeleton(t *testing.T) {
	out := generateSrc(t, `program Empty; begin end.`)
	be.True(t, strings.HasPrefix(out, "#include <iostream>"))
	be.True(t, strings.Contains(out, "using namespace std;"))
	be.True(t, strings.Contains(out, "int main() {"))
	be.True(t, strings.HasSuffix(out, "}\n"))
}

func TestIfWithoutElseOmitsElseBranch(t *testing.T) {
	out := generateSrc(t, `program P; var x: integer; begin if x > 0 then x := 1 end.`)
	be.True(t, strings.Contains(out, "if ((x > 0)) {"))
	be.True(t, !strings.Contains(out, "} else {"))
}

func TestDeterministicOutput(t *testing.T) {
	src := `program P; var x: integer; begin x := 1 + 2 end.`
	first := generateSrc(t, src)
	second := generateSrc(t, src)
	be.Equal(t, first, second)
}
