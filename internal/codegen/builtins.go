package codegen

import (
	"strings"

	"github.com/rjmorel/pas2cpp/internal/ast"
)

// builtinFuncs maps a built-in function's lowercased name to its
// expression-lowering rule (§4.4's built-in calls table). Most map
// straight onto a <cmath> function of the same or a renamed spelling;
// sqr and length need bespoke emission.
var builtinFuncs map[string]func(e *emitter, args []ast.Expr) string

func init() {
	builtinFuncs = map[string]func(e *emitter, args []ast.Expr) string{
		"abs":  passthroughCall("abs"),
		"sqrt": passthroughCall("sqrt"),
		"sin":  passthroughCall("sin"),
		"cos":  passthroughCall("cos"),
		"exp":  passthroughCall("exp"),
		"ln":   passthroughCall("log"),
		"sqr":  sqrCall,
		"length": func(e *emitter, args []ast.Expr) string {
			if len(args) != 1 {
				fail("length expects exactly one argument, got %d", len(args))
			}
			return exprText(e, args[0]) + ".length()"
		},
	}
}

func passthroughCall(cppName string) func(e *emitter, args []ast.Expr) string {
	return func(e *emitter, args []ast.Expr) string {
		return cppName + "(" + argListText(e, args) + ")"
	}
}

// sqrCall binds the argument to a temporary inside an immediately
// invoked lambda so it is evaluated exactly once, per §9 Open Questions
// (sqr(f()) must not call f() twice).
func sqrCall(e *emitter, args []ast.Expr) string {
	if len(args) != 1 {
		fail("sqr expects exactly one argument, got %d", len(args))
	}
	operand := exprText(e, args[0])
	return "([&]{ auto _t = (" + operand + "); return _t * _t; }())"
}

// builtinStmts maps a built-in procedure's lowercased name to its
// statement-lowering rule. write/writeln/read/readln are variadic
// stream-chain builders; break/continue are literal C++ keywords, since
// neither is a reserved token in this dialect (§4.1, §4.4).
var builtinStmts = map[string]func(e *emitter, args []ast.Expr){
	"write":    writeStmt(false),
	"writeln":  writeStmt(true),
	"read":     readStmt,
	"readln":   readStmt,
	"break":    func(e *emitter, args []ast.Expr) { e.emit("break;") },
	"continue": func(e *emitter, args []ast.Expr) { e.emit("continue;") },
}

func writeStmt(newline bool) func(e *emitter, args []ast.Expr) {
	return func(e *emitter, args []ast.Expr) {
		var b strings.Builder
		b.WriteString("cout")
		for _, a := range args {
			b.WriteString(" << ")
			b.WriteString(exprText(e, a))
		}
		if newline {
			b.WriteString(" << endl")
		}
		b.WriteString(";")
		e.emit(b.String())
	}
}

func readStmt(e *emitter, args []ast.Expr) {
	if len(args) == 0 {
		e.emit("cin.ignore();")
		return
	}
	var b strings.Builder
	b.WriteString("cin")
	for _, a := range args {
		b.WriteString(" >> ")
		b.WriteString(exprText(e, a))
	}
	b.WriteString(";")
	e.emit(b.String())
}
