package codegen

import (
	"strings"

	"github.com/rjmorel/pas2cpp/internal/ast"
)

func (e *emitter) emitStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		e.emitStmt(s)
	}
}

// emitStmtBody lowers the body of a control structure, flattening a
// Compound directly into the already-opened brace rather than nesting a
// second pair. Program and subprogram bodies are flattened by their
// callers and never reach this helper; a Compound in any other position
// keeps its own braces (see emitStmt).
func (e *emitter) emitStmtBody(s ast.Stmt) {
	if cmp, ok := s.(*ast.Compound); ok {
		e.emitStmts(cmp.Stmts)
		return
	}
	e.emitStmt(s)
}

func (e *emitter) emitStmt(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.Empty:
		// no output
	case *ast.Compound:
		e.emit("{")
		e.indent++
		e.emitStmts(st.Stmts)
		e.indent--
		e.emit("}")
	case *ast.Assignment:
		e.emitAssignment(st)
	case *ast.ProcedureCall:
		e.emitProcedureCall(st)
	case *ast.If:
		e.emitIf(st)
	case *ast.While:
		e.emit("while (%s) {", exprText(e, st.Cond))
		e.indent++
		e.emitStmtBody(st.Body)
		e.indent--
		e.emit("}")
	case *ast.Repeat:
		e.emit("do {")
		e.indent++
		e.emitStmts(st.Body)
		e.indent--
		e.emit("} while (!(%s));", exprText(e, st.Until))
	case *ast.For:
		e.emitFor(st)
	case *ast.Case:
		e.emitCase(st)
	default:
		fail("unsupported statement type %T", s)
	}
}

// emitAssignment lowers "target := value". A bare (unindexed) reference
// to the enclosing function's own name is rewritten to its synthetic
// result variable (§4.4, §9 Open Questions) — checked only here, against
// the emitter's current inFunctionNamed, never while emitting nested
// call arguments or another scope.
func (e *emitter) emitAssignment(a *ast.Assignment) {
	target := variableText(e, a.Target)
	if len(a.Target.Indices) == 0 && a.Target.Name == e.inFunctionNamed {
		target = e.inFunctionNamed + "_result"
	}
	e.emit("%s = %s;", target, exprText(e, a.Value))
}

func (e *emitter) emitProcedureCall(c *ast.ProcedureCall) {
	if fn, ok := builtinStmts[strings.ToLower(c.Name)]; ok {
		fn(e, c.Args)
		return
	}
	e.emit("%s(%s);", c.Name, argListText(e, c.Args))
}

func (e *emitter) emitIf(i *ast.If) {
	e.emit("if (%s) {", exprText(e, i.Cond))
	e.indent++
	e.emitStmtBody(i.Then)
	e.indent--
	if i.Else != nil {
		e.emit("} else {")
		e.indent++
		e.emitStmtBody(i.Else)
		e.indent--
	}
	e.emit("}")
}

func (e *emitter) emitFor(f *ast.For) {
	op, step := "<=", "++"
	if f.Downto {
		op, step = ">=", "--"
	}
	start := exprText(e, f.Start)
	end := exprText(e, f.End)
	e.emit("for (int %s = %s; %s %s %s; %s%s) {", f.LoopVar, start, f.LoopVar, op, end, f.LoopVar, step)
	e.indent++
	e.emitStmtBody(f.Body)
	e.indent--
	e.emit("}")
}

func (e *emitter) emitCase(c *ast.Case) {
	e.emit("switch (%s) {", exprText(e, c.Scrutinee))
	e.indent++
	for _, branch := range c.Branches {
		for _, v := range branch.Values {
			e.emit("case %s:", exprText(e, v))
		}
		e.indent++
		e.emitStmtBody(branch.Stmt)
		e.emit("break;")
		e.indent--
	}
	if c.Else != nil {
		e.emit("default:")
		e.indent++
		e.emitStmtBody(c.Else)
		e.emit("break;")
		e.indent--
	}
	e.indent--
	e.emit("}")
}
