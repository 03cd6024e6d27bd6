package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rjmorel/pas2cpp/internal/ast"
)

// emitter accumulates output lines at a tracked indentation depth and
// carries the state codegen needs while walking a subprogram body: the
// array-bounds scope and, inside a function, the name whose assignment
// targets must be rewritten to its synthetic result variable (§4.4,
// §9 Open Questions).
type emitter struct {
	lines           []string
	indent          int
	scope           *arrayScope
	inFunctionNamed string
}

func newEmitter() *emitter {
	return &emitter{scope: newArrayScope()}
}

func (e *emitter) emit(format string, args ...any) {
	line := format
	if len(args) > 0 {
		line = fmt.Sprintf(format, args...)
	}
	e.lines = append(e.lines, strings.Repeat("    ", e.indent)+line)
}

func (e *emitter) blank() {
	e.lines = append(e.lines, "")
}

func (e *emitter) raw(s string) {
	e.lines = append(e.lines, s)
}

// Generate lowers a parsed program into C++ source text, or returns a
// *CodeGenError describing why it could not (§4.4). It follows the
// teacher's internal/compiler/compiler.go Compile() shape: a single
// fail-fast entry point wrapping the walk in defer/recover so that every
// internal panic(*CodeGenError) becomes a normal returned error.
func Generate(prog *ast.Program) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ce, ok := r.(*CodeGenError); ok {
				err = ce
				return
			}
			panic(r)
		}
	}()

	e := newEmitter()
	for _, decl := range prog.Variables {
		registerArrayDecl(e.scope.defineGlobal, decl)
	}

	e.raw("#include <iostream>")
	e.raw("#include <string>")
	e.raw("#include <cmath>")
	e.raw("using namespace std;")
	e.blank()

	for _, sub := range prog.Subprograms {
		e.raw(forwardDecl(sub))
	}
	if len(prog.Subprograms) > 0 {
		e.blank()
	}

	e.raw("int main() {")
	e.indent++
	for _, decl := range prog.Variables {
		e.emitVarDecl(decl)
	}
	e.emitStmts(prog.Body.Stmts)
	e.emit("return 0;")
	e.indent--
	e.raw("}")

	for _, sub := range prog.Subprograms {
		e.blank()
		e.emitSubprogram(sub)
	}

	return strings.Join(e.lines, "\n") + "\n", nil
}

// registerArrayDecl records array bounds for every name in decl under
// define (either the scope's global or local frame).
func registerArrayDecl(define func(string, arrayInfo), decl *ast.VarDeclaration) {
	at, ok := decl.Type.(*ast.ArrayType)
	if !ok {
		return
	}
	info := resolveArrayType(at)
	for _, name := range decl.Names {
		define(name, info)
	}
}

func (e *emitter) emitVarDecl(decl *ast.VarDeclaration) {
	for _, name := range decl.Names {
		e.emit("%s;", declText(decl.Type, name))
	}
}

// declText renders "<cpp-type> name" for a scalar, or "<cpp-type>
// name[s1][s2]..." for an array, per §4.4's variable-declaration rule.
func declText(t ast.Type, name string) string {
	switch tt := t.(type) {
	case *ast.PrimitiveType:
		return cppType(tt.Name) + " " + name
	case *ast.ArrayType:
		elem := cppType(tt.ElementType.(*ast.PrimitiveType).Name)
		return elem + " " + name + arraySuffix(resolveArrayType(tt))
	default:
		fail("unsupported declaration type %T", t)
		return ""
	}
}

// arraySuffix renders the bracketed dimension sizes of an already
// bounds-resolved array type, e.g. "[10][3]".
func arraySuffix(info arrayInfo) string {
	var b strings.Builder
	for _, d := range info.Dims {
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(d.Size))
		b.WriteByte(']')
	}
	return b.String()
}

// cppType maps a Pascal primitive type name to its C++ spelling (§4.4).
func cppType(name string) string {
	switch name {
	case "integer":
		return "int"
	case "real":
		return "double"
	case "boolean":
		return "bool"
	case "char":
		return "char"
	case "string":
		return "string"
	default:
		fail("unknown primitive type %q", name)
		return ""
	}
}

func forwardDecl(sub ast.Subprogram) string {
	switch s := sub.(type) {
	case *ast.Procedure:
		return "void " + s.Name + "(" + paramList(s.Params) + ");"
	case *ast.Function:
		ret := cppType(s.ReturnType.(*ast.PrimitiveType).Name)
		return ret + " " + s.Name + "(" + paramList(s.Params) + ");"
	default:
		fail("unsupported subprogram type %T", sub)
		return ""
	}
}

func paramList(params []*ast.Parameter) string {
	var parts []string
	for _, p := range params {
		for _, name := range p.Names {
			parts = append(parts, paramText(p, name))
		}
	}
	return strings.Join(parts, ", ")
}

// paramText renders one formal parameter. By-reference scalars become a
// C++ reference; arrays are passed as bare decayed-to-pointer array
// parameters (`T name[]`) regardless of ByReference and regardless of
// their declared dimensions, since C++ already passes arrays by address
// (§4.4). Bounds still matter inside the body, so defineParamArrays
// registers them in the callee's scope separately from this signature.
func paramText(p *ast.Parameter, name string) string {
	switch t := p.Type.(type) {
	case *ast.PrimitiveType:
		cpp := cppType(t.Name)
		if p.ByReference {
			return cpp + "& " + name
		}
		return cpp + " " + name
	case *ast.ArrayType:
		elem := cppType(t.ElementType.(*ast.PrimitiveType).Name)
		return elem + " " + name + "[]"
	default:
		fail("unsupported parameter type %T", p.Type)
		return ""
	}
}

func (e *emitter) emitSubprogram(sub ast.Subprogram) {
	switch s := sub.(type) {
	case *ast.Procedure:
		e.emitProcedure(s)
	case *ast.Function:
		e.emitFunction(s)
	default:
		fail("unsupported subprogram type %T", sub)
	}
}

func (e *emitter) emitProcedure(p *ast.Procedure) {
	e.raw("void " + p.Name + "(" + paramList(p.Params) + ") {")
	e.indent++
	e.scope.enter()
	e.defineParamArrays(p.Params)
	for _, decl := range p.Locals {
		registerArrayDecl(e.scope.defineLocal, decl)
		e.emitVarDecl(decl)
	}
	e.emitStmts(p.Body.Stmts)
	e.scope.exit()
	e.indent--
	e.raw("}")
}

func (e *emitter) emitFunction(f *ast.Function) {
	ret := cppType(f.ReturnType.(*ast.PrimitiveType).Name)
	e.raw(ret + " " + f.Name + "(" + paramList(f.Params) + ") {")
	e.indent++
	e.scope.enter()
	e.defineParamArrays(f.Params)
	prevFn := e.inFunctionNamed
	e.inFunctionNamed = f.Name
	e.emit("%s %s_result;", ret, f.Name)
	for _, decl := range f.Locals {
		registerArrayDecl(e.scope.defineLocal, decl)
		e.emitVarDecl(decl)
	}
	e.emitStmts(f.Body.Stmts)
	e.emit("return %s_result;", f.Name)
	e.inFunctionNamed = prevFn
	e.scope.exit()
	e.indent--
	e.raw("}")
}

func (e *emitter) defineParamArrays(params []*ast.Parameter) {
	for _, p := range params {
		if at, ok := p.Type.(*ast.ArrayType); ok {
			info := resolveArrayType(at)
			for _, name := range p.Names {
				e.scope.defineLocal(name, info)
			}
		}
	}
}
