package codegen

import (
	"strconv"
	"strings"

	"github.com/rjmorel/pas2cpp/internal/ast"
)

// binaryOps maps a BinaryOp's operator spelling to its C++ form. "/" is
// handled specially below (Pascal real division casts to double); "div"
// lands here as plain integer division (§4.4, §9 Open Questions: div
// assumes integer operands and is never range-checked).
var binaryOps = map[string]string{
	"+": "+", "-": "-", "*": "*",
	"div": "/", "mod": "%",
	"and": "&&", "or": "||", "xor": "^",
	"=": "==", "<>": "!=", "<": "<", "<=": "<=", ">": ">", ">=": ">=",
}

// exprText lowers an expression to C++ text. Every binary operation is
// fully parenthesized (§4.4, §8 invariant 5: parenthesization is never
// omitted, so operator-precedence differences between Pascal and C++
// never matter).
func exprText(e *emitter, expr ast.Expr) string {
	switch ex := expr.(type) {
	case *ast.IntegerLiteral:
		return ex.Value
	case *ast.RealLiteral:
		return ex.Value
	case *ast.StringLiteral:
		return `"` + escapeString(ex.Value) + `"`
	case *ast.CharLiteral:
		return "'" + escapeChar(ex.Value) + "'"
	case *ast.BooleanLiteral:
		if ex.Value {
			return "true"
		}
		return "false"
	case *ast.Variable:
		return variableText(e, ex)
	case *ast.BinaryOp:
		return binaryOpText(e, ex)
	case *ast.UnaryOp:
		return unaryOpText(e, ex)
	case *ast.FunctionCall:
		return functionCallText(e, ex)
	default:
		fail("unsupported expression type %T", expr)
		return ""
	}
}

func variableText(e *emitter, v *ast.Variable) string {
	if len(v.Indices) == 0 {
		return v.Name
	}
	info, ok := e.scope.lookup(v.Name)
	if !ok {
		fail("array %q used as indexed but never declared with bounds", v.Name)
	}
	if len(v.Indices) != len(info.Dims) {
		fail("array %q indexed with %d subscripts, declared with %d dimensions", v.Name, len(v.Indices), len(info.Dims))
	}
	var b strings.Builder
	b.WriteString(v.Name)
	for i, idx := range v.Indices {
		b.WriteByte('[')
		b.WriteString(rebaseIndex(e, idx, info.Dims[i].Low))
		b.WriteByte(']')
	}
	return b.String()
}

// rebaseIndex converts a 1-based (or otherwise non-zero-based) Pascal
// index to the 0-based C++ index codegen must emit (§4.4): "(expr -
// low)" when low != 0, the bare expression otherwise.
func rebaseIndex(e *emitter, idx ast.Expr, low int) string {
	text := exprText(e, idx)
	if low == 0 {
		return text
	}
	return "(" + text + " - " + strconv.Itoa(low) + ")"
}

func binaryOpText(e *emitter, b *ast.BinaryOp) string {
	left := exprText(e, b.Left)
	right := exprText(e, b.Right)
	if b.Op == "/" {
		return "(static_cast<double>(" + left + ") / " + right + ")"
	}
	op, ok := binaryOps[b.Op]
	if !ok {
		fail("unknown binary operator %q", b.Op)
	}
	return "(" + left + " " + op + " " + right + ")"
}

func unaryOpText(e *emitter, u *ast.UnaryOp) string {
	operand := exprText(e, u.Operand)
	switch u.Op {
	case "not":
		return "(!" + operand + ")"
	case "-":
		return "(-" + operand + ")"
	case "+":
		return "(+" + operand + ")"
	default:
		fail("unknown unary operator %q", u.Op)
		return ""
	}
}

func functionCallText(e *emitter, c *ast.FunctionCall) string {
	if fn, ok := builtinFuncs[strings.ToLower(c.Name)]; ok {
		return fn(e, c.Args)
	}
	return c.Name + "(" + argListText(e, c.Args) + ")"
}

func argListText(e *emitter, args []ast.Expr) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = exprText(e, a)
	}
	return strings.Join(parts, ", ")
}

func escapeString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}

func escapeChar(r rune) string {
	switch r {
	case '\\':
		return `\\`
	case '\'':
		return `\'`
	default:
		return string(r)
	}
}
