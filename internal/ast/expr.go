package ast

// -----------------------------------------------------------------------------
// Literals
// -----------------------------------------------------------------------------

// IntegerLiteral is an integer constant, e.g. 42.
type IntegerLiteral struct {
	BaseExpr
	Value string // original source text, preserved verbatim for emission
}

// RealLiteral is a floating-point constant, e.g. 3.14 or 1.0e-5.
type RealLiteral struct {
	BaseExpr
	Value string
}

// StringLiteral is a double-quoted string constant, or a single-quoted one
// whose length is not exactly one character (including the empty '').
type StringLiteral struct {
	BaseExpr
	Value string
}

// CharLiteral is a single-quoted one-character constant, e.g. 'a'.
type CharLiteral struct {
	BaseExpr
	Value rune
}

// BooleanLiteral is the constant true or false.
type BooleanLiteral struct {
	BaseExpr
	Value bool
}

// -----------------------------------------------------------------------------
// Variables, operators, calls
// -----------------------------------------------------------------------------

// Variable is an identifier reference, optionally indexed. A bare
// variable ("x") has a nil Indices; an array element ("a[i, j]") carries
// one expression per dimension (§3.2, §4.4).
type Variable struct {
	BaseExpr
	Name    string
	Indices []Expr
}

// BinaryOp is a binary expression: arithmetic, relational, or logical
// (§3.2). Op is the literal operator spelling ("+", "div", "and", ...).
type BinaryOp struct {
	BaseExpr
	Left  Expr
	Op    string
	Right Expr
}

// UnaryOp is a prefix unary expression: "+", "-" or "not" (§3.2).
type UnaryOp struct {
	BaseExpr
	Op      string
	Operand Expr
}

// FunctionCall is a call to a built-in or user-defined function used in
// expression position, e.g. sqrt(x), sqr(n), or a user function (§3.2,
// §4.4). Procedure calls used as statements are ProcedureCall instead.
type FunctionCall struct {
	BaseExpr
	Name string
	Args []Expr
}

