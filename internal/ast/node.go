// Package ast defines the abstract syntax tree for the Pascal dialect.
//
// Nodes are grouped into families, each a closed tagged variant realized as
// a Go interface with a private marker method (§3.2):
//
//	Node (interface)
//	├── Expr  - BinaryOp, UnaryOp, Variable, *Literal, FunctionCall
//	├── Stmt  - Compound, Assignment, If, While, Repeat, For, Case,
//	│           ProcedureCall, Empty
//	├── Type  - PrimitiveType, ArrayType
//	└── Subprogram - Procedure, Function
//
// There is no generic visitor: consumers (the parser, which only builds
// nodes, and the code generator, which only reads them) dispatch on
// concrete type with a type switch, per §4.3.
package ast

import "github.com/rjmorel/pas2cpp/internal/token"

// Node is implemented by every AST node and carries its source position.
type Node interface {
	Pos() token.Position
}

// Expr is the interface for expression nodes (§3.2).
type Expr interface {
	Node
	exprNode()
}

// Stmt is the interface for statement nodes (§3.2).
type Stmt interface {
	Node
	stmtNode()
}

// Type is the interface for type nodes: a primitive name or an array type
// (§3.2).
type Type interface {
	Node
	typeNode()
}

// Subprogram is the interface for top-level procedure/function
// declarations (§3.2).
type Subprogram interface {
	Node
	subprogramNode()
}

// BaseExpr is embedded in every concrete Expr to supply Pos().
type BaseExpr struct {
	StartPos token.Position
}

func (b BaseExpr) Pos() token.Position { return b.StartPos }
func (b BaseExpr) exprNode()           {}

// BaseStmt is embedded in every concrete Stmt to supply Pos().
type BaseStmt struct {
	StartPos token.Position
}

func (b BaseStmt) Pos() token.Position { return b.StartPos }
func (b BaseStmt) stmtNode()           {}
