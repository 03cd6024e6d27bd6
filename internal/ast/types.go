package ast

import "github.com/rjmorel/pas2cpp/internal/token"

// PrimitiveType names a built-in scalar type: integer, real, boolean,
// char, or string (§3.2).
type PrimitiveType struct {
	StartPos token.Position
	Name     string
}

func (t *PrimitiveType) Pos() token.Position { return t.StartPos }
func (t *PrimitiveType) typeNode()           {}

// Dimension is one ordered (low, high) bound pair of an ArrayType. Bounds
// are constant expressions; whether they are statically evaluable integer
// literals determines whether codegen can size the emitted C array (§4.4).
type Dimension struct {
	Low  Expr
	High Expr
}

// ArrayType represents a (possibly multi-dimensional) array type.
// Dimensions is non-empty and ordered (§3.3).
type ArrayType struct {
	StartPos    token.Position
	ElementType Type
	Dimensions  []Dimension
}

func (t *ArrayType) Pos() token.Position { return t.StartPos }
func (t *ArrayType) typeNode()           {}
