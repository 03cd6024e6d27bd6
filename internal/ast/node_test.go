package ast

import (
	"testing"

	"github.com/rjmorel/pas2cpp/internal/token"
)

func TestNodePositions(t *testing.T) {
	pos := token.Position{Line: 3, Column: 5}
	v := &Variable{BaseExpr: BaseExpr{StartPos: pos}, Name: "x"}
	if v.Pos() != pos {
		t.Errorf("Pos() = %v, want %v", v.Pos(), pos)
	}

	a := &Assignment{BaseStmt: BaseStmt{StartPos: pos}}
	if a.Pos() != pos {
		t.Errorf("Pos() = %v, want %v", a.Pos(), pos)
	}

	pt := &PrimitiveType{StartPos: pos, Name: "integer"}
	if pt.Pos() != pos {
		t.Errorf("Pos() = %v, want %v", pt.Pos(), pos)
	}
}
