package ast

import "testing"

func TestSummarize(t *testing.T) {
	prog := &Program{
		Name:      "Demo",
		Variables: []*VarDeclaration{{Names: []string{"a"}, Type: &PrimitiveType{Name: "integer"}}},
		Subprograms: []Subprogram{
			&Procedure{Name: "P", Body: &Compound{}},
			&Function{Name: "F", Body: &Compound{}},
		},
		Body: &Compound{
			Stmts: []Stmt{
				&Assignment{Target: &Variable{Name: "a"}, Value: &IntegerLiteral{Value: "1"}},
				&If{
					Cond: &BooleanLiteral{Value: true},
					Then: &Assignment{Target: &Variable{Name: "a"}, Value: &IntegerLiteral{Value: "2"}},
				},
			},
		},
	}

	s := Summarize(prog)
	if s.ProgramName != "Demo" {
		t.Errorf("ProgramName = %q, want Demo", s.ProgramName)
	}
	if s.VariableGroups != 1 {
		t.Errorf("VariableGroups = %d, want 1", s.VariableGroups)
	}
	if s.Procedures != 1 || s.Functions != 1 {
		t.Errorf("Procedures/Functions = %d/%d, want 1/1", s.Procedures, s.Functions)
	}
	if s.Statements != 2 {
		t.Errorf("Statements = %d, want 2", s.Statements)
	}
}
