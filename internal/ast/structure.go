package ast

import "github.com/rjmorel/pas2cpp/internal/token"

// VarDeclaration declares one or more names sharing a type, e.g.
// "a, b: integer;" (§3.2). It carries a position but belongs to no node
// family (Expr, Stmt, Type, Subprogram): it appears only inside
// Program.Variables and Procedure/Function.Locals, never as a standalone
// AST position a caller would dispatch on.
type VarDeclaration struct {
	StartPos token.Position
	Names    []string
	Type     Type
}

func (d *VarDeclaration) Pos() token.Position { return d.StartPos }

// Parameter declares one or more formal parameter names sharing a type
// and passing mode. ByReference is true for "var" parameters (§3.2, §4.4).
type Parameter struct {
	StartPos    token.Position
	Names       []string
	Type        Type
	ByReference bool
}

func (p *Parameter) Pos() token.Position { return p.StartPos }

// Procedure is a parameterless-result subprogram declaration (§3.2).
type Procedure struct {
	StartPos token.Position
	Name     string
	Params   []*Parameter
	Locals   []*VarDeclaration
	Body     *Compound
}

func (p *Procedure) Pos() token.Position { return p.StartPos }
func (p *Procedure) subprogramNode()     {}

// Function is a subprogram declaration with a return type. Codegen
// synthesizes a "<name>_result" local to hold the return value (§4.4).
type Function struct {
	StartPos   token.Position
	Name       string
	Params     []*Parameter
	ReturnType Type
	Locals     []*VarDeclaration
	Body       *Compound
}

func (f *Function) Pos() token.Position { return f.StartPos }
func (f *Function) subprogramNode()     {}

// Program is the root of the tree: one translation unit (§3.2).
type Program struct {
	StartPos    token.Position
	Name        string
	Variables   []*VarDeclaration
	Subprograms []Subprogram
	Body        *Compound
}

func (p *Program) Pos() token.Position { return p.StartPos }
