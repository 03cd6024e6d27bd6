package parser

import (
	"unicode/utf8"

	"github.com/rjmorel/pas2cpp/internal/ast"
	"github.com/rjmorel/pas2cpp/internal/lexer"
	"github.com/rjmorel/pas2cpp/internal/token"
)

// Parser builds an AST from a pre-scanned token sequence using predictive
// recursive descent with single-token lookahead and no backtracking
// (§4.2). It does not resynchronize after an error: parseXxx routines
// panic with a *ParseError, caught once at the top by Parse.
type Parser struct {
	toks []lexer.Token
	pos  int
}

// Parse lexes and parses src, returning the root Program node or the
// first LexerError/ParseError encountered (§4.2, §7).
func Parse(src []byte) (*ast.Program, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}

	p := &Parser{toks: toks}
	var prog *ast.Program
	var perr error

	func() {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			if pe, ok := r.(*ParseError); ok {
				perr = pe
				return
			}
			panic(r)
		}()
		prog = p.parseProgram()
		if p.cur().Type != token.EOF {
			panic(expectedError(p.cur().Pos, "end of file", p.tokenDesc()))
		}
	}()

	if perr != nil {
		return nil, perr
	}
	return prog, nil
}

// -----------------------------------------------------------------------------
// Token handling
// -----------------------------------------------------------------------------

func (p *Parser) cur() lexer.Token {
	return p.toks[p.pos]
}

func (p *Parser) next() {
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
}

// expect consumes the current token if it has type tt, returning its
// position; otherwise it panics with a *ParseError.
func (p *Parser) expect(tt token.Token) token.Position {
	tok := p.cur()
	if tok.Type != tt {
		panic(expectedError(tok.Pos, tt.String(), p.tokenDesc()))
	}
	p.next()
	return tok.Pos
}

// expectIdent consumes an IDENT token, returning its text and position.
func (p *Parser) expectIdent() (string, token.Position) {
	tok := p.cur()
	if tok.Type != token.IDENT {
		panic(expectedError(tok.Pos, "identifier", p.tokenDesc()))
	}
	p.next()
	return tok.Value, tok.Pos
}

// tokenDesc describes the current token for error messages.
func (p *Parser) tokenDesc() string {
	tok := p.cur()
	switch tok.Type {
	case token.IDENT, token.INT_LIT, token.REAL_LIT, token.STRING_LIT, token.CHAR_LIT, token.ILLEGAL:
		return tok.Value
	case token.EOF:
		return "end of file"
	default:
		return tok.Type.String()
	}
}

// -----------------------------------------------------------------------------
// Program structure: program, var_section, type, subprogram, params
// -----------------------------------------------------------------------------

func (p *Parser) parseProgram() *ast.Program {
	pos := p.expect(token.PROGRAM)
	name, _ := p.expectIdent()
	p.expect(token.SEMICOLON)

	var vars []*ast.VarDeclaration
	if p.cur().Type == token.VAR {
		vars = p.parseVarSection()
	}

	var subs []ast.Subprogram
	for p.cur().Type == token.PROCEDURE || p.cur().Type == token.FUNCTION {
		subs = append(subs, p.parseSubprogram())
	}

	body := p.parseCompound()
	p.expect(token.DOT)

	return &ast.Program{StartPos: pos, Name: name, Variables: vars, Subprograms: subs, Body: body}
}

// parseVarSection parses 'var' (var_decl ';')+.
func (p *Parser) parseVarSection() []*ast.VarDeclaration {
	p.expect(token.VAR)
	var decls []*ast.VarDeclaration

	decls = append(decls, p.parseVarDecl())
	p.expect(token.SEMICOLON)
	for p.cur().Type == token.IDENT {
		decls = append(decls, p.parseVarDecl())
		p.expect(token.SEMICOLON)
	}
	return decls
}

func (p *Parser) parseVarDecl() *ast.VarDeclaration {
	pos := p.cur().Pos
	names := []string{p.mustIdentName()}
	for p.cur().Type == token.COMMA {
		p.next()
		names = append(names, p.mustIdentName())
	}
	p.expect(token.COLON)
	typ := p.parseType()
	return &ast.VarDeclaration{StartPos: pos, Names: names, Type: typ}
}

func (p *Parser) mustIdentName() string {
	name, _ := p.expectIdent()
	return name
}

func (p *Parser) parseType() ast.Type {
	tok := p.cur()
	if tok.Type == token.ARRAY {
		return p.parseArrayType()
	}
	if tok.Type.IsPrimitiveType() {
		p.next()
		return &ast.PrimitiveType{StartPos: tok.Pos, Name: tok.Type.String()}
	}
	panic(expectedError(tok.Pos, "type", p.tokenDesc()))
}

func (p *Parser) parseArrayType() *ast.ArrayType {
	pos := p.expect(token.ARRAY)
	p.expect(token.LBRACKET)

	dims := []ast.Dimension{p.parseRange()}
	for p.cur().Type == token.COMMA {
		p.next()
		dims = append(dims, p.parseRange())
	}
	p.expect(token.RBRACKET)
	p.expect(token.OF)
	elem := p.parseType()

	return &ast.ArrayType{StartPos: pos, ElementType: elem, Dimensions: dims}
}

func (p *Parser) parseRange() ast.Dimension {
	low := p.parseExpression()
	p.expect(token.RANGE)
	high := p.parseExpression()
	return ast.Dimension{Low: low, High: high}
}

func (p *Parser) parseSubprogram() ast.Subprogram {
	if p.cur().Type == token.PROCEDURE {
		return p.parseProcedure()
	}
	return p.parseFunction()
}

func (p *Parser) parseProcedure() *ast.Procedure {
	pos := p.expect(token.PROCEDURE)
	name, _ := p.expectIdent()

	var params []*ast.Parameter
	if p.cur().Type == token.LPAREN {
		params = p.parseParams()
	}
	p.expect(token.SEMICOLON)

	var locals []*ast.VarDeclaration
	if p.cur().Type == token.VAR {
		locals = p.parseVarSection()
	}

	body := p.parseCompound()
	p.expect(token.SEMICOLON)

	return &ast.Procedure{StartPos: pos, Name: name, Params: params, Locals: locals, Body: body}
}

func (p *Parser) parseFunction() *ast.Function {
	pos := p.expect(token.FUNCTION)
	name, _ := p.expectIdent()

	var params []*ast.Parameter
	if p.cur().Type == token.LPAREN {
		params = p.parseParams()
	}
	p.expect(token.COLON)
	ret := p.parseType()
	p.expect(token.SEMICOLON)

	var locals []*ast.VarDeclaration
	if p.cur().Type == token.VAR {
		locals = p.parseVarSection()
	}

	body := p.parseCompound()
	p.expect(token.SEMICOLON)

	return &ast.Function{StartPos: pos, Name: name, Params: params, ReturnType: ret, Locals: locals, Body: body}
}

func (p *Parser) parseParams() []*ast.Parameter {
	p.expect(token.LPAREN)
	params := []*ast.Parameter{p.parseParam()}
	for p.cur().Type == token.SEMICOLON {
		p.next()
		params = append(params, p.parseParam())
	}
	p.expect(token.RPAREN)
	return params
}

func (p *Parser) parseParam() *ast.Parameter {
	pos := p.cur().Pos
	byRef := false
	if p.cur().Type == token.VAR {
		byRef = true
		p.next()
	}
	names := []string{p.mustIdentName()}
	for p.cur().Type == token.COMMA {
		p.next()
		names = append(names, p.mustIdentName())
	}
	p.expect(token.COLON)
	typ := p.parseType()
	return &ast.Parameter{StartPos: pos, Names: names, Type: typ, ByReference: byRef}
}

// -----------------------------------------------------------------------------
// Statements
// -----------------------------------------------------------------------------

func (p *Parser) parseCompound() *ast.Compound {
	pos := p.expect(token.BEGIN)
	var stmts []ast.Stmt
	for p.cur().Type != token.END {
		stmts = append(stmts, p.parseStmt())
		if p.cur().Type == token.SEMICOLON {
			p.next()
			continue
		}
		break
	}
	p.expect(token.END)
	return &ast.Compound{BaseStmt: ast.BaseStmt{StartPos: pos}, Stmts: stmts}
}

func (p *Parser) parseStmt() ast.Stmt {
	tok := p.cur()
	switch {
	case tok.Type == token.BEGIN:
		return p.parseCompound()
	case tok.Type == token.IF:
		return p.parseIf()
	case tok.Type == token.WHILE:
		return p.parseWhile()
	case tok.Type == token.REPEAT:
		return p.parseRepeat()
	case tok.Type == token.FOR:
		return p.parseFor()
	case tok.Type == token.CASE:
		return p.parseCase()
	case tok.Type == token.IDENT || tok.Type.IsBuiltin():
		return p.parseAssignOrCall()
	default:
		return &ast.Empty{BaseStmt: ast.BaseStmt{StartPos: tok.Pos}}
	}
}

func (p *Parser) parseIf() *ast.If {
	pos := p.expect(token.IF)
	cond := p.parseExpression()
	p.expect(token.THEN)
	then := p.parseStmt()

	var els ast.Stmt
	if p.cur().Type == token.ELSE {
		p.next()
		els = p.parseStmt()
	}
	return &ast.If{BaseStmt: ast.BaseStmt{StartPos: pos}, Cond: cond, Then: then, Else: els}
}

func (p *Parser) parseWhile() *ast.While {
	pos := p.expect(token.WHILE)
	cond := p.parseExpression()
	p.expect(token.DO)
	body := p.parseStmt()
	return &ast.While{BaseStmt: ast.BaseStmt{StartPos: pos}, Cond: cond, Body: body}
}

func (p *Parser) parseRepeat() *ast.Repeat {
	pos := p.expect(token.REPEAT)
	var stmts []ast.Stmt
	for {
		stmts = append(stmts, p.parseStmt())
		if p.cur().Type == token.SEMICOLON {
			p.next()
			if p.cur().Type == token.UNTIL {
				break
			}
			continue
		}
		break
	}
	p.expect(token.UNTIL)
	until := p.parseExpression()
	return &ast.Repeat{BaseStmt: ast.BaseStmt{StartPos: pos}, Body: stmts, Until: until}
}

func (p *Parser) parseFor() *ast.For {
	pos := p.expect(token.FOR)
	loopVar, _ := p.expectIdent()
	p.expect(token.ASSIGN)
	start := p.parseExpression()

	downto := false
	switch p.cur().Type {
	case token.TO:
		p.next()
	case token.DOWNTO:
		downto = true
		p.next()
	default:
		panic(expectedError(p.cur().Pos, "'to' or 'downto'", p.tokenDesc()))
	}

	end := p.parseExpression()
	p.expect(token.DO)
	body := p.parseStmt()

	return &ast.For{BaseStmt: ast.BaseStmt{StartPos: pos}, LoopVar: loopVar, Start: start, End: end, Downto: downto, Body: body}
}

func (p *Parser) parseCase() *ast.Case {
	pos := p.expect(token.CASE)
	scrutinee := p.parseExpression()
	p.expect(token.OF)

	var branches []ast.CaseBranch
	for {
		branches = append(branches, p.parseCaseBranch())
		if p.cur().Type == token.SEMICOLON {
			p.next()
			if p.cur().Type == token.ELSE || p.cur().Type == token.END {
				break
			}
			continue
		}
		break
	}

	var els ast.Stmt
	if p.cur().Type == token.ELSE {
		p.next()
		els = p.parseStmt()
	}
	p.expect(token.END)

	return &ast.Case{BaseStmt: ast.BaseStmt{StartPos: pos}, Scrutinee: scrutinee, Branches: branches, Else: els}
}

func (p *Parser) parseCaseBranch() ast.CaseBranch {
	values := []ast.Expr{p.parseExpression()}
	for p.cur().Type == token.COMMA {
		p.next()
		values = append(values, p.parseExpression())
	}
	p.expect(token.COLON)
	stmt := p.parseStmt()
	return ast.CaseBranch{Values: values, Stmt: stmt}
}

// parseAssignOrCall implements:
//
//	IDENT ('[' expr (',' expr)* ']')? (':=' expr | ('(' args? ')')?)
//
// An indexed name is always an assignment target (disambiguation note,
// §4.2); a bare or parenthesized name is a procedure call.
func (p *Parser) parseAssignOrCall() ast.Stmt {
	nameTok := p.cur()
	name := nameTok.Value
	p.next()

	var indices []ast.Expr
	if p.cur().Type == token.LBRACKET {
		p.next()
		indices = append(indices, p.parseExpression())
		for p.cur().Type == token.COMMA {
			p.next()
			indices = append(indices, p.parseExpression())
		}
		p.expect(token.RBRACKET)
	}

	if len(indices) > 0 || p.cur().Type == token.ASSIGN {
		p.expect(token.ASSIGN)
		value := p.parseExpression()
		target := &ast.Variable{BaseExpr: ast.BaseExpr{StartPos: nameTok.Pos}, Name: name, Indices: indices}
		return &ast.Assignment{BaseStmt: ast.BaseStmt{StartPos: nameTok.Pos}, Target: target, Value: value}
	}

	var args []ast.Expr
	if p.cur().Type == token.LPAREN {
		p.next()
		if p.cur().Type != token.RPAREN {
			args = append(args, p.parseExpression())
			for p.cur().Type == token.COMMA {
				p.next()
				args = append(args, p.parseExpression())
			}
		}
		p.expect(token.RPAREN)
	}

	return &ast.ProcedureCall{BaseStmt: ast.BaseStmt{StartPos: nameTok.Pos}, Name: name, Args: args}
}

// -----------------------------------------------------------------------------
// Expressions
// -----------------------------------------------------------------------------

// parseExpression is the relational level: a single, non-associative
// comparison on top of two additive-level operands (§4.2 precedence 1).
func (p *Parser) parseExpression() ast.Expr {
	left := p.parseSimpleExpression()
	switch p.cur().Type {
	case token.EQ, token.NEQ, token.LT, token.LE, token.GT, token.GE:
		op := p.cur()
		p.next()
		right := p.parseSimpleExpression()
		return &ast.BinaryOp{BaseExpr: ast.BaseExpr{StartPos: left.Pos()}, Left: left, Op: op.Value, Right: right}
	default:
		return left
	}
}

// parseSimpleExpression is the additive level: + - or xor, left
// associative, with an optional leading unary +/- (§4.2 precedence 2).
func (p *Parser) parseSimpleExpression() ast.Expr {
	var left ast.Expr
	if p.cur().Type == token.PLUS || p.cur().Type == token.MINUS {
		op := p.cur()
		p.next()
		operand := p.parseTerm()
		left = &ast.UnaryOp{BaseExpr: ast.BaseExpr{StartPos: op.Pos}, Op: op.Value, Operand: operand}
	} else {
		left = p.parseTerm()
	}

	for {
		switch p.cur().Type {
		case token.PLUS, token.MINUS:
			op := p.cur()
			p.next()
			right := p.parseTerm()
			left = &ast.BinaryOp{BaseExpr: ast.BaseExpr{StartPos: left.Pos()}, Left: left, Op: op.Value, Right: right}
		case token.OR, token.XOR:
			op := p.cur()
			p.next()
			right := p.parseTerm()
			left = &ast.BinaryOp{BaseExpr: ast.BaseExpr{StartPos: left.Pos()}, Left: left, Op: op.Type.String(), Right: right}
		default:
			return left
		}
	}
}

// parseTerm is the multiplicative level: * / div mod and, left
// associative (§4.2 precedence 3).
func (p *Parser) parseTerm() ast.Expr {
	left := p.parseFactor()
	for {
		switch p.cur().Type {
		case token.STAR, token.SLASH:
			op := p.cur()
			p.next()
			right := p.parseFactor()
			left = &ast.BinaryOp{BaseExpr: ast.BaseExpr{StartPos: left.Pos()}, Left: left, Op: op.Value, Right: right}
		case token.DIV, token.MOD, token.AND:
			op := p.cur()
			p.next()
			right := p.parseFactor()
			left = &ast.BinaryOp{BaseExpr: ast.BaseExpr{StartPos: left.Pos()}, Left: left, Op: op.Type.String(), Right: right}
		default:
			return left
		}
	}
}

// parseFactor is the highest-precedence level: unary not, a
// parenthesized expression, a literal, or an identifier optionally
// followed by '[...]' (Variable) or '(...)' (FunctionCall) (§4.2
// precedence 4).
func (p *Parser) parseFactor() ast.Expr {
	tok := p.cur()
	switch {
	case tok.Type == token.NOT:
		p.next()
		operand := p.parseFactor()
		return &ast.UnaryOp{BaseExpr: ast.BaseExpr{StartPos: tok.Pos}, Op: tok.Type.String(), Operand: operand}

	case tok.Type == token.LPAREN:
		p.next()
		e := p.parseExpression()
		p.expect(token.RPAREN)
		return e

	case tok.Type == token.INT_LIT:
		p.next()
		return &ast.IntegerLiteral{BaseExpr: ast.BaseExpr{StartPos: tok.Pos}, Value: tok.Value}

	case tok.Type == token.REAL_LIT:
		p.next()
		return &ast.RealLiteral{BaseExpr: ast.BaseExpr{StartPos: tok.Pos}, Value: tok.Value}

	case tok.Type == token.STRING_LIT:
		p.next()
		return &ast.StringLiteral{BaseExpr: ast.BaseExpr{StartPos: tok.Pos}, Value: tok.Value}

	case tok.Type == token.CHAR_LIT:
		p.next()
		r, _ := utf8.DecodeRuneInString(tok.Value)
		return &ast.CharLiteral{BaseExpr: ast.BaseExpr{StartPos: tok.Pos}, Value: r}

	case tok.Type == token.TRUE:
		p.next()
		return &ast.BooleanLiteral{BaseExpr: ast.BaseExpr{StartPos: tok.Pos}, Value: true}

	case tok.Type == token.FALSE:
		p.next()
		return &ast.BooleanLiteral{BaseExpr: ast.BaseExpr{StartPos: tok.Pos}, Value: false}

	case tok.Type == token.IDENT || tok.Type.IsBuiltin():
		return p.parseIdentOrCallExpr(tok)

	default:
		panic(expectedError(tok.Pos, "expression", p.tokenDesc()))
	}
}

func (p *Parser) parseIdentOrCallExpr(tok lexer.Token) ast.Expr {
	name := tok.Value
	p.next()

	if p.cur().Type == token.LBRACKET {
		p.next()
		indices := []ast.Expr{p.parseExpression()}
		for p.cur().Type == token.COMMA {
			p.next()
			indices = append(indices, p.parseExpression())
		}
		p.expect(token.RBRACKET)
		return &ast.Variable{BaseExpr: ast.BaseExpr{StartPos: tok.Pos}, Name: name, Indices: indices}
	}

	if p.cur().Type == token.LPAREN {
		p.next()
		var args []ast.Expr
		if p.cur().Type != token.RPAREN {
			args = append(args, p.parseExpression())
			for p.cur().Type == token.COMMA {
				p.next()
				args = append(args, p.parseExpression())
			}
		}
		p.expect(token.RPAREN)
		return &ast.FunctionCall{BaseExpr: ast.BaseExpr{StartPos: tok.Pos}, Name: name, Args: args}
	}

	return &ast.Variable{BaseExpr: ast.BaseExpr{StartPos: tok.Pos}, Name: name}
}
