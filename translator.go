package pas2cpp

import (
	"fmt"
	"strings"

	"github.com/rjmorel/pas2cpp/internal/ast"
	"github.com/rjmorel/pas2cpp/internal/codegen"
	"github.com/rjmorel/pas2cpp/internal/console"
	"github.com/rjmorel/pas2cpp/internal/lexer"
	"github.com/rjmorel/pas2cpp/internal/parser"
)

// Program is a translated Pascal source: its AST, the generated C++ text
// and the original source.
type Program struct {
	prog   *ast.Program
	cpp    string
	source string
}

// Stats summarizes a program's shape, for verbose-mode reporting (§6).
type Stats struct {
	ProgramName string
	Variables   int
	Procedures  int
	Functions   int
	Statements  int
}

// Translate is a convenience wrapper around Compile and Program.CPP.
func Translate(source string, config *Config) (string, error) {
	prog, err := Compile(source, config)
	if err != nil {
		return "", err
	}
	return prog.CPP(), nil
}

// Compile parses and translates Pascal source into a Program. config
// may be nil to disable verbose diagnostics.
func Compile(source string, config *Config) (*Program, error) {
	out := config.output()
	verbose := config.verbose()

	if verbose {
		fmt.Fprintln(out, console.Banner(out, "stage 1: lexical analysis"))
	}

	if verbose {
		toks, terr := lexer.Tokenize([]byte(source))
		if terr == nil {
			fmt.Fprintln(out, console.Info(out, fmt.Sprintf("%d tokens", len(toks))))
		}
	}

	if verbose {
		fmt.Fprintln(out, console.Banner(out, "stage 2: syntactic analysis"))
	}

	astProg, err := parser.Parse([]byte(source))
	if err != nil {
		if le, ok := err.(*lexer.LexerError); ok {
			return nil, &LexerError{Line: le.Pos.Line, Column: le.Pos.Column, Message: le.Message}
		}
		if pe, ok := err.(*parser.ParseError); ok {
			return nil, &ParserError{Line: pe.Pos.Line, Column: pe.Pos.Column, Message: pe.Message}
		}
		return nil, &ParserError{Message: err.Error()}
	}

	if verbose {
		summary := ast.Summarize(astProg)
		fmt.Fprintln(out, console.Info(out, fmt.Sprintf(
			"program %s: %d variable group(s), %d procedure(s), %d function(s), %d statement(s)",
			summary.ProgramName, summary.VariableGroups, summary.Procedures, summary.Functions, summary.Statements,
		)))
	}

	if verbose {
		fmt.Fprintln(out, console.Banner(out, "stage 3: code generation"))
	}

	cpp, err := codegen.Generate(astProg)
	if err != nil {
		if ce, ok := err.(*codegen.CodeGenError); ok {
			return nil, &CodeGenError{Line: ce.Pos.Line, Column: ce.Pos.Column, Message: ce.Message}
		}
		return nil, &CodeGenError{Message: err.Error()}
	}

	if verbose {
		fmt.Fprintln(out, console.Info(out, fmt.Sprintf("%d lines generated", strings.Count(cpp, "\n")+1)))
		fmt.Fprintln(out, cpp)
	}

	return &Program{prog: astProg, cpp: cpp, source: source}, nil
}

// CPP returns the translated C++ source.
func (p *Program) CPP() string {
	return p.cpp
}

// Source returns the original Pascal source.
func (p *Program) Source() string {
	return p.source
}

// Stats summarizes the translated program's shape (§6).
func (p *Program) Stats() Stats {
	s := ast.Summarize(p.prog)
	return Stats{
		ProgramName: s.ProgramName,
		Variables:   s.VariableGroups,
		Procedures:  s.Procedures,
		Functions:   s.Functions,
		Statements:  s.Statements,
	}
}
