package codegen

import (
	"strconv"

	"github.com/rjmorel/pas2cpp/internal/ast"
)

// arrayDim is one sized, zero-or-nonzero-based dimension of a declared
// array, resolved once at the point of declaration (§4.4: array sizes
// must be literal; the Open-Question decision here is to reject anything
// else with a *CodeGenError rather than guess a fallback size).
type arrayDim struct {
	Low  int
	Size int
}

// arrayInfo is what codegen needs to know about a declared array to
// lower indexing expressions: its per-dimension bounds.
type arrayInfo struct {
	Dims []arrayDim
}

// arrayScope is codegen's array-bounds scope: exactly two levels, a
// global frame and the current subprogram's frame, adapted from the
// teacher's internal/semantic/symbols.go SymbolTable (parent-pointer,
// arbitrary depth) and flattened because this grammar never nests
// subprograms — a lookup checks the current frame, then falls back to
// global.
type arrayScope struct {
	global  map[string]arrayInfo
	current map[string]arrayInfo
}

func newArrayScope() *arrayScope {
	return &arrayScope{global: map[string]arrayInfo{}}
}

// enter starts a fresh local frame for a subprogram body.
func (s *arrayScope) enter() {
	s.current = map[string]arrayInfo{}
}

// exit discards the local frame on leaving a subprogram body.
func (s *arrayScope) exit() {
	s.current = nil
}

func (s *arrayScope) defineGlobal(name string, info arrayInfo) {
	s.global[name] = info
}

func (s *arrayScope) defineLocal(name string, info arrayInfo) {
	s.current[name] = info
}

func (s *arrayScope) lookup(name string) (arrayInfo, bool) {
	if s.current != nil {
		if info, ok := s.current[name]; ok {
			return info, true
		}
	}
	info, ok := s.global[name]
	return info, ok
}

// resolveArrayType computes the per-dimension (low, size) pairs for an
// array type, panicking with a *CodeGenError if any bound is not a
// literal integer — codegen cannot size a C++ array otherwise.
func resolveArrayType(at *ast.ArrayType) arrayInfo {
	info := arrayInfo{Dims: make([]arrayDim, len(at.Dimensions))}
	for i, dim := range at.Dimensions {
		lowLit, ok := dim.Low.(*ast.IntegerLiteral)
		if !ok {
			failAt(dim.Low.Pos(), "array bound must be an integer literal, got %T", dim.Low)
		}
		highLit, ok := dim.High.(*ast.IntegerLiteral)
		if !ok {
			failAt(dim.High.Pos(), "array bound must be an integer literal, got %T", dim.High)
		}
		low, err := strconv.Atoi(lowLit.Value)
		if err != nil {
			failAt(lowLit.Pos(), "invalid array lower bound %q", lowLit.Value)
		}
		high, err := strconv.Atoi(highLit.Value)
		if err != nil {
			failAt(highLit.Pos(), "invalid array upper bound %q", highLit.Value)
		}
		if high < low {
			failAt(at.Pos(), "array upper bound %d is below lower bound %d", high, low)
		}
		info.Dims[i] = arrayDim{Low: low, Size: high - low + 1}
	}
	return info
}
