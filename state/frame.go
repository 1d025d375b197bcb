package state

import (
	"jbasic/parser"
	"jbasic/types"
)

// FrameKind distinguishes the two ways a call frame is created
type FrameKind int

const (
	FrameGosub FrameKind = iota // GOSUB label: shares the caller's scope
	FrameSub                    // CALL/GOSUB name(args): owns a local scope
)

func (k FrameKind) String() string {
	switch k {
	case FrameGosub:
		return "GOSUB"
	case FrameSub:
		return "SUB"
	default:
		return "unknown"
	}
}

// CallFrame represents a single active call on the call stack
type CallFrame struct {
	Kind        FrameKind
	Name        string        // label for GOSUB, subroutine name for SUB
	Args        []types.Value // arguments bound to parameters (SUB only)
	ReturnIndex int           // top-level statement the caller resumes at
	Line        int           // line of the calling statement
	Column      int
	scope       *Scope // nil when the frame shares the caller's scope
}

// NewSubFrame creates a frame with a fresh local scope holding the
// parameter bindings
func NewSubFrame(sub *Subroutine, args []types.Value) CallFrame {
	scope := NewScope()
	for i, p := range sub.Params {
		scope.vars[p] = args[i]
	}
	return CallFrame{
		Kind:        FrameSub,
		Name:        sub.Name,
		Args:        args,
		ReturnIndex: -1,
		scope:       scope,
	}
}

// NewGosubFrame creates a frame for GOSUB label
func NewGosubFrame(label string, returnIndex int) CallFrame {
	return CallFrame{
		Kind:        FrameGosub,
		Name:        label,
		ReturnIndex: returnIndex,
	}
}

// HasScope reports whether the frame owns a local scope
func (f *CallFrame) HasScope() bool {
	return f.scope != nil
}

// Subroutine is a named subroutine registered by a SUB statement
type Subroutine struct {
	Name   string
	Params []string
	Body   []parser.Stmt
	Line   int
}

// NewSubroutine builds a Subroutine from its definition
func NewSubroutine(def *parser.SubStmt) *Subroutine {
	return &Subroutine{
		Name:   def.Name,
		Params: append([]string(nil), def.Params...),
		Body:   def.Body,
		Line:   def.Pos.Line,
	}
}

// Scope holds the scalar variables and arrays of one frame
type Scope struct {
	vars   map[string]types.Value
	arrays map[string]*types.ArrayValue
}

// NewScope creates an empty scope
func NewScope() *Scope {
	return &Scope{
		vars:   make(map[string]types.Value),
		arrays: make(map[string]*types.ArrayValue),
	}
}
