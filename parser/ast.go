package parser

import "jbasic/types"

// Node is the base interface for all AST nodes
type Node interface {
	Position() Position
}

// Expr represents an expression node
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a statement node
type Stmt interface {
	Node
	stmtNode()
}

// Program is a parsed source file. Labels maps each label as written to
// the index of the top-level statement it marks.
type Program struct {
	Statements []Stmt
	Labels     map[string]int
	Source     string
}

// LabelAt returns the label attached to top-level statement i, if any
func (p *Program) LabelAt(i int) (string, bool) {
	for label, idx := range p.Labels {
		if idx == i {
			return label, true
		}
	}
	return "", false
}

// ============================================================================
// EXPRESSIONS
// ============================================================================

// LiteralExpr is a number or string literal. Raw keeps the source spelling.
type LiteralExpr struct {
	Pos   Position
	Value types.Value
	Raw   string
}

func (e *LiteralExpr) Position() Position { return e.Pos }
func (e *LiteralExpr) exprNode()          {}

// IdentifierExpr represents a variable reference
type IdentifierExpr struct {
	Pos  Position
	Name string
}

func (e *IdentifierExpr) Position() Position { return e.Pos }
func (e *IdentifierExpr) exprNode()          {}

// CallExpr is NAME(args). It is an array element when NAME is a declared
// array and a builtin call otherwise; the evaluator decides at run time.
type CallExpr struct {
	Pos  Position
	Name string
	Args []Expr
}

func (e *CallExpr) Position() Position { return e.Pos }
func (e *CallExpr) exprNode()          {}

// UnaryExpr represents a unary operation
type UnaryExpr struct {
	Pos      Position
	Operator TokenType // TOKEN_MINUS, TOKEN_PLUS, TOKEN_NOT
	Operand  Expr
}

func (e *UnaryExpr) Position() Position { return e.Pos }
func (e *UnaryExpr) exprNode()          {}

// BinaryExpr represents a binary operation
type BinaryExpr struct {
	Pos      Position
	Left     Expr
	Operator TokenType
	Right    Expr
}

func (e *BinaryExpr) Position() Position { return e.Pos }
func (e *BinaryExpr) exprNode()          {}

// ParenExpr represents a parenthesized expression
type ParenExpr struct {
	Pos  Position
	Expr Expr
}

func (e *ParenExpr) Position() Position { return e.Pos }
func (e *ParenExpr) exprNode()          {}

// ============================================================================
// STATEMENTS
// ============================================================================

// LetStmt assigns to a variable or array element. Implicit is set when
// the LET keyword was omitted.
type LetStmt struct {
	Pos      Position
	Target   Expr // *IdentifierExpr or *CallExpr
	Value    Expr
	Implicit bool
}

func (s *LetStmt) Position() Position { return s.Pos }
func (s *LetStmt) stmtNode()          {}

// DimDecl is one NAME(size, ...) in a DIM statement
type DimDecl struct {
	Pos   Position
	Name  string
	Sizes []Expr
}

// DimStmt declares one or more arrays
type DimStmt struct {
	Pos   Position
	Decls []DimDecl
}

func (s *DimStmt) Position() Position { return s.Pos }
func (s *DimStmt) stmtNode()          {}

// PrintStmt prints each expression on its own line
type PrintStmt struct {
	Pos   Position
	Exprs []Expr
}

func (s *PrintStmt) Position() Position { return s.Pos }
func (s *PrintStmt) stmtNode()          {}

// InputStmt prompts and reads one line into Target
type InputStmt struct {
	Pos    Position
	Prompt Expr // may be nil
	Target Expr
}

func (s *InputStmt) Position() Position { return s.Pos }
func (s *InputStmt) stmtNode()          {}

// ElseIfClause represents an ELSEIF branch
type ElseIfClause struct {
	Pos       Position
	Condition Expr
	Body      []Stmt
}

// IfStmt represents IF/ELSEIF/ELSE. SingleLine marks IF c THEN stmt [ELSE stmt].
type IfStmt struct {
	Pos        Position
	Condition  Expr
	Body       []Stmt
	ElseIfs    []*ElseIfClause
	Else       []Stmt
	SingleLine bool
}

func (s *IfStmt) Position() Position { return s.Pos }
func (s *IfStmt) stmtNode()          {}

// ForStmt represents FOR var = start TO end [STEP step] ... NEXT
type ForStmt struct {
	Pos   Position
	Var   string
	Start Expr
	End   Expr
	Step  Expr // may be nil
	Body  []Stmt
}

func (s *ForStmt) Position() Position { return s.Pos }
func (s *ForStmt) stmtNode()          {}

// WhileStmt represents WHILE cond ... WEND
type WhileStmt struct {
	Pos       Position
	Condition Expr
	Body      []Stmt
}

func (s *WhileStmt) Position() Position { return s.Pos }
func (s *WhileStmt) stmtNode()          {}

// DoStmt represents the DO ... LOOP family. With Condition nil the loop
// runs until EXIT. PostTest puts the test after the body; Until negates it.
type DoStmt struct {
	Pos       Position
	Condition Expr
	Until     bool
	PostTest  bool
	Body      []Stmt
}

func (s *DoStmt) Position() Position { return s.Pos }
func (s *DoStmt) stmtNode()          {}

// ContinueStmt starts the next iteration of the nearest loop
type ContinueStmt struct {
	Pos Position
}

func (s *ContinueStmt) Position() Position { return s.Pos }
func (s *ContinueStmt) stmtNode()          {}

// ExitStmt leaves the nearest loop
type ExitStmt struct {
	Pos Position
}

func (s *ExitStmt) Position() Position { return s.Pos }
func (s *ExitStmt) stmtNode()          {}

// GotoStmt transfers control to a label
type GotoStmt struct {
	Pos    Position
	Target string
}

func (s *GotoStmt) Position() Position { return s.Pos }
func (s *GotoStmt) stmtNode()          {}

// GosubStmt runs the routine at a label until RETURN
type GosubStmt struct {
	Pos    Position
	Target string
}

func (s *GosubStmt) Position() Position { return s.Pos }
func (s *GosubStmt) stmtNode()          {}

// CallStmt invokes a named subroutine. Keyword is CALL or GOSUB.
type CallStmt struct {
	Pos     Position
	Keyword TokenType
	Name    string
	Args    []Expr
}

func (s *CallStmt) Position() Position { return s.Pos }
func (s *CallStmt) stmtNode()          {}

// ReturnStmt returns from the innermost GOSUB or subroutine
type ReturnStmt struct {
	Pos Position
}

func (s *ReturnStmt) Position() Position { return s.Pos }
func (s *ReturnStmt) stmtNode()          {}

// EndStmt halts the program (END or STOP)
type EndStmt struct {
	Pos  Position
	Stop bool
}

func (s *EndStmt) Position() Position { return s.Pos }
func (s *EndStmt) stmtNode()          {}

// SubStmt defines a named subroutine when executed
type SubStmt struct {
	Pos    Position
	Name   string
	Params []string
	Body   []Stmt
}

func (s *SubStmt) Position() Position { return s.Pos }
func (s *SubStmt) stmtNode()          {}

// CaseClause is one CASE v1, v2 ... branch
type CaseClause struct {
	Pos    Position
	Values []Expr
	Body   []Stmt
}

// SelectStmt represents SELECT CASE subject ... END SELECT
type SelectStmt struct {
	Pos     Position
	Subject Expr
	Cases   []*CaseClause
	Else    []Stmt
	HasElse bool
}

func (s *SelectStmt) Position() Position { return s.Pos }
func (s *SelectStmt) stmtNode()          {}

// DataStmt holds literal values for READ
type DataStmt struct {
	Pos    Position
	Values []*LiteralExpr
}

func (s *DataStmt) Position() Position { return s.Pos }
func (s *DataStmt) stmtNode()          {}

// ReadStmt assigns the next DATA values to its targets
type ReadStmt struct {
	Pos     Position
	Targets []Expr // *IdentifierExpr or *CallExpr
}

func (s *ReadStmt) Position() Position { return s.Pos }
func (s *ReadStmt) stmtNode()          {}

// RestoreStmt rewinds the DATA pointer
type RestoreStmt struct {
	Pos Position
}

func (s *RestoreStmt) Position() Position { return s.Pos }
func (s *RestoreStmt) stmtNode()          {}

// RandomizeStmt reseeds the random source
type RandomizeStmt struct {
	Pos  Position
	Seed Expr // may be nil
}

func (s *RandomizeStmt) Position() Position { return s.Pos }
func (s *RandomizeStmt) stmtNode()          {}

// ClsStmt clears the screen
type ClsStmt struct {
	Pos Position
}

func (s *ClsStmt) Position() Position { return s.Pos }
func (s *ClsStmt) stmtNode()          {}
