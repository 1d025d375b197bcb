package eval

import (
	"jbasic/parser"
	"jbasic/types"
)

// collectData gathers the values of every DATA statement in source order,
// including those nested in blocks and subroutine bodies
func collectData(stmts []parser.Stmt) []types.Value {
	var out []types.Value
	walkStmts(stmts, func(stmt parser.Stmt) {
		if d, ok := stmt.(*parser.DataStmt); ok {
			for _, lit := range d.Values {
				out = append(out, lit.Value)
			}
		}
	})
	return out
}

// walkStmts visits each statement and then its nested blocks, depth first
func walkStmts(stmts []parser.Stmt, visit func(parser.Stmt)) {
	for _, stmt := range stmts {
		visit(stmt)
		switch s := stmt.(type) {
		case *parser.IfStmt:
			walkStmts(s.Body, visit)
			for _, clause := range s.ElseIfs {
				walkStmts(clause.Body, visit)
			}
			walkStmts(s.Else, visit)
		case *parser.ForStmt:
			walkStmts(s.Body, visit)
		case *parser.WhileStmt:
			walkStmts(s.Body, visit)
		case *parser.DoStmt:
			walkStmts(s.Body, visit)
		case *parser.SubStmt:
			walkStmts(s.Body, visit)
		case *parser.SelectStmt:
			for _, c := range s.Cases {
				walkStmts(c.Body, visit)
			}
			walkStmts(s.Else, visit)
		}
	}
}

// RunSource parses and runs a program in one step
func RunSource(source string, opts ...Option) (*Evaluator, error) {
	prog, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}
	e := New(prog, opts...)
	return e, e.Run()
}
