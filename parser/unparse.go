package parser

import (
	"sort"
	"strings"

	"jbasic/types"
)

// Unparse renders a program as canonical source: upper-case keywords,
// two-space block indentation, labels preserved.
func Unparse(prog *Program) string {
	lines := UnparseProgram(prog)
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// UnparseProgram converts a program back to source code lines
func UnparseProgram(prog *Program) []string {
	byIndex := make(map[int][]string)
	for label, idx := range prog.Labels {
		byIndex[idx] = append(byIndex[idx], label)
	}
	for _, labels := range byIndex {
		sort.Strings(labels)
	}

	var lines []string
	emitLabels := func(idx int) string {
		labels := byIndex[idx]
		if len(labels) == 0 {
			return ""
		}
		// all but the last label get a line of their own
		for _, l := range labels[:len(labels)-1] {
			lines = append(lines, labelPrefix(l))
		}
		return labelPrefix(labels[len(labels)-1]) + " "
	}

	for i, stmt := range prog.Statements {
		prefix := emitLabels(i)
		stmtLines := unparseStmt(stmt, 0)
		stmtLines[0] = prefix + stmtLines[0]
		lines = append(lines, stmtLines...)
	}
	if prefix := emitLabels(len(prog.Statements)); prefix != "" {
		lines = append(lines, strings.TrimSuffix(prefix, " "))
	}
	return lines
}

func labelPrefix(label string) string {
	if label != "" && isDigit(label[0]) {
		return label
	}
	return label + ":"
}

// unparseStmt converts a statement to one or more source lines
func unparseStmt(stmt Stmt, indent int) []string {
	ind := strings.Repeat("  ", indent)

	switch s := stmt.(type) {
	case *LetStmt:
		line := unparseExpr(s.Target, PREC_LOWEST) + " = " + unparseExpr(s.Value, PREC_LOWEST)
		if !s.Implicit {
			line = "LET " + line
		}
		return []string{ind + line}

	case *DimStmt:
		decls := make([]string, len(s.Decls))
		for i, d := range s.Decls {
			decls[i] = d.Name + unparseArgs(d.Sizes)
		}
		return []string{ind + "DIM " + strings.Join(decls, ", ")}

	case *PrintStmt:
		if len(s.Exprs) == 0 {
			return []string{ind + "PRINT"}
		}
		return []string{ind + "PRINT " + unparseExprList(s.Exprs)}

	case *InputStmt:
		line := "INPUT "
		if s.Prompt != nil {
			line += unparseExpr(s.Prompt, PREC_LOWEST) + ", "
		}
		return []string{ind + line + unparseExpr(s.Target, PREC_LOWEST)}

	case *IfStmt:
		cond := unparseExpr(s.Condition, PREC_LOWEST)
		if s.SingleLine {
			line := ind + "IF " + cond + " THEN " + unparseInline(s.Body[0])
			if len(s.Else) > 0 {
				line += " ELSE " + unparseInline(s.Else[0])
			}
			return []string{line}
		}
		lines := []string{ind + "IF " + cond + " THEN"}
		lines = append(lines, unparseBlock(s.Body, indent+1)...)
		for _, clause := range s.ElseIfs {
			lines = append(lines, ind+"ELSEIF "+unparseExpr(clause.Condition, PREC_LOWEST)+" THEN")
			lines = append(lines, unparseBlock(clause.Body, indent+1)...)
		}
		if len(s.Else) > 0 {
			lines = append(lines, ind+"ELSE")
			lines = append(lines, unparseBlock(s.Else, indent+1)...)
		}
		return append(lines, ind+"END IF")

	case *ForStmt:
		head := "FOR " + s.Var + " = " + unparseExpr(s.Start, PREC_LOWEST) + " TO " + unparseExpr(s.End, PREC_LOWEST)
		if s.Step != nil {
			head += " STEP " + unparseExpr(s.Step, PREC_LOWEST)
		}
		lines := []string{ind + head}
		lines = append(lines, unparseBlock(s.Body, indent+1)...)
		return append(lines, ind+"NEXT "+s.Var)

	case *WhileStmt:
		lines := []string{ind + "WHILE " + unparseExpr(s.Condition, PREC_LOWEST)}
		lines = append(lines, unparseBlock(s.Body, indent+1)...)
		return append(lines, ind+"WEND")

	case *DoStmt:
		test := ""
		if s.Condition != nil {
			kw := " WHILE "
			if s.Until {
				kw = " UNTIL "
			}
			test = kw + unparseExpr(s.Condition, PREC_LOWEST)
		}
		head, tail := "DO", "LOOP"
		if s.PostTest {
			tail += test
		} else {
			head += test
		}
		lines := []string{ind + head}
		lines = append(lines, unparseBlock(s.Body, indent+1)...)
		return append(lines, ind+tail)

	case *ContinueStmt:
		return []string{ind + "CONTINUE"}

	case *ExitStmt:
		return []string{ind + "EXIT"}

	case *GotoStmt:
		return []string{ind + "GOTO " + s.Target}

	case *GosubStmt:
		return []string{ind + "GOSUB " + s.Target}

	case *CallStmt:
		return []string{ind + s.Keyword.String() + " " + s.Name + unparseArgs(s.Args)}

	case *ReturnStmt:
		return []string{ind + "RETURN"}

	case *EndStmt:
		if s.Stop {
			return []string{ind + "STOP"}
		}
		return []string{ind + "END"}

	case *SubStmt:
		lines := []string{ind + "SUB " + s.Name + "(" + strings.Join(s.Params, ", ") + ")"}
		lines = append(lines, unparseBlock(s.Body, indent+1)...)
		return append(lines, ind+"END SUB")

	case *SelectStmt:
		lines := []string{ind + "SELECT CASE " + unparseExpr(s.Subject, PREC_LOWEST)}
		for _, c := range s.Cases {
			lines = append(lines, ind+"  CASE "+unparseExprList(c.Values))
			lines = append(lines, unparseBlock(c.Body, indent+2)...)
		}
		if s.HasElse {
			lines = append(lines, ind+"  CASE ELSE")
			lines = append(lines, unparseBlock(s.Else, indent+2)...)
		}
		return append(lines, ind+"END SELECT")

	case *DataStmt:
		vals := make([]string, len(s.Values))
		for i, v := range s.Values {
			vals[i] = v.Raw
		}
		return []string{ind + "DATA " + strings.Join(vals, ", ")}

	case *ReadStmt:
		return []string{ind + "READ " + unparseExprList(s.Targets)}

	case *RestoreStmt:
		return []string{ind + "RESTORE"}

	case *RandomizeStmt:
		if s.Seed == nil {
			return []string{ind + "RANDOMIZE"}
		}
		return []string{ind + "RANDOMIZE " + unparseExpr(s.Seed, PREC_LOWEST)}

	case *ClsStmt:
		return []string{ind + "CLS"}
	}
	return []string{ind + "REM ?"}
}

// unparseInline renders the branch of a single-line IF
func unparseInline(stmt Stmt) string {
	return unparseStmt(stmt, 0)[0]
}

func unparseBlock(stmts []Stmt, indent int) []string {
	var lines []string
	for _, s := range stmts {
		lines = append(lines, unparseStmt(s, indent)...)
	}
	return lines
}

// unparseExpr converts an expression to source, adding parentheses only
// where the tree would otherwise re-parse differently
func unparseExpr(expr Expr, parentPrecedence int) string {
	switch e := expr.(type) {
	case *LiteralExpr:
		return unparseLiteral(e)
	case *IdentifierExpr:
		return e.Name
	case *CallExpr:
		return e.Name + unparseArgs(e.Args)
	case *ParenExpr:
		return "(" + unparseExpr(e.Expr, PREC_LOWEST) + ")"
	case *UnaryExpr:
		prec := PREC_UNARY
		op := unparseOp(e.Operator)
		if e.Operator == TOKEN_NOT {
			prec = PREC_NOT
			op += " "
		}
		s := op + unparseExpr(e.Operand, prec)
		if prec <= parentPrecedence {
			return "(" + s + ")"
		}
		return s
	case *BinaryExpr:
		prec := precedences[e.Operator]
		leftPrec, rightPrec := prec-1, prec
		if e.Operator == TOKEN_CARET {
			leftPrec, rightPrec = prec, prec-1
		}
		s := unparseExpr(e.Left, leftPrec) + " " + unparseOp(e.Operator) + " " + unparseExpr(e.Right, rightPrec)
		if prec <= parentPrecedence {
			return "(" + s + ")"
		}
		return s
	}
	return "?"
}

func unparseLiteral(e *LiteralExpr) string {
	if e.Raw != "" {
		return e.Raw
	}
	switch v := e.Value.(type) {
	case types.StrValue:
		return quoteString(v.Value())
	case types.NumValue:
		return types.FormatNumber(v.Val)
	}
	return e.Value.String()
}

func unparseOp(op TokenType) string {
	switch op {
	case TOKEN_AND, TOKEN_OR, TOKEN_NOT, TOKEN_MOD:
		return op.String()
	}
	return tokenNames[op]
}

func unparseArgs(args []Expr) string {
	return "(" + unparseExprList(args) + ")"
}

func unparseExprList(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = unparseExpr(e, PREC_LOWEST)
	}
	return strings.Join(parts, ", ")
}
