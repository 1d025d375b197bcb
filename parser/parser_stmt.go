package parser

import (
	"jbasic/types"
)

// parseStatement parses a single statement, leaving the end-of-line token
func (p *Parser) parseStatement() (Stmt, error) {
	switch p.current.Type {
	case TOKEN_LET:
		pos := p.current.Position
		p.nextToken()
		return p.parseAssignment(pos, false)
	case TOKEN_IDENTIFIER:
		return p.parseAssignment(p.current.Position, true)
	case TOKEN_DIM:
		return p.parseDimStatement()
	case TOKEN_PRINT:
		return p.parsePrintStatement()
	case TOKEN_INPUT:
		return p.parseInputStatement()
	case TOKEN_IF:
		return p.parseIfStatement()
	case TOKEN_FOR:
		return p.parseForStatement()
	case TOKEN_WHILE:
		return p.parseWhileStatement()
	case TOKEN_DO:
		return p.parseDoStatement()
	case TOKEN_GOTO:
		return p.parseGotoStatement()
	case TOKEN_GOSUB:
		return p.parseGosubStatement()
	case TOKEN_CALL:
		return p.parseCallStatement()
	case TOKEN_SUB:
		return p.parseSubStatement()
	case TOKEN_SELECT:
		return p.parseSelectStatement()
	case TOKEN_DATA:
		return p.parseDataStatement()
	case TOKEN_READ:
		return p.parseReadStatement()
	case TOKEN_RANDOMIZE:
		return p.parseRandomizeStatement()
	case TOKEN_END:
		switch p.peek.Type {
		case TOKEN_IF, TOKEN_SUB, TOKEN_SELECT, TOKEN_WHILE:
			return nil, p.errorf(p.current.Position, "END %s without matching %s", p.peek.Type, p.peek.Type)
		}
		pos := p.current.Position
		p.nextToken()
		return &EndStmt{Pos: pos}, nil
	}

	// Single-keyword statements
	pos := p.current.Position
	var stmt Stmt
	switch p.current.Type {
	case TOKEN_STOP:
		stmt = &EndStmt{Pos: pos, Stop: true}
	case TOKEN_RETURN:
		stmt = &ReturnStmt{Pos: pos}
	case TOKEN_CONTINUE:
		stmt = &ContinueStmt{Pos: pos}
	case TOKEN_EXIT:
		stmt = &ExitStmt{Pos: pos}
	case TOKEN_RESTORE:
		stmt = &RestoreStmt{Pos: pos}
	case TOKEN_CLS:
		stmt = &ClsStmt{Pos: pos}
	default:
		return nil, p.errorf(pos, "unexpected %s at start of statement", describe(p.current))
	}
	p.nextToken()
	return stmt, nil
}

// parseTarget parses NAME or NAME(indices) on the left of an assignment
func (p *Parser) parseTarget() (Expr, error) {
	tok, err := p.expect(TOKEN_IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if p.current.Type != TOKEN_LPAREN {
		return &IdentifierExpr{Pos: tok.Position, Name: tok.Value}, nil
	}
	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	return &CallExpr{Pos: tok.Position, Name: tok.Value, Args: args}, nil
}

// parseAssignment parses [LET] target = expr
func (p *Parser) parseAssignment(pos Position, implicit bool) (Stmt, error) {
	target, err := p.parseTarget()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TOKEN_EQ); err != nil {
		return nil, err
	}
	value, err := p.ParseExpression(PREC_LOWEST)
	if err != nil {
		return nil, err
	}
	return &LetStmt{Pos: pos, Target: target, Value: value, Implicit: implicit}, nil
}

// parseDimStatement parses DIM A(n[, m[, k]])[, B(...)]
func (p *Parser) parseDimStatement() (Stmt, error) {
	stmt := &DimStmt{Pos: p.current.Position}
	p.nextToken() // consume DIM

	for {
		tok, err := p.expect(TOKEN_IDENTIFIER)
		if err != nil {
			return nil, err
		}
		sizes, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		stmt.Decls = append(stmt.Decls, DimDecl{Pos: tok.Position, Name: tok.Value, Sizes: sizes})
		if p.current.Type != TOKEN_COMMA {
			return stmt, nil
		}
		p.nextToken()
	}
}

// parsePrintStatement parses PRINT [expr {, expr}]
func (p *Parser) parsePrintStatement() (Stmt, error) {
	stmt := &PrintStmt{Pos: p.current.Position}
	p.nextToken() // consume PRINT
	if p.atEndOfStatement() || p.current.Type == TOKEN_ELSE {
		return stmt, nil
	}
	exprs, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	stmt.Exprs = exprs
	return stmt, nil
}

// parseInputStatement parses INPUT [prompt,] target
func (p *Parser) parseInputStatement() (Stmt, error) {
	stmt := &InputStmt{Pos: p.current.Position}
	p.nextToken() // consume INPUT

	if p.current.Type != TOKEN_IDENTIFIER || p.peek.Type == TOKEN_COMMA {
		prompt, err := p.ParseExpression(PREC_LOWEST)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TOKEN_COMMA); err != nil {
			return nil, err
		}
		stmt.Prompt = prompt
	}

	target, err := p.parseTarget()
	if err != nil {
		return nil, err
	}
	stmt.Target = target
	return stmt, nil
}

// parseIfStatement parses both the block and the single-line IF forms
func (p *Parser) parseIfStatement() (Stmt, error) {
	stmt := &IfStmt{Pos: p.current.Position}
	p.nextToken() // consume IF

	cond, err := p.ParseExpression(PREC_LOWEST)
	if err != nil {
		return nil, err
	}
	stmt.Condition = cond
	if _, err := p.expect(TOKEN_THEN); err != nil {
		return nil, err
	}

	if p.current.Type != TOKEN_NEWLINE {
		return p.parseSingleLineIf(stmt)
	}

	isBranchEnd := func() bool {
		return p.current.Type == TOKEN_ELSEIF || p.current.Type == TOKEN_ELSE || p.atEnd(TOKEN_IF)
	}

	body, err := p.parseBlock("IF", isBranchEnd)
	if err != nil {
		return nil, err
	}
	stmt.Body = body

	for p.current.Type == TOKEN_ELSEIF {
		clause := &ElseIfClause{Pos: p.current.Position}
		p.nextToken() // consume ELSEIF
		clause.Condition, err = p.ParseExpression(PREC_LOWEST)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TOKEN_THEN); err != nil {
			return nil, err
		}
		clause.Body, err = p.parseBlock("ELSEIF", isBranchEnd)
		if err != nil {
			return nil, err
		}
		stmt.ElseIfs = append(stmt.ElseIfs, clause)
	}

	if p.current.Type == TOKEN_ELSE {
		p.nextToken() // consume ELSE
		stmt.Else, err = p.parseBlock("ELSE", func() bool { return p.atEnd(TOKEN_IF) })
		if err != nil {
			return nil, err
		}
	}

	if err := p.expectEnd(TOKEN_IF); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseSingleLineIf parses IF c THEN stmt [ELSE stmt]. A bare number
// after THEN or ELSE is a GOTO.
func (p *Parser) parseSingleLineIf(stmt *IfStmt) (Stmt, error) {
	stmt.SingleLine = true

	then, err := p.parseInlineStatement()
	if err != nil {
		return nil, err
	}
	stmt.Body = []Stmt{then}

	if p.current.Type == TOKEN_ELSE {
		p.nextToken() // consume ELSE
		alt, err := p.parseInlineStatement()
		if err != nil {
			return nil, err
		}
		stmt.Else = []Stmt{alt}
	}
	return stmt, nil
}

func (p *Parser) parseInlineStatement() (Stmt, error) {
	switch p.current.Type {
	case TOKEN_NUMBER:
		tok := p.current
		p.nextToken()
		return &GotoStmt{Pos: tok.Position, Target: tok.Value}, nil
	case TOKEN_FOR, TOKEN_WHILE, TOKEN_DO, TOKEN_SUB, TOKEN_SELECT:
		return nil, p.errorf(p.current.Position, "%s block is not allowed in a single-line IF", p.current.Type)
	}
	return p.parseStatement()
}

// parseForStatement parses FOR v = a TO b [STEP s] ... NEXT [v]
func (p *Parser) parseForStatement() (Stmt, error) {
	stmt := &ForStmt{Pos: p.current.Position}
	p.nextToken() // consume FOR

	tok, err := p.expect(TOKEN_IDENTIFIER)
	if err != nil {
		return nil, err
	}
	stmt.Var = tok.Value
	if _, err := p.expect(TOKEN_EQ); err != nil {
		return nil, err
	}
	if stmt.Start, err = p.ParseExpression(PREC_LOWEST); err != nil {
		return nil, err
	}
	if _, err := p.expect(TOKEN_TO); err != nil {
		return nil, err
	}
	if stmt.End, err = p.ParseExpression(PREC_LOWEST); err != nil {
		return nil, err
	}
	if p.current.Type == TOKEN_STEP {
		p.nextToken()
		if stmt.Step, err = p.ParseExpression(PREC_LOWEST); err != nil {
			return nil, err
		}
	}

	stmt.Body, err = p.parseBlock("FOR", func() bool { return p.current.Type == TOKEN_NEXT })
	if err != nil {
		return nil, err
	}
	p.nextToken() // consume NEXT
	if p.current.Type == TOKEN_IDENTIFIER {
		if p.current.Value != stmt.Var {
			return nil, p.errorf(p.current.Position, "NEXT %s does not match FOR %s", p.current.Value, stmt.Var)
		}
		p.nextToken()
	}
	return stmt, nil
}

// parseWhileStatement parses WHILE cond ... WEND (or END WHILE)
func (p *Parser) parseWhileStatement() (Stmt, error) {
	stmt := &WhileStmt{Pos: p.current.Position}
	p.nextToken() // consume WHILE

	cond, err := p.ParseExpression(PREC_LOWEST)
	if err != nil {
		return nil, err
	}
	stmt.Condition = cond

	stmt.Body, err = p.parseBlock("WHILE", func() bool {
		return p.current.Type == TOKEN_WEND || p.atEnd(TOKEN_WHILE)
	})
	if err != nil {
		return nil, err
	}
	if p.current.Type == TOKEN_WEND {
		p.nextToken()
		return stmt, nil
	}
	return stmt, p.expectEnd(TOKEN_WHILE)
}

// parseDoStatement parses DO [WHILE|UNTIL c] ... LOOP [WHILE|UNTIL c]
func (p *Parser) parseDoStatement() (Stmt, error) {
	stmt := &DoStmt{Pos: p.current.Position}
	p.nextToken() // consume DO

	var err error
	if p.current.Type == TOKEN_WHILE || p.current.Type == TOKEN_UNTIL {
		stmt.Until = p.current.Type == TOKEN_UNTIL
		p.nextToken()
		if stmt.Condition, err = p.ParseExpression(PREC_LOWEST); err != nil {
			return nil, err
		}
	}

	stmt.Body, err = p.parseBlock("DO", func() bool { return p.current.Type == TOKEN_LOOP })
	if err != nil {
		return nil, err
	}
	loopTok := p.current
	p.nextToken() // consume LOOP

	if p.current.Type == TOKEN_WHILE || p.current.Type == TOKEN_UNTIL {
		if stmt.Condition != nil {
			return nil, p.errorf(loopTok.Position, "DO loop cannot test a condition at both ends")
		}
		stmt.Until = p.current.Type == TOKEN_UNTIL
		stmt.PostTest = true
		p.nextToken()
		if stmt.Condition, err = p.ParseExpression(PREC_LOWEST); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

// parseLabelRef parses the target of GOTO/GOSUB as written
func (p *Parser) parseLabelRef(keyword TokenType) (string, error) {
	switch p.current.Type {
	case TOKEN_NUMBER, TOKEN_IDENTIFIER:
		label := p.current.Value
		p.nextToken()
		return label, nil
	default:
		return "", p.errorf(p.current.Position, "expected label after %s, got %s", keyword, describe(p.current))
	}
}

// parseGotoStatement parses GOTO label
func (p *Parser) parseGotoStatement() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume GOTO
	label, err := p.parseLabelRef(TOKEN_GOTO)
	if err != nil {
		return nil, err
	}
	return &GotoStmt{Pos: pos, Target: label}, nil
}

// parseGosubStatement parses GOSUB label or GOSUB name(args)
func (p *Parser) parseGosubStatement() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume GOSUB

	if p.current.Type == TOKEN_IDENTIFIER && p.peek.Type == TOKEN_LPAREN {
		name := p.current.Value
		p.nextToken()
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		return &CallStmt{Pos: pos, Keyword: TOKEN_GOSUB, Name: name, Args: args}, nil
	}

	label, err := p.parseLabelRef(TOKEN_GOSUB)
	if err != nil {
		return nil, err
	}
	return &GosubStmt{Pos: pos, Target: label}, nil
}

// parseCallStatement parses CALL name[(args)]
func (p *Parser) parseCallStatement() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume CALL

	tok, err := p.expect(TOKEN_IDENTIFIER)
	if err != nil {
		return nil, err
	}
	stmt := &CallStmt{Pos: pos, Keyword: TOKEN_CALL, Name: tok.Value, Args: []Expr{}}
	if p.current.Type == TOKEN_LPAREN {
		if stmt.Args, err = p.parseArgs(); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

// parseSubStatement parses SUB name[(params)] ... END SUB
func (p *Parser) parseSubStatement() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume SUB

	tok, err := p.expect(TOKEN_IDENTIFIER)
	if err != nil {
		return nil, err
	}
	stmt := &SubStmt{Pos: pos, Name: tok.Value, Params: []string{}}

	if p.current.Type == TOKEN_LPAREN {
		p.nextToken()
		seen := make(map[string]bool)
		for p.current.Type != TOKEN_RPAREN {
			param, err := p.expect(TOKEN_IDENTIFIER)
			if err != nil {
				return nil, err
			}
			if seen[param.Value] {
				return nil, p.errorf(param.Position, "duplicate parameter %s in SUB %s", param.Value, stmt.Name)
			}
			seen[param.Value] = true
			stmt.Params = append(stmt.Params, param.Value)
			if p.current.Type == TOKEN_COMMA {
				p.nextToken()
			} else if p.current.Type != TOKEN_RPAREN {
				return nil, p.errorf(p.current.Position, "expected , or ) in parameter list, got %s", describe(p.current))
			}
		}
		p.nextToken() // consume )
	}

	stmt.Body, err = p.parseBlock("SUB", func() bool { return p.atEnd(TOKEN_SUB) })
	if err != nil {
		return nil, err
	}
	return stmt, p.expectEnd(TOKEN_SUB)
}

// parseSelectStatement parses SELECT CASE subject / CASE ... / END SELECT
func (p *Parser) parseSelectStatement() (Stmt, error) {
	stmt := &SelectStmt{Pos: p.current.Position}
	p.nextToken() // consume SELECT
	if _, err := p.expect(TOKEN_CASE); err != nil {
		return nil, err
	}

	subject, err := p.ParseExpression(PREC_LOWEST)
	if err != nil {
		return nil, err
	}
	stmt.Subject = subject

	isCaseEnd := func() bool {
		return p.current.Type == TOKEN_CASE || p.atEnd(TOKEN_SELECT)
	}

	for {
		p.skipNewlines()
		if p.atEnd(TOKEN_SELECT) {
			break
		}
		if p.current.Type != TOKEN_CASE {
			return nil, p.errorf(p.current.Position, "expected CASE, got %s", describe(p.current))
		}
		if stmt.HasElse {
			return nil, p.errorf(p.current.Position, "CASE after CASE ELSE")
		}
		pos := p.current.Position
		p.nextToken() // consume CASE

		if p.current.Type == TOKEN_ELSE {
			p.nextToken()
			if stmt.Else, err = p.parseBlock("CASE ELSE", isCaseEnd); err != nil {
				return nil, err
			}
			stmt.HasElse = true
			continue
		}

		clause := &CaseClause{Pos: pos}
		if clause.Values, err = p.parseExprList(); err != nil {
			return nil, err
		}
		if clause.Body, err = p.parseBlock("CASE", isCaseEnd); err != nil {
			return nil, err
		}
		stmt.Cases = append(stmt.Cases, clause)
	}

	return stmt, p.expectEnd(TOKEN_SELECT)
}

// parseDataStatement parses DATA literal {, literal}
func (p *Parser) parseDataStatement() (Stmt, error) {
	stmt := &DataStmt{Pos: p.current.Position}
	p.nextToken() // consume DATA

	for {
		lit, err := p.parseDataLiteral()
		if err != nil {
			return nil, err
		}
		stmt.Values = append(stmt.Values, lit)
		if p.current.Type != TOKEN_COMMA {
			return stmt, nil
		}
		p.nextToken()
	}
}

func (p *Parser) parseDataLiteral() (*LiteralExpr, error) {
	tok := p.current
	switch tok.Type {
	case TOKEN_STRING:
		p.nextToken()
		return &LiteralExpr{Pos: tok.Position, Value: types.NewStr(tok.Value), Raw: quoteString(tok.Value)}, nil
	case TOKEN_NUMBER:
		return p.parseNumberLiteral()
	case TOKEN_MINUS:
		p.nextToken()
		if p.current.Type != TOKEN_NUMBER {
			return nil, p.errorf(p.current.Position, "expected number after - in DATA, got %s", describe(p.current))
		}
		lit, err := p.parseNumberLiteral()
		if err != nil {
			return nil, err
		}
		n := lit.Value.(types.NumValue)
		return &LiteralExpr{Pos: tok.Position, Value: types.NewNum(-n.Val), Raw: "-" + lit.Raw}, nil
	default:
		return nil, p.errorf(tok.Position, "DATA values must be literals, got %s", describe(tok))
	}
}

// parseReadStatement parses READ target {, target}
func (p *Parser) parseReadStatement() (Stmt, error) {
	stmt := &ReadStmt{Pos: p.current.Position}
	p.nextToken() // consume READ

	for {
		target, err := p.parseTarget()
		if err != nil {
			return nil, err
		}
		stmt.Targets = append(stmt.Targets, target)
		if p.current.Type != TOKEN_COMMA {
			return stmt, nil
		}
		p.nextToken()
	}
}

// parseRandomizeStatement parses RANDOMIZE [seed]
func (p *Parser) parseRandomizeStatement() (Stmt, error) {
	stmt := &RandomizeStmt{Pos: p.current.Position}
	p.nextToken() // consume RANDOMIZE
	if p.atEndOfStatement() {
		return stmt, nil
	}
	seed, err := p.ParseExpression(PREC_LOWEST)
	if err != nil {
		return nil, err
	}
	stmt.Seed = seed
	return stmt, nil
}
