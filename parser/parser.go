package parser

// Parser parses BASIC source code into a Program
type Parser struct {
	lexer   *Lexer
	current Token
	peek    Token
}

// NewParser creates a new Parser instance
func NewParser(input string) *Parser {
	p := &Parser{
		lexer: NewLexer(input),
	}
	// Read two tokens to initialize current and peek
	p.nextToken()
	p.nextToken()
	return p
}

// Parse parses a complete program
func Parse(source string) (*Program, error) {
	return NewParser(source).ParseProgram()
}

// nextToken advances to the next token
func (p *Parser) nextToken() {
	p.current = p.peek
	p.peek = p.lexer.NextToken()
}

// expect consumes a token of type t or fails
func (p *Parser) expect(t TokenType) (Token, error) {
	tok := p.current
	if tok.Type != t {
		return tok, p.errorf(tok.Position, "expected %s, got %s", t, describe(tok))
	}
	p.nextToken()
	return tok, nil
}

// skipNewlines consumes blank lines
func (p *Parser) skipNewlines() {
	for p.current.Type == TOKEN_NEWLINE {
		p.nextToken()
	}
}

// atEndOfStatement reports whether the current token ends a statement
func (p *Parser) atEndOfStatement() bool {
	return p.current.Type == TOKEN_NEWLINE || p.current.Type == TOKEN_EOF
}

// expectEndOfStatement requires a newline or end of input after a statement
func (p *Parser) expectEndOfStatement() error {
	if !p.atEndOfStatement() {
		return p.errorf(p.current.Position, "unexpected %s after statement", describe(p.current))
	}
	return nil
}

// atLabel reports whether a line starts with a label: a number, or an
// identifier followed by a colon
func (p *Parser) atLabel() bool {
	if p.current.Type == TOKEN_NUMBER {
		return true
	}
	return p.current.Type == TOKEN_IDENTIFIER && p.peek.Type == TOKEN_COLON
}

// parseLabel consumes a line label and returns it as written
func (p *Parser) parseLabel() string {
	label := p.current.Value
	p.nextToken()
	if p.current.Type == TOKEN_COLON {
		p.nextToken()
	}
	return label
}

// ParseProgram parses a complete program. Labels may only mark top-level
// statements; a label on a line of its own marks the next statement.
func (p *Parser) ParseProgram() (*Program, error) {
	prog := &Program{
		Labels: make(map[string]int),
		Source: p.lexer.input,
	}

	for {
		p.skipNewlines()
		if p.current.Type == TOKEN_EOF {
			break
		}

		if p.atLabel() {
			pos := p.current.Position
			label := p.parseLabel()
			if _, dup := prog.Labels[label]; dup {
				return nil, p.errorf(pos, "duplicate label %s", label)
			}
			prog.Labels[label] = len(prog.Statements)
			if p.atEndOfStatement() {
				continue
			}
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if err := p.expectEndOfStatement(); err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}

	return prog, nil
}

// parseBlock parses statements until done reports a closing token.
// The closing token is left for the caller.
func (p *Parser) parseBlock(opener string, done func() bool) ([]Stmt, error) {
	var stmts []Stmt
	for {
		p.skipNewlines()
		if p.current.Type == TOKEN_EOF {
			return nil, p.errorf(p.current.Position, "unexpected end of input in %s block", opener)
		}
		if done() {
			return stmts, nil
		}
		if p.atLabel() {
			return nil, p.errorf(p.current.Position, "label %s is inside a block; labels are only allowed on top-level statements", p.current.Value)
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if err := p.expectEndOfStatement(); err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

// atEnd reports whether the current tokens are END followed by kw
func (p *Parser) atEnd(kw TokenType) bool {
	return p.current.Type == TOKEN_END && p.peek.Type == kw
}

// expectEnd consumes END kw
func (p *Parser) expectEnd(kw TokenType) error {
	if !p.atEnd(kw) {
		return p.errorf(p.current.Position, "expected END %s, got %s", kw, describe(p.current))
	}
	p.nextToken()
	p.nextToken()
	return nil
}
