package parser

import (
	"strconv"

	"jbasic/types"
)

// Operator precedence levels, lowest first
const (
	PREC_LOWEST = iota
	PREC_OR
	PREC_AND
	PREC_NOT
	PREC_COMPARE
	PREC_SUM
	PREC_PRODUCT
	PREC_UNARY
	PREC_POWER
)

var precedences = map[TokenType]int{
	TOKEN_OR:    PREC_OR,
	TOKEN_AND:   PREC_AND,
	TOKEN_EQ:    PREC_COMPARE,
	TOKEN_NE:    PREC_COMPARE,
	TOKEN_LT:    PREC_COMPARE,
	TOKEN_GT:    PREC_COMPARE,
	TOKEN_LE:    PREC_COMPARE,
	TOKEN_GE:    PREC_COMPARE,
	TOKEN_PLUS:  PREC_SUM,
	TOKEN_MINUS: PREC_SUM,
	TOKEN_STAR:  PREC_PRODUCT,
	TOKEN_SLASH: PREC_PRODUCT,
	TOKEN_MOD:   PREC_PRODUCT,
	TOKEN_CARET: PREC_POWER,
}

// ParseExpression parses an expression whose operators bind tighter than prec.
// ^ is right-associative; every other binary operator is left-associative.
func (p *Parser) ParseExpression(prec int) (Expr, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for {
		opPrec, ok := precedences[p.current.Type]
		if !ok || opPrec <= prec {
			return left, nil
		}
		op := p.current
		p.nextToken()

		rightPrec := opPrec
		if op.Type == TOKEN_CARET {
			rightPrec = opPrec - 1
		}
		right, err := p.ParseExpression(rightPrec)
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{
			Pos:      op.Position,
			Left:     left,
			Operator: op.Type,
			Right:    right,
		}
	}
}

// parsePrefix parses literals, names, calls, groups and unary operators
func (p *Parser) parsePrefix() (Expr, error) {
	tok := p.current
	switch tok.Type {
	case TOKEN_NUMBER:
		return p.parseNumberLiteral()
	case TOKEN_STRING:
		p.nextToken()
		return &LiteralExpr{Pos: tok.Position, Value: types.NewStr(tok.Value), Raw: quoteString(tok.Value)}, nil
	case TOKEN_IDENTIFIER:
		p.nextToken()
		if p.current.Type != TOKEN_LPAREN {
			return &IdentifierExpr{Pos: tok.Position, Name: tok.Value}, nil
		}
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		return &CallExpr{Pos: tok.Position, Name: tok.Value, Args: args}, nil
	case TOKEN_LPAREN:
		p.nextToken()
		inner, err := p.ParseExpression(PREC_LOWEST)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TOKEN_RPAREN); err != nil {
			return nil, err
		}
		return &ParenExpr{Pos: tok.Position, Expr: inner}, nil
	case TOKEN_MINUS, TOKEN_PLUS:
		p.nextToken()
		operand, err := p.ParseExpression(PREC_UNARY)
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Pos: tok.Position, Operator: tok.Type, Operand: operand}, nil
	case TOKEN_NOT:
		p.nextToken()
		operand, err := p.ParseExpression(PREC_NOT)
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Pos: tok.Position, Operator: TOKEN_NOT, Operand: operand}, nil
	default:
		return nil, p.errorf(tok.Position, "unexpected %s in expression", describe(tok))
	}
}

// parseNumberLiteral parses a numeric literal
func (p *Parser) parseNumberLiteral() (*LiteralExpr, error) {
	tok := p.current
	val, err := strconv.ParseFloat(tok.Value, 64)
	if err != nil {
		return nil, p.errorf(tok.Position, "invalid number %s", tok.Value)
	}
	p.nextToken()
	return &LiteralExpr{Pos: tok.Position, Value: types.NewNum(val), Raw: tok.Value}, nil
}

// parseArgs parses a parenthesized, possibly empty, argument list
func (p *Parser) parseArgs() ([]Expr, error) {
	if _, err := p.expect(TOKEN_LPAREN); err != nil {
		return nil, err
	}
	args := []Expr{}
	if p.current.Type == TOKEN_RPAREN {
		p.nextToken()
		return args, nil
	}
	for {
		arg, err := p.ParseExpression(PREC_LOWEST)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.current.Type != TOKEN_COMMA {
			break
		}
		p.nextToken()
	}
	if _, err := p.expect(TOKEN_RPAREN); err != nil {
		return nil, err
	}
	return args, nil
}

// parseExprList parses one or more comma-separated expressions
func (p *Parser) parseExprList() ([]Expr, error) {
	var exprs []Expr
	for {
		e, err := p.ParseExpression(PREC_LOWEST)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
		if p.current.Type != TOKEN_COMMA {
			return exprs, nil
		}
		p.nextToken()
	}
}
