package parser

import (
	"fmt"
)

// ParseError is a syntax error with the position it was found at
type ParseError struct {
	Pos     Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Error at [%d, %d]: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// errorf builds a ParseError at pos
func (p *Parser) errorf(pos Position, format string, args ...interface{}) error {
	return &ParseError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// describe renders a token for error messages
func describe(tok Token) string {
	switch tok.Type {
	case TOKEN_IDENTIFIER:
		return fmt.Sprintf("identifier %s", tok.Value)
	case TOKEN_NUMBER:
		return fmt.Sprintf("number %s", tok.Value)
	case TOKEN_STRING:
		return fmt.Sprintf("string %s", quoteString(tok.Value))
	case TOKEN_ILLEGAL:
		if tok.Value == "unterminated string" {
			return tok.Value
		}
		return fmt.Sprintf("illegal character %q", tok.Value)
	default:
		return tok.Type.String()
	}
}
