package parser

import (
	"strings"
)

// Lexer tokenizes BASIC source code. Newlines are significant and are
// returned as TOKEN_NEWLINE; REM and ' comments run to the end of the line.
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int
	column       int
}

// NewLexer creates a new Lexer instance
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
	}
	l.readChar()
	return l
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0 // ASCII NUL
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

// peekChar returns the next character without advancing
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// skipWhitespace skips blanks but not newlines
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

// skipComment skips to the end of the line, leaving the newline
func (l *Lexer) skipComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()
	if l.ch == '\'' {
		l.skipComment()
	}

	tok := Token{
		Position: Position{
			Line:   l.line,
			Column: l.column,
			Offset: l.position,
		},
	}

	switch {
	case l.ch == 0:
		tok.Type = TOKEN_EOF
		return tok
	case l.ch == '\n':
		tok.Type = TOKEN_NEWLINE
		tok.Value = "\n"
		l.readChar()
		return tok
	case isDigit(l.ch) || (l.ch == '.' && isDigit(l.peekChar())):
		tok.Type = TOKEN_NUMBER
		tok.Value = l.readNumber()
		return tok
	case isLetter(l.ch):
		ident := l.readIdentifier()
		if strings.EqualFold(ident, "REM") {
			l.skipComment()
			return l.NextToken()
		}
		tok.Value = ident
		if last := ident[len(ident)-1]; last == '$' || last == '%' {
			tok.Type = TOKEN_IDENTIFIER
		} else {
			tok.Type = LookupIdent(ident)
		}
		return tok
	case l.ch == '"':
		s, ok := l.readString()
		if !ok {
			tok.Type = TOKEN_ILLEGAL
			tok.Value = "unterminated string"
			return tok
		}
		tok.Type = TOKEN_STRING
		tok.Value = s
		return tok
	}

	switch l.ch {
	case '+':
		tok.Type = TOKEN_PLUS
	case '-':
		tok.Type = TOKEN_MINUS
	case '*':
		tok.Type = TOKEN_STAR
	case '/':
		tok.Type = TOKEN_SLASH
	case '^':
		tok.Type = TOKEN_CARET
	case '=':
		tok.Type = TOKEN_EQ
	case '<':
		switch l.peekChar() {
		case '>':
			l.readChar()
			tok.Type = TOKEN_NE
		case '=':
			l.readChar()
			tok.Type = TOKEN_LE
		default:
			tok.Type = TOKEN_LT
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok.Type = TOKEN_GE
		} else {
			tok.Type = TOKEN_GT
		}
	case '(':
		tok.Type = TOKEN_LPAREN
	case ')':
		tok.Type = TOKEN_RPAREN
	case ',':
		tok.Type = TOKEN_COMMA
	case ':':
		tok.Type = TOKEN_COLON
	default:
		tok.Type = TOKEN_ILLEGAL
	}
	l.readChar()
	tok.Value = l.input[tok.Position.Offset:l.position]
	return tok
}

// readNumber reads digits with an optional fraction and exponent
func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		next := l.peekChar()
		if isDigit(next) {
			l.readChar()
		} else if (next == '+' || next == '-') && l.readPosition+1 < len(l.input) && isDigit(l.input[l.readPosition+1]) {
			l.readChar()
			l.readChar()
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.input[start:l.position]
}

// readIdentifier reads a name with an optional $ or % type suffix
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '$' || l.ch == '%' {
		l.readChar()
	}
	return l.input[start:l.position]
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
