package parser

import "strings"

// TokenType represents different types of lexical tokens
type TokenType int

const (
	// Special tokens
	TOKEN_EOF TokenType = iota
	TOKEN_ILLEGAL
	TOKEN_NEWLINE

	// Literals
	TOKEN_NUMBER // 42, 3.14, 1e3
	TOKEN_STRING // "hello"

	// Identifiers (may end in $ or %)
	TOKEN_IDENTIFIER

	// Keywords
	TOKEN_LET
	TOKEN_DIM
	TOKEN_PRINT
	TOKEN_INPUT
	TOKEN_IF
	TOKEN_THEN
	TOKEN_ELSEIF
	TOKEN_ELSE
	TOKEN_END
	TOKEN_FOR
	TOKEN_TO
	TOKEN_STEP
	TOKEN_NEXT
	TOKEN_WHILE
	TOKEN_WEND
	TOKEN_DO
	TOKEN_LOOP
	TOKEN_UNTIL
	TOKEN_CONTINUE
	TOKEN_EXIT
	TOKEN_GOTO
	TOKEN_GOSUB
	TOKEN_RETURN
	TOKEN_SUB
	TOKEN_CALL
	TOKEN_SELECT
	TOKEN_CASE
	TOKEN_DATA
	TOKEN_READ
	TOKEN_RESTORE
	TOKEN_RANDOMIZE
	TOKEN_CLS
	TOKEN_STOP

	// Word operators
	TOKEN_AND
	TOKEN_OR
	TOKEN_NOT
	TOKEN_MOD

	// Operators
	TOKEN_PLUS  // +
	TOKEN_MINUS // -
	TOKEN_STAR  // *
	TOKEN_SLASH // /
	TOKEN_CARET // ^
	TOKEN_EQ    // =
	TOKEN_NE    // <>
	TOKEN_LT    // <
	TOKEN_GT    // >
	TOKEN_LE    // <=
	TOKEN_GE    // >=

	// Delimiters
	TOKEN_LPAREN // (
	TOKEN_RPAREN // )
	TOKEN_COMMA  // ,
	TOKEN_COLON  // :
)

var keywords = map[string]TokenType{
	"LET":       TOKEN_LET,
	"DIM":       TOKEN_DIM,
	"PRINT":     TOKEN_PRINT,
	"INPUT":     TOKEN_INPUT,
	"IF":        TOKEN_IF,
	"THEN":      TOKEN_THEN,
	"ELSEIF":    TOKEN_ELSEIF,
	"ELIF":      TOKEN_ELSEIF,
	"ELSE":      TOKEN_ELSE,
	"END":       TOKEN_END,
	"FOR":       TOKEN_FOR,
	"TO":        TOKEN_TO,
	"STEP":      TOKEN_STEP,
	"NEXT":      TOKEN_NEXT,
	"WHILE":     TOKEN_WHILE,
	"WEND":      TOKEN_WEND,
	"DO":        TOKEN_DO,
	"LOOP":      TOKEN_LOOP,
	"UNTIL":     TOKEN_UNTIL,
	"CONTINUE":  TOKEN_CONTINUE,
	"EXIT":      TOKEN_EXIT,
	"GOTO":      TOKEN_GOTO,
	"GOSUB":     TOKEN_GOSUB,
	"RETURN":    TOKEN_RETURN,
	"SUB":       TOKEN_SUB,
	"CALL":      TOKEN_CALL,
	"SELECT":    TOKEN_SELECT,
	"CASE":      TOKEN_CASE,
	"DATA":      TOKEN_DATA,
	"READ":      TOKEN_READ,
	"RESTORE":   TOKEN_RESTORE,
	"RANDOMIZE": TOKEN_RANDOMIZE,
	"CLS":       TOKEN_CLS,
	"STOP":      TOKEN_STOP,
	"AND":       TOKEN_AND,
	"OR":        TOKEN_OR,
	"NOT":       TOKEN_NOT,
	"MOD":       TOKEN_MOD,
}

// LookupIdent returns the keyword token for ident, or TOKEN_IDENTIFIER.
// Keywords are case-insensitive.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[strings.ToUpper(ident)]; ok {
		return tok
	}
	return TOKEN_IDENTIFIER
}

var tokenNames = map[TokenType]string{
	TOKEN_EOF:        "end of input",
	TOKEN_ILLEGAL:    "illegal character",
	TOKEN_NEWLINE:    "end of line",
	TOKEN_NUMBER:     "number",
	TOKEN_STRING:     "string",
	TOKEN_IDENTIFIER: "identifier",
	TOKEN_PLUS:       "+",
	TOKEN_MINUS:      "-",
	TOKEN_STAR:       "*",
	TOKEN_SLASH:      "/",
	TOKEN_CARET:      "^",
	TOKEN_EQ:         "=",
	TOKEN_NE:         "<>",
	TOKEN_LT:         "<",
	TOKEN_GT:         ">",
	TOKEN_LE:         "<=",
	TOKEN_GE:         ">=",
	TOKEN_LPAREN:     "(",
	TOKEN_RPAREN:     ")",
	TOKEN_COMMA:      ",",
	TOKEN_COLON:      ":",
}

// String returns the token as it appears in error messages
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	for word, tok := range keywords {
		if tok == t && word != "ELIF" {
			return word
		}
	}
	return "unknown"
}

// Position represents a location in source code
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset
}

// Token represents a lexical token
type Token struct {
	Type     TokenType
	Value    string // raw text as written
	Position Position
}
