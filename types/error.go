package types

import (
	"errors"
	"fmt"
)

// Error is a fatal runtime error. Kind classifies it; the remaining
// fields carry whatever structured detail the raising check had.
type Error struct {
	Kind    ErrorKind
	Message string

	// Name of the variable, array, function, subroutine or label involved
	Name string

	// Operator and observed operand kinds for type errors
	Operator string
	Operands []TypeCode

	// Expected and actual counts for arity and dimension errors
	Expected int
	Got      int

	// Attempted indices and declared sizes for array errors
	Indices []float64
	Dims    []int

	// Source position of the failing statement (1-based, 0 = unknown)
	Line   int
	Column int

	// Call-stack description, innermost frame first
	Traceback []string
}

// NewError creates an error of the given kind with a formatted message
func NewError(kind ErrorKind, format string, args ...interface{}) *Error {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	if msg == "" {
		msg = kind.Message()
	}
	return &Error{Kind: kind, Message: msg}
}

// Error renders the error as "Error at [line, col]: message" when the position is known
func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("Error at [%d, %d]: %s", e.Line, e.Column, e.Message)
	}
	return e.Message
}

// Is matches another *Error or an ErrorKind of the same kind
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case ErrorKind:
		return e.Kind == t
	case *Error:
		return t != nil && e.Kind == t.Kind
	}
	return false
}

// HasPosition reports whether a source position has been attached
func (e *Error) HasPosition() bool {
	return e.Line > 0
}

// At attaches a source position unless one is already set
func (e *Error) At(line, column int) *Error {
	if e.Line == 0 {
		e.Line = line
		e.Column = column
	}
	return e
}

// KindOf extracts the kind from an error chain
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
