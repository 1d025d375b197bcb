package types

// Value is a runtime value. The set of implementations is closed:
// NumValue, StrValue, *ArrayValue and UndefinedValue.
type Value interface {
	Type() TypeCode
	String() string
	Equal(other Value) bool
	value()
}

// ErrorKind classifies a fatal runtime error
type ErrorKind int

const (
	ArrayDimensionMismatch ErrorKind = iota + 1
	ArrayIndexOutOfBounds
	ArrayDimensionUnsupported
	FunctionArity
	SubroutineArity
	SubroutineNotDefined
	SubroutineRedefinition
	InvalidLabelFormat
	UndefinedLabel
	UndefinedVariable
	TypeError
	ControlFlowMisuse
	StackExhausted
	DataExhausted
	ExecutionLimit
	IOError
)

var errorKindNames = map[ErrorKind]string{
	ArrayDimensionMismatch:    "ArrayDimensionMismatch",
	ArrayIndexOutOfBounds:     "ArrayIndexOutOfBounds",
	ArrayDimensionUnsupported: "ArrayDimensionUnsupported",
	FunctionArity:             "FunctionArity",
	SubroutineArity:           "SubroutineArity",
	SubroutineNotDefined:      "SubroutineNotDefined",
	SubroutineRedefinition:    "SubroutineRedefinition",
	InvalidLabelFormat:        "InvalidLabelFormat",
	UndefinedLabel:            "UndefinedLabel",
	UndefinedVariable:         "UndefinedVariable",
	TypeError:                 "Type",
	ControlFlowMisuse:         "ControlFlowMisuse",
	StackExhausted:            "StackExhausted",
	DataExhausted:             "DataExhausted",
	ExecutionLimit:            "ExecutionLimit",
	IOError:                   "IO",
}

// String returns the stable tag for the kind
func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Error lets a kind be used as an errors.Is target.
func (k ErrorKind) Error() string {
	return k.String()
}

// Message returns a short human-readable description of the kind
func (k ErrorKind) Message() string {
	switch k {
	case ArrayDimensionMismatch:
		return "Wrong number of array dimensions"
	case ArrayIndexOutOfBounds:
		return "Array index out of bounds"
	case ArrayDimensionUnsupported:
		return "Unsupported array dimensions"
	case FunctionArity:
		return "Wrong number of function arguments"
	case SubroutineArity:
		return "Wrong number of subroutine arguments"
	case SubroutineNotDefined:
		return "Subroutine not defined"
	case SubroutineRedefinition:
		return "Subroutine already defined"
	case InvalidLabelFormat:
		return "Invalid label"
	case UndefinedLabel:
		return "Label not defined"
	case UndefinedVariable:
		return "Variable not defined"
	case TypeError:
		return "Type mismatch"
	case ControlFlowMisuse:
		return "Control flow statement used out of context"
	case StackExhausted:
		return "Call stack exhausted"
	case DataExhausted:
		return "Out of data"
	case ExecutionLimit:
		return "Execution step limit reached"
	case IOError:
		return "Input/output error"
	default:
		return "Unknown error"
	}
}

// ErrorKindFromString returns the kind for a tag produced by String
func ErrorKindFromString(s string) (ErrorKind, bool) {
	for k, name := range errorKindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}
