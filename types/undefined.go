package types

// UndefinedValue marks a binding or array slot that holds no value yet.
// Reading a variable bound to it raises UndefinedVariable.
type UndefinedValue struct{}

// Undefined is the single UndefinedValue
var Undefined = UndefinedValue{}

func (v UndefinedValue) Type() TypeCode {
	return TYPE_UNDEFINED
}

func (v UndefinedValue) String() string {
	return "<undefined>"
}

func (v UndefinedValue) Equal(other Value) bool {
	_, ok := other.(UndefinedValue)
	return ok
}

func (v UndefinedValue) value() {}

// IsUndefined reports whether v is nil or Undefined
func IsUndefined(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(UndefinedValue)
	return ok
}
