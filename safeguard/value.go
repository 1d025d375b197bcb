package safeguard

import (
	"jbasic/types"
)

// Number asserts v is a NUMBER; context names the consumer in the error
func Number(context string, v types.Value) (float64, error) {
	if n, ok := v.(types.NumValue); ok {
		return n.Val, nil
	}
	return 0, Operand(context, v)
}

// Text asserts v is TEXT
func Text(context string, v types.Value) (string, error) {
	if s, ok := v.(types.StrValue); ok {
		return s.Value(), nil
	}
	return "", Operand(context, v)
}

// Array asserts v is an ARRAY
func Array(context string, v types.Value) (*types.ArrayValue, error) {
	if a, ok := v.(*types.ArrayValue); ok {
		return a, nil
	}
	return nil, Operand(context, v)
}

// Condition returns the truth of a condition value. Only numbers have a
// truth value: nonzero is true.
func Condition(v types.Value) (bool, error) {
	n, ok := v.(types.NumValue)
	if !ok {
		return false, Operand("condition", v)
	}
	return n.Truthy(), nil
}

// Operand builds the type error for a single value of the wrong kind
func Operand(context string, v types.Value) *types.Error {
	got := kindOf(v)
	err := types.NewError(types.TypeError, "Type mismatch: %s cannot take %s", context, got)
	err.Operator = context
	err.Operands = []types.TypeCode{got}
	return err
}

// Operands builds the type error for a binary operator
func Operands(op string, left, right types.Value) *types.Error {
	l, r := kindOf(left), kindOf(right)
	err := types.NewError(types.TypeError, "Type mismatch: cannot apply %s to %s and %s", op, l, r)
	err.Operator = op
	err.Operands = []types.TypeCode{l, r}
	return err
}

func kindOf(v types.Value) types.TypeCode {
	if v == nil {
		return types.TYPE_UNDEFINED
	}
	return v.Type()
}
