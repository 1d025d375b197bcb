package eval

import (
	"math"

	"jbasic/safeguard"
	"jbasic/types"
)

// ============================================================================
// UNARY OPERATORS
// ============================================================================

// evalUnaryMinus negates a number
func evalUnaryMinus(operand types.Value) (types.Value, error) {
	n, ok := operand.(types.NumValue)
	if !ok {
		return nil, safeguard.Operand("-", operand)
	}
	return types.NewNum(-n.Val), nil
}

// evalUnaryPlus accepts only numbers and returns them unchanged
func evalUnaryPlus(operand types.Value) (types.Value, error) {
	if _, ok := operand.(types.NumValue); !ok {
		return nil, safeguard.Operand("+", operand)
	}
	return operand, nil
}

// evalUnaryNot returns 1 for zero and 0 for any other number
func evalUnaryNot(operand types.Value) (types.Value, error) {
	n, ok := operand.(types.NumValue)
	if !ok {
		return nil, safeguard.Operand("NOT", operand)
	}
	return types.Bool(!n.Truthy()), nil
}

// ============================================================================
// ARITHMETIC OPERATORS
// ============================================================================

// numbers asserts both operands are numbers
func numbers(op string, left, right types.Value) (float64, float64, error) {
	l, lok := left.(types.NumValue)
	r, rok := right.(types.NumValue)
	if !lok || !rok {
		return 0, 0, safeguard.Operands(op, left, right)
	}
	return l.Val, r.Val, nil
}

// evalAdd adds numbers or concatenates text
func evalAdd(left, right types.Value) (types.Value, error) {
	if l, ok := left.(types.StrValue); ok {
		if r, ok := right.(types.StrValue); ok {
			return types.NewStr(l.Value() + r.Value()), nil
		}
		return nil, safeguard.Operands("+", left, right)
	}
	l, r, err := numbers("+", left, right)
	if err != nil {
		return nil, err
	}
	return types.NewNum(l + r), nil
}

func evalSubtract(left, right types.Value) (types.Value, error) {
	l, r, err := numbers("-", left, right)
	if err != nil {
		return nil, err
	}
	return types.NewNum(l - r), nil
}

func evalMultiply(left, right types.Value) (types.Value, error) {
	l, r, err := numbers("*", left, right)
	if err != nil {
		return nil, err
	}
	return types.NewNum(l * r), nil
}

// evalDivide follows IEEE 754: x/0 is ±Infinity and 0/0 is NaN
func evalDivide(left, right types.Value) (types.Value, error) {
	l, r, err := numbers("/", left, right)
	if err != nil {
		return nil, err
	}
	return types.NewNum(l / r), nil
}

// evalModulo returns the remainder with the sign of the dividend
func evalModulo(left, right types.Value) (types.Value, error) {
	l, r, err := numbers("MOD", left, right)
	if err != nil {
		return nil, err
	}
	return types.NewNum(math.Mod(l, r)), nil
}

func evalPower(left, right types.Value) (types.Value, error) {
	l, r, err := numbers("^", left, right)
	if err != nil {
		return nil, err
	}
	return types.NewNum(math.Pow(l, r)), nil
}

// ============================================================================
// COMPARISON OPERATORS
// ============================================================================

// evalEqual compares kind and content; values of different kinds are
// simply unequal
func evalEqual(left, right types.Value) types.Value {
	return types.Bool(left.Equal(right))
}

func evalNotEqual(left, right types.Value) types.Value {
	return types.Bool(!left.Equal(right))
}

// ordered applies an ordering test to two numbers or two texts
func ordered(op string, left, right types.Value, num func(a, b float64) bool, str func(a, b string) bool) (types.Value, error) {
	switch l := left.(type) {
	case types.NumValue:
		if r, ok := right.(types.NumValue); ok {
			return types.Bool(num(l.Val, r.Val)), nil
		}
	case types.StrValue:
		if r, ok := right.(types.StrValue); ok {
			return types.Bool(str(l.Value(), r.Value())), nil
		}
	}
	return nil, safeguard.Operands(op, left, right)
}

func evalLessThan(left, right types.Value) (types.Value, error) {
	return ordered("<", left, right,
		func(a, b float64) bool { return a < b },
		func(a, b string) bool { return a < b })
}

func evalLessThanEqual(left, right types.Value) (types.Value, error) {
	return ordered("<=", left, right,
		func(a, b float64) bool { return a <= b },
		func(a, b string) bool { return a <= b })
}

func evalGreaterThan(left, right types.Value) (types.Value, error) {
	return ordered(">", left, right,
		func(a, b float64) bool { return a > b },
		func(a, b string) bool { return a > b })
}

func evalGreaterThanEqual(left, right types.Value) (types.Value, error) {
	return ordered(">=", left, right,
		func(a, b float64) bool { return a >= b },
		func(a, b string) bool { return a >= b })
}

// ============================================================================
// LOGICAL OPERATORS
// ============================================================================

func evalAnd(left, right types.Value) (types.Value, error) {
	l, r, err := numbers("AND", left, right)
	if err != nil {
		return nil, err
	}
	return types.Bool(l != 0 && r != 0), nil
}

func evalOr(left, right types.Value) (types.Value, error) {
	l, r, err := numbers("OR", left, right)
	if err != nil {
		return nil, err
	}
	return types.Bool(l != 0 || r != 0), nil
}
