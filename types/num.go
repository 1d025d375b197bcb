package types

import (
	"math"
	"strconv"
)

// NumValue is a double-precision number
type NumValue struct {
	Val float64
}

// NewNum creates a new NumValue
func NewNum(val float64) NumValue {
	return NumValue{Val: val}
}

// Bool converts a Go bool to the numeric truth values 1 and 0
func Bool(b bool) NumValue {
	if b {
		return NumValue{Val: 1}
	}
	return NumValue{Val: 0}
}

func (n NumValue) Type() TypeCode {
	return TYPE_NUM
}

func (n NumValue) String() string {
	return FormatNumber(n.Val)
}

// Equal compares by value; NaN is never equal to anything
func (n NumValue) Equal(other Value) bool {
	o, ok := other.(NumValue)
	if !ok {
		return false
	}
	return n.Val == o.Val
}

// Truthy reports whether the number is nonzero
func (n NumValue) Truthy() bool {
	return n.Val != 0
}

// IsWhole reports whether the number has no fractional part
func (n NumValue) IsWhole() bool {
	return !math.IsInf(n.Val, 0) && n.Val == math.Trunc(n.Val)
}

func (n NumValue) value() {}

// FormatNumber renders a number the way PRINT shows it: whole numbers
// without a decimal point, everything else in shortest round-trip form.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
