package types

import (
	"strings"
)

// StrValue is an immutable text value
type StrValue struct {
	val string
}

// NewStr creates a new string value
func NewStr(s string) StrValue {
	return StrValue{val: s}
}

// String returns the literal form, with embedded quotes doubled
func (s StrValue) String() string {
	return `"` + strings.ReplaceAll(s.val, `"`, `""`) + `"`
}

func (s StrValue) Type() TypeCode {
	return TYPE_STR
}

// Equal compares two values for equality. Comparison is case-sensitive.
func (s StrValue) Equal(other Value) bool {
	if o, ok := other.(StrValue); ok {
		return s.val == o.val
	}
	return false
}

// Value returns the internal string value
func (s StrValue) Value() string {
	return s.val
}

func (s StrValue) value() {}
