package types

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestValueEquality(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Value
		equal bool
	}{
		{"same number", NewNum(3), NewNum(3), true},
		{"different number", NewNum(3), NewNum(4), false},
		{"same text", NewStr("abc"), NewStr("abc"), true},
		{"text is case sensitive", NewStr("abc"), NewStr("ABC"), false},
		{"number vs text", NewNum(1), NewStr("1"), false},
		{"text vs number", NewStr("1"), NewNum(1), false},
		{"undefined vs undefined", Undefined, Undefined, true},
		{"undefined vs number", Undefined, NewNum(0), false},
		{"NaN", NewNum(math.NaN()), NewNum(math.NaN()), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.equal {
				t.Errorf("%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.equal)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{42, "42"},
		{-7, "-7"},
		{2.5, "2.5"},
		{0.1, "0.1"},
		{1e20, "1e+20"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatNumber(tt.in); got != tt.want {
				t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestArrayValue(t *testing.T) {
	arr := NewArray([]int{2, 3})
	if arr.Rank() != 2 || arr.Len() != 6 {
		t.Fatalf("rank/len = %d/%d, want 2/6", arr.Rank(), arr.Len())
	}
	if !IsUndefined(arr.Get([]int{1, 2})) {
		t.Errorf("new slot = %v, want undefined", arr.Get([]int{1, 2}))
	}

	arr.Set([]int{1, 2}, NewNum(9))
	arr.Set([]int{0, 1}, NewStr("x"))
	if got := arr.Get([]int{1, 2}); !got.Equal(NewNum(9)) {
		t.Errorf("Get(1,2) = %v, want 9", got)
	}
	if got := arr.Elements()[5]; !got.Equal(NewNum(9)) {
		t.Errorf("row-major slot 5 = %v, want 9", got)
	}

	clone := arr.Clone()
	clone.Set([]int{1, 2}, NewNum(1))
	if got := arr.Get([]int{1, 2}); !got.Equal(NewNum(9)) {
		t.Errorf("clone mutation leaked into original: %v", got)
	}
	if arr.Equal(clone) {
		t.Error("arrays with different slots compared equal")
	}

	want := `[[<undefined>, "x", <undefined>], [<undefined>, <undefined>, 9]]`
	if got := arr.String(); got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
}

func TestErrorRendering(t *testing.T) {
	err := NewError(UndefinedLabel, "A label called %s is not defined", "100")
	if got := err.Error(); got != "A label called 100 is not defined" {
		t.Errorf("Error() = %q", got)
	}

	err.At(3, 5)
	err.At(9, 9)
	if got := err.Error(); got != "Error at [3, 5]: A label called 100 is not defined" {
		t.Errorf("Error() = %q", got)
	}
}

func TestErrorMatching(t *testing.T) {
	var err error = fmt.Errorf("running: %w", NewError(SubroutineArity, ""))

	if !errors.Is(err, SubroutineArity) {
		t.Error("errors.Is should match the kind")
	}
	if errors.Is(err, FunctionArity) {
		t.Error("errors.Is matched the wrong kind")
	}

	kind, ok := KindOf(err)
	if !ok || kind != SubroutineArity {
		t.Errorf("KindOf() = %v, %v", kind, ok)
	}
	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("KindOf() matched a plain error")
	}
}

func TestErrorKindTags(t *testing.T) {
	for kind := ArrayDimensionMismatch; kind <= IOError; kind++ {
		tag := kind.String()
		back, ok := ErrorKindFromString(tag)
		if !ok || back != kind {
			t.Errorf("ErrorKindFromString(%q) = %v, %v; want %v", tag, back, ok, kind)
		}
	}
	if TypeError.String() != "Type" {
		t.Errorf("TypeError tag = %q, want Type", TypeError.String())
	}
}
