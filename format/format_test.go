package format

import (
	"testing"

	"jbasic/types"
)

func TestPlainFormat(t *testing.T) {
	arr := types.NewArray([]int{2})
	arr.Set([]int{0}, types.NewStr("a"))

	tests := []struct {
		name   string
		val    types.Value
		intent Intent
		want   string
	}{
		{"whole number", types.NewNum(42), Output, "42"},
		{"fraction", types.NewNum(-2.5), Output, "-2.5"},
		{"text output", types.NewStr("hi"), Output, "hi"},
		{"text diagnostic", types.NewStr("hi"), Diagnostic, `"hi"`},
		{"undefined output", types.Undefined, Output, ""},
		{"undefined diagnostic", types.Undefined, Diagnostic, "<undefined>"},
		{"array", arr, Output, `["a", <undefined>]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Plain{}).Format(tt.val, tt.intent); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocaleFormat(t *testing.T) {
	tests := []struct {
		tag  string
		val  float64
		want string
	}{
		{"en", 1234.5, "1,234.5"},
		{"en", 7, "7"},
		{"de", 1234.5, "1.234,5"},
	}

	for _, tt := range tests {
		t.Run(tt.tag+"/"+tt.want, func(t *testing.T) {
			f, err := NewLocale(tt.tag)
			if err != nil {
				t.Fatalf("NewLocale(%q): %v", tt.tag, err)
			}
			if got := f.Format(types.NewNum(tt.val), Output); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.val, got, tt.want)
			}
		})
	}
}

func TestLocaleRejectsBadTag(t *testing.T) {
	if _, err := NewLocale("not a tag!"); err == nil {
		t.Error("NewLocale accepted an invalid tag")
	}
}

func TestLocaleKeepsText(t *testing.T) {
	f, err := NewLocale("de")
	if err != nil {
		t.Fatal(err)
	}
	if got := f.Format(types.NewStr("1.5"), Output); got != "1.5" {
		t.Errorf("text was reformatted: %q", got)
	}
}
