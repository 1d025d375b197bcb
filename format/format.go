// Package format turns runtime values into text for the console and for
// diagnostics.
package format

import (
	"jbasic/types"
)

// Intent says what the text is for
type Intent int

const (
	Output     Intent = iota // PRINT and other program output
	Diagnostic               // error messages, traces, REPL echo
)

// Formatter converts values to text
type Formatter interface {
	Format(v types.Value, intent Intent) string
}

// Plain formats numbers in shortest round-trip form with no grouping
type Plain struct{}

// Format implements Formatter
func (Plain) Format(v types.Value, intent Intent) string {
	return formatWith(v, intent, types.FormatNumber)
}

func formatWith(v types.Value, intent Intent, num func(float64) string) string {
	switch val := v.(type) {
	case types.NumValue:
		return num(val.Val)
	case types.StrValue:
		if intent == Output {
			return val.Value()
		}
		return val.String()
	case *types.ArrayValue:
		return val.Render(func(elem types.Value) string {
			return formatWith(elem, Diagnostic, num)
		})
	case types.UndefinedValue, nil:
		if intent == Output {
			return ""
		}
		return "<undefined>"
	}
	return v.String()
}
