package builtins

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"jbasic/safeguard"
	"jbasic/types"
)

// ============================================================================
// CONVERSIONS
// ============================================================================

// builtinLen returns the number of characters in a text
// LEN(text) -> number
func builtinLen(ctx *Context, args []types.Value) (types.Value, error) {
	s, err := safeguard.Text("LEN", args[0])
	if err != nil {
		return nil, err
	}
	return types.NewNum(float64(utf8.RuneCountInString(s))), nil
}

// builtinStr converts a number to text with at most one decimal place.
// Text passes through unchanged.
// STR(number) -> text
func builtinStr(ctx *Context, args []types.Value) (types.Value, error) {
	switch v := args[0].(type) {
	case types.NumValue:
		return types.NewStr(formatShort(v.Val)), nil
	case types.StrValue:
		return v, nil
	}
	return nil, safeguard.Operand("STR", args[0])
}

// formatShort rounds to one decimal place
func formatShort(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return types.FormatNumber(f)
	}
	return types.FormatNumber(math.RoundToEven(f*10) / 10)
}

// builtinNum parses text as a number. Unparseable text gives Undefined
// and numbers pass through unchanged.
// NUM(text) -> number
func builtinNum(ctx *Context, args []types.Value) (types.Value, error) {
	switch v := args[0].(type) {
	case types.NumValue:
		return v, nil
	case types.StrValue:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Value()), 64)
		if err != nil {
			return types.Undefined, nil
		}
		return types.NewNum(f), nil
	}
	return nil, safeguard.Operand("NUM", args[0])
}

// ============================================================================
// SUBSTRINGS
// ============================================================================

// count asserts a non-negative whole character count
func count(name string, v types.Value) (int, error) {
	f, err := safeguard.Number(name, v)
	if err != nil {
		return 0, err
	}
	if f < 0 || math.IsNaN(f) {
		return 0, nil
	}
	if f > math.MaxInt32 {
		return math.MaxInt32, nil
	}
	return int(f), nil
}

// builtinLeft returns the first n characters
// LEFT$(text, n) -> text
func builtinLeft(ctx *Context, args []types.Value) (types.Value, error) {
	s, err := safeguard.Text("LEFT$", args[0])
	if err != nil {
		return nil, err
	}
	n, err := count("LEFT$", args[1])
	if err != nil {
		return nil, err
	}
	runes := []rune(s)
	if n > len(runes) {
		n = len(runes)
	}
	return types.NewStr(string(runes[:n])), nil
}

// builtinRight returns the last n characters
// RIGHT$(text, n) -> text
func builtinRight(ctx *Context, args []types.Value) (types.Value, error) {
	s, err := safeguard.Text("RIGHT$", args[0])
	if err != nil {
		return nil, err
	}
	n, err := count("RIGHT$", args[1])
	if err != nil {
		return nil, err
	}
	runes := []rune(s)
	if n > len(runes) {
		n = len(runes)
	}
	return types.NewStr(string(runes[len(runes)-n:])), nil
}

// builtinMid returns length characters starting at the 1-based position
// start, or everything from start when length is omitted
// MID$(text, start [, length]) -> text
func builtinMid(ctx *Context, args []types.Value) (types.Value, error) {
	s, err := safeguard.Text("MID$", args[0])
	if err != nil {
		return nil, err
	}
	start, err := count("MID$", args[1])
	if err != nil {
		return nil, err
	}
	runes := []rune(s)
	if start < 1 {
		start = 1
	}
	if start > len(runes) {
		return types.NewStr(""), nil
	}
	rest := runes[start-1:]
	if len(args) == 3 {
		n, err := count("MID$", args[2])
		if err != nil {
			return nil, err
		}
		if n < len(rest) {
			rest = rest[:n]
		}
	}
	return types.NewStr(string(rest)), nil
}

// builtinUcase converts to upper case
// UCASE$(text) -> text
func builtinUcase(ctx *Context, args []types.Value) (types.Value, error) {
	s, err := safeguard.Text("UCASE$", args[0])
	if err != nil {
		return nil, err
	}
	return types.NewStr(strings.ToUpper(s)), nil
}

// builtinLcase converts to lower case
// LCASE$(text) -> text
func builtinLcase(ctx *Context, args []types.Value) (types.Value, error) {
	s, err := safeguard.Text("LCASE$", args[0])
	if err != nil {
		return nil, err
	}
	return types.NewStr(strings.ToLower(s)), nil
}

// ============================================================================
// CHARACTER CODES
// ============================================================================

// builtinChr returns the character with the given code point
// CHR$(code) -> text
func builtinChr(ctx *Context, args []types.Value) (types.Value, error) {
	f, err := safeguard.Number("CHR$", args[0])
	if err != nil {
		return nil, err
	}
	r := rune(f)
	if f < 0 || f > utf8.MaxRune || !utf8.ValidRune(r) {
		return types.NewStr(string(utf8.RuneError)), nil
	}
	return types.NewStr(string(r)), nil
}

// builtinAsc returns the code point of the first character, or 0 for
// empty text
// ASC(text) -> number
func builtinAsc(ctx *Context, args []types.Value) (types.Value, error) {
	s, err := safeguard.Text("ASC", args[0])
	if err != nil {
		return nil, err
	}
	if s == "" {
		return types.NewNum(0), nil
	}
	r, _ := utf8.DecodeRuneInString(s)
	return types.NewNum(float64(r)), nil
}
