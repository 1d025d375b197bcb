package safeguard

import (
	"jbasic/types"
)

// LabelFormat checks that a label is lexically valid: all ASCII digits,
// or an identifier. Numeric labels may not carry a fraction, exponent
// or sign.
func LabelFormat(label string) error {
	if isNumericLabel(label) || isIdentifierLabel(label) {
		return nil
	}
	err := types.NewError(types.InvalidLabelFormat, "Invalid label %s: digits are not allowed in a label", label)
	if !looksNumeric(label) {
		err.Message = "Invalid label " + label
	}
	err.Name = label
	return err
}

func isNumericLabel(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isIdentifierLabel(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		letter := ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
		if !letter && (i == 0 || c < '0' || c > '9') {
			return false
		}
	}
	return true
}

func looksNumeric(s string) bool {
	return s != "" && (s[0] == '.' || s[0] == '-' || s[0] == '+' || (s[0] >= '0' && s[0] <= '9'))
}
