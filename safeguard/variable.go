package safeguard

import (
	"strings"

	"jbasic/types"
)

// VariableDefined fails when a name is unbound or bound to Undefined
func VariableDefined(name string, v types.Value, bound bool) error {
	if bound && !types.IsUndefined(v) {
		return nil
	}
	err := types.NewError(types.UndefinedVariable, "Variable %s is not defined", name)
	err.Name = name
	return err
}

// ArrayDefined fails when an element reference names no declared array
func ArrayDefined(name string, declared bool) error {
	if declared {
		return nil
	}
	err := types.NewError(types.UndefinedVariable, "Array %s is not defined", name)
	err.Name = name
	return err
}

// VariableSuffix enforces type suffixes: names ending in $ hold TEXT and
// names ending in % hold NUMBER.
func VariableSuffix(name string, v types.Value) error {
	var want types.TypeCode
	switch {
	case strings.HasSuffix(name, "$"):
		want = types.TYPE_STR
	case strings.HasSuffix(name, "%"):
		want = types.TYPE_NUM
	default:
		return nil
	}
	if v != nil && v.Type() == want {
		return nil
	}

	got := types.TYPE_UNDEFINED
	if v != nil {
		got = v.Type()
	}
	err := types.NewError(types.TypeError,
		"Type suffix does not match specified type: %s requires %s, got %s", name, want, got)
	err.Name = name
	err.Operands = []types.TypeCode{got}
	return err
}
