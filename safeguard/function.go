package safeguard

import (
	"jbasic/types"
)

// FunctionArity checks a builtin call's argument count. max < 0 means
// the function takes min or more arguments.
func FunctionArity(name string, min, max, got int) error {
	if got >= min && (max < 0 || got <= max) {
		return nil
	}

	var err *types.Error
	switch {
	case max < 0:
		err = types.NewError(types.FunctionArity,
			"Function %s expects at least %d %s but was called with %d", name, min, plural(min, "argument"), got)
	case min == max:
		err = types.NewError(types.FunctionArity,
			"Function %s expects %d %s but was called with %d", name, min, plural(min, "argument"), got)
	default:
		err = types.NewError(types.FunctionArity,
			"Function %s expects %d to %d arguments but was called with %d", name, min, max, got)
	}
	err.Name = name
	err.Expected = min
	err.Got = got
	return err
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
