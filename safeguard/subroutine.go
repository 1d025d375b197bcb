package safeguard

import (
	"jbasic/types"
)

// SubroutineDefined fails when a called subroutine has not been defined
func SubroutineDefined(name string, defined bool) error {
	if defined {
		return nil
	}
	err := types.NewError(types.SubroutineNotDefined, "Subroutine %s is not defined", name)
	err.Name = name
	return err
}

// SubroutineArity compares argument count with the parameter list
func SubroutineArity(name string, params, got int) error {
	if params == got {
		return nil
	}
	err := types.NewError(types.SubroutineArity,
		"Subroutine %s expects %d %s but was called with %d", name, params, plural(params, "argument"), got)
	err.Name = name
	err.Expected = params
	err.Got = got
	return err
}

// SubroutineUnique fails when a name is registered a second time
func SubroutineUnique(name string, exists bool) error {
	if !exists {
		return nil
	}
	err := types.NewError(types.SubroutineRedefinition,
		"A subroutine with the name %s is already defined in the script", name)
	err.Name = name
	return err
}
