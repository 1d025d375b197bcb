package types

// ControlFlow represents the control flow state of evaluation
type ControlFlow int

const (
	FlowNormal   ControlFlow = iota // Normal execution
	FlowReturn                      // RETURN from a GOSUB or SUB
	FlowExit                        // EXIT from the nearest loop
	FlowContinue                    // CONTINUE with the next loop iteration
	FlowJump                        // GOTO: reposition the top-level cursor
	FlowHalt                        // END or STOP
)

// String returns the statement that produces the flow
func (f ControlFlow) String() string {
	switch f {
	case FlowNormal:
		return "normal"
	case FlowReturn:
		return "RETURN"
	case FlowExit:
		return "EXIT"
	case FlowContinue:
		return "CONTINUE"
	case FlowJump:
		return "GOTO"
	case FlowHalt:
		return "END"
	default:
		return "unknown"
	}
}

// Result is the outcome of executing a statement. Fatal errors travel
// separately as Go errors; Result only carries non-error control flow.
type Result struct {
	Flow   ControlFlow
	Label  string // Jump: label as written
	Target int    // Jump: top-level statement index
}

// Ok creates a Result for normal completion
func Ok() Result {
	return Result{Flow: FlowNormal}
}

// Return creates a Result for a RETURN statement
func Return() Result {
	return Result{Flow: FlowReturn}
}

// Exit creates a Result for an EXIT statement
func Exit() Result {
	return Result{Flow: FlowExit}
}

// Continue creates a Result for a CONTINUE statement
func Continue() Result {
	return Result{Flow: FlowContinue}
}

// Jump creates a Result that moves the cursor to a labeled statement
func Jump(label string, target int) Result {
	return Result{Flow: FlowJump, Label: label, Target: target}
}

// Halt creates a Result for END/STOP
func Halt() Result {
	return Result{Flow: FlowHalt}
}

// IsNormal returns true if this is normal execution
func (r Result) IsNormal() bool {
	return r.Flow == FlowNormal
}

// IsReturn returns true if this is a return statement
func (r Result) IsReturn() bool {
	return r.Flow == FlowReturn
}

// IsExit returns true if this is an exit statement
func (r Result) IsExit() bool {
	return r.Flow == FlowExit
}

// IsContinue returns true if this is a continue statement
func (r Result) IsContinue() bool {
	return r.Flow == FlowContinue
}

// IsJump returns true if this is a goto
func (r Result) IsJump() bool {
	return r.Flow == FlowJump
}

// IsHalt returns true if the program asked to stop
func (r Result) IsHalt() bool {
	return r.Flow == FlowHalt
}

// IsLoopSignal returns true for flows that only a loop may consume
func (r Result) IsLoopSignal() bool {
	return r.Flow == FlowExit || r.Flow == FlowContinue
}
