package state

import (
	"fmt"
	"strings"

	"jbasic/types"
)

// Traceback describes the active calls, most recent first:
//
//	... called from SUB Add, line 7
//	... called from GOSUB 100, line 2
func Traceback(stack []CallFrame) []string {
	lines := make([]string, 0, len(stack))
	for i := len(stack) - 1; i >= 0; i-- {
		frame := &stack[i]
		lines = append(lines, fmt.Sprintf("... called from %s %s, line %d", frame.Kind, frame.Name, frame.Line))
	}
	return lines
}

// FormatTraceback formats an error and the call stack it was raised in
func FormatTraceback(err *types.Error) []string {
	lines := []string{err.Error()}
	if len(err.Traceback) == 0 {
		return lines
	}
	lines = append(lines, err.Traceback...)
	return append(lines, "(End of traceback)")
}

// FormatTracebackString returns the traceback as a single string with newlines
func FormatTracebackString(err *types.Error) string {
	return strings.Join(FormatTraceback(err), "\n")
}
