package types

// DefaultMaxCallDepth bounds nested GOSUB/CALL frames when no limit is configured
const DefaultMaxCallDepth = 10000

// ExecContext holds the execution limits of one program run.
// MaxSteps of 0 means statements are not counted against a budget.
type ExecContext struct {
	MaxSteps     int64
	MaxCallDepth int
	Steps        int64
}

// NewExecContext creates a context with the given limits
func NewExecContext(maxSteps int64, maxCallDepth int) *ExecContext {
	if maxCallDepth <= 0 {
		maxCallDepth = DefaultMaxCallDepth
	}
	return &ExecContext{
		MaxSteps:     maxSteps,
		MaxCallDepth: maxCallDepth,
	}
}

// ConsumeStep counts one executed statement and returns false once the budget is spent
func (ctx *ExecContext) ConsumeStep() bool {
	ctx.Steps++
	return ctx.MaxSteps <= 0 || ctx.Steps <= ctx.MaxSteps
}

// Reset clears the step counter
func (ctx *ExecContext) Reset() {
	ctx.Steps = 0
}
