package state

import (
	"sort"

	"jbasic/safeguard"
	"jbasic/types"
)

// State is everything one program run mutates: the global scope, the call
// stack, the subroutine table, the DATA pointer and the step budget. The
// label table is fixed when the State is created.
type State struct {
	global  *Scope
	frames  []CallFrame
	subs    map[string]*Subroutine
	labels  map[string]int
	data    []types.Value
	dataPos int
	source  string
	ctx     *types.ExecContext
}

// New creates the state for one run of a program
func New(labels map[string]int, source string, ctx *types.ExecContext) *State {
	if ctx == nil {
		ctx = types.NewExecContext(0, 0)
	}
	table := make(map[string]int, len(labels))
	for k, v := range labels {
		table[k] = v
	}
	return &State{
		global: NewScope(),
		subs:   make(map[string]*Subroutine),
		labels: table,
		source: source,
		ctx:    ctx,
	}
}

// Reset discards all bindings, frames, subroutines and the DATA pointer
func (s *State) Reset() {
	s.global = NewScope()
	s.frames = nil
	s.subs = make(map[string]*Subroutine)
	s.dataPos = 0
	s.ctx.Reset()
}

// Source returns the program text
func (s *State) Source() string {
	return s.source
}

// Context returns the execution limits
func (s *State) Context() *types.ExecContext {
	return s.ctx
}

// scope returns the innermost scope: the nearest frame that owns one, or
// the global scope
func (s *State) scope() *Scope {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if s.frames[i].scope != nil {
			return s.frames[i].scope
		}
	}
	return s.global
}

// ============================================================================
// VARIABLES
// ============================================================================

// Lookup returns a variable's binding. Inside a subroutine the local scope
// is searched first, then the global scope.
func (s *State) Lookup(name string) (types.Value, bool) {
	cur := s.scope()
	if v, ok := cur.vars[name]; ok {
		return v, true
	}
	if cur != s.global {
		if v, ok := s.global.vars[name]; ok {
			return v, true
		}
	}
	return types.Undefined, false
}

// Assign binds name in the innermost scope
func (s *State) Assign(name string, v types.Value) {
	s.scope().vars[name] = v
}

// Variables returns the names bound in the innermost scope, sorted
func (s *State) Variables() []string {
	cur := s.scope()
	names := make([]string, 0, len(cur.vars))
	for name := range cur.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ============================================================================
// ARRAYS
// ============================================================================

// DeclareArray creates (or replaces) an array in the innermost scope
func (s *State) DeclareArray(name string, dims []int) *types.ArrayValue {
	arr := types.NewArray(dims)
	s.scope().arrays[name] = arr
	return arr
}

// Array returns the array bound to name, searching local then global
func (s *State) Array(name string) (*types.ArrayValue, bool) {
	cur := s.scope()
	if a, ok := cur.arrays[name]; ok {
		return a, true
	}
	if cur != s.global {
		if a, ok := s.global.arrays[name]; ok {
			return a, true
		}
	}
	return nil, false
}

// ArrayAt reads one element after checking the indices
func (s *State) ArrayAt(name string, indices []types.Value) (types.Value, error) {
	arr, ok := s.Array(name)
	if err := safeguard.ArrayDefined(name, ok); err != nil {
		return nil, err
	}
	idx, err := safeguard.ArrayAccess(name, arr, indices)
	if err != nil {
		return nil, err
	}
	return arr.Get(idx), nil
}

// SetArrayAt replaces one element after checking the indices
func (s *State) SetArrayAt(name string, indices []types.Value, v types.Value) error {
	arr, ok := s.Array(name)
	if err := safeguard.ArrayDefined(name, ok); err != nil {
		return err
	}
	idx, err := safeguard.ArrayAccess(name, arr, indices)
	if err != nil {
		return err
	}
	arr.Set(idx, v)
	return nil
}

// ============================================================================
// SUBROUTINES
// ============================================================================

// DefineSubroutine registers sub; a name can be registered only once
func (s *State) DefineSubroutine(sub *Subroutine) error {
	_, exists := s.subs[sub.Name]
	if err := safeguard.SubroutineUnique(sub.Name, exists); err != nil {
		return err
	}
	s.subs[sub.Name] = sub
	return nil
}

// Subroutine looks up a registered subroutine
func (s *State) Subroutine(name string) (*Subroutine, error) {
	sub, ok := s.subs[name]
	if err := safeguard.SubroutineDefined(name, ok); err != nil {
		return nil, err
	}
	return sub, nil
}

// ============================================================================
// LABELS
// ============================================================================

// ValidateLabels checks every label in the table, in sorted order
func (s *State) ValidateLabels() error {
	names := make([]string, 0, len(s.labels))
	for name := range s.labels {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := safeguard.LabelFormat(name); err != nil {
			return err
		}
	}
	return nil
}

// ResolveLabel checks a jump target's format and returns the index of the
// top-level statement it names
func (s *State) ResolveLabel(label string) (int, error) {
	if err := safeguard.LabelFormat(label); err != nil {
		return 0, err
	}
	idx, ok := s.labels[label]
	if !ok {
		err := types.NewError(types.UndefinedLabel, "A label called %s is not defined", label)
		err.Name = label
		return 0, err
	}
	return idx, nil
}

// ============================================================================
// CALL STACK
// ============================================================================

// PushFrame enters a GOSUB or subroutine call
func (s *State) PushFrame(f CallFrame) error {
	if len(s.frames) >= s.ctx.MaxCallDepth {
		err := types.NewError(types.StackExhausted,
			"Call stack exhausted: more than %d nested calls", s.ctx.MaxCallDepth)
		err.Name = f.Name
		err.Expected = s.ctx.MaxCallDepth
		err.Got = len(s.frames) + 1
		return err
	}
	s.frames = append(s.frames, f)
	return nil
}

// PopFrame leaves the innermost call
func (s *State) PopFrame() (CallFrame, error) {
	if len(s.frames) == 0 {
		return CallFrame{}, types.NewError(types.ControlFlowMisuse, "RETURN without GOSUB")
	}
	top := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return top, nil
}

// CallDepth returns the number of active calls
func (s *State) CallDepth() int {
	return len(s.frames)
}

// Frames returns a copy of the call stack, outermost first
func (s *State) Frames() []CallFrame {
	return append([]CallFrame(nil), s.frames...)
}

// ============================================================================
// DATA
// ============================================================================

// LoadData sets the values READ will consume and rewinds the pointer
func (s *State) LoadData(values []types.Value) {
	s.data = append([]types.Value(nil), values...)
	s.dataPos = 0
}

// ReadData consumes the next DATA value
func (s *State) ReadData() (types.Value, error) {
	if s.dataPos >= len(s.data) {
		err := types.NewError(types.DataExhausted, "Out of DATA: all %d value(s) have been read", len(s.data))
		err.Expected = len(s.data)
		err.Got = s.dataPos + 1
		return nil, err
	}
	v := s.data[s.dataPos]
	s.dataPos++
	return v, nil
}

// Restore rewinds the DATA pointer
func (s *State) Restore() {
	s.dataPos = 0
}

// ============================================================================
// STEP BUDGET
// ============================================================================

// ConsumeStep counts one statement against the step budget
func (s *State) ConsumeStep() error {
	if s.ctx.ConsumeStep() {
		return nil
	}
	err := types.NewError(types.ExecutionLimit, "Execution limit of %d statements reached", s.ctx.MaxSteps)
	err.Expected = int(s.ctx.MaxSteps)
	return err
}
