package eval

import (
	"bufio"
	"errors"
	"io"
	"os"

	"jbasic/builtins"
	"jbasic/format"
	"jbasic/parser"
	"jbasic/safeguard"
	"jbasic/state"
	"jbasic/trace"
	"jbasic/types"
)

// Status is where the evaluator is in its run
type Status int

const (
	Running Status = iota
	HaltedNormal
	HaltedError
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case HaltedNormal:
		return "halted"
	case HaltedError:
		return "halted with error"
	default:
		return "unknown"
	}
}

// DefaultClearSequence is what CLS writes: cursor home, then erase display
const DefaultClearSequence = "\033[H\033[2J"

// Evaluator walks a parsed program and executes it against its own State
type Evaluator struct {
	prog      *parser.Program
	state     *state.State
	builtins  *builtins.Registry
	bctx      *builtins.Context
	formatter format.Formatter
	out       io.Writer
	in        *bufio.Reader
	tracer    *trace.Tracer
	clear     string

	status Status
	cursor int // top-level statement being executed
	loops  int // enclosing loops within the current call
}

// Option configures an Evaluator
type Option func(*Evaluator)

// WithOutput sets where PRINT, INPUT prompts and CLS write
func WithOutput(w io.Writer) Option {
	return func(e *Evaluator) { e.out = w }
}

// WithInput sets where INPUT reads lines from
func WithInput(r io.Reader) Option {
	return func(e *Evaluator) { e.in = bufio.NewReader(r) }
}

// WithFormatter sets how values are rendered for PRINT
func WithFormatter(f format.Formatter) Option {
	return func(e *Evaluator) { e.formatter = f }
}

// WithRandom sets the generator behind RND and RANDOMIZE
func WithRandom(r builtins.RandomSource) Option {
	return func(e *Evaluator) { e.bctx.Random = r }
}

// WithTracer enables execution tracing
func WithTracer(t *trace.Tracer) Option {
	return func(e *Evaluator) { e.tracer = t }
}

// WithLimits sets the call depth bound and the statement budget.
// Zero keeps the default depth and leaves statements uncounted.
func WithLimits(maxCallDepth int, maxSteps int64) Option {
	return func(e *Evaluator) {
		e.state = state.New(e.prog.Labels, e.prog.Source, types.NewExecContext(maxSteps, maxCallDepth))
	}
}

// WithClearSequence sets the text CLS writes; empty disables CLS
func WithClearSequence(seq string) Option {
	return func(e *Evaluator) { e.clear = seq }
}

// New creates an evaluator for prog. Output defaults to stdout, input to
// stdin and formatting to format.Plain.
func New(prog *parser.Program, opts ...Option) *Evaluator {
	e := &Evaluator{
		prog:      prog,
		state:     state.New(prog.Labels, prog.Source, nil),
		builtins:  builtins.NewRegistry(),
		bctx:      &builtins.Context{Source: prog.Source},
		formatter: format.Plain{},
		out:       os.Stdout,
		in:        bufio.NewReader(os.Stdin),
		clear:     DefaultClearSequence,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.bctx.Random == nil {
		e.bctx.Random = builtins.NewTimeSeededSource()
	}
	return e
}

// State exposes the interpreter state, mainly for tests and the REPL
func (e *Evaluator) State() *state.State {
	return e.state
}

// Status returns the run state
func (e *Evaluator) Status() Status {
	return e.status
}

// Run executes the program from its first statement. It returns nil when
// the program ends or halts with END/STOP, and the fatal *types.Error
// otherwise. Each call starts from a clean state.
func (e *Evaluator) Run() error {
	e.state.Reset()
	e.status = Running
	e.cursor = 0
	e.loops = 0

	if err := e.state.ValidateLabels(); err != nil {
		return e.fail(e.locateLabel(err))
	}
	e.state.LoadData(collectData(e.prog.Statements))

	res, err := e.runFrom(0)
	if err != nil {
		return e.fail(err)
	}
	if res.IsReturn() {
		return e.fail(types.NewError(types.ControlFlowMisuse, "RETURN without GOSUB"))
	}
	e.status = HaltedNormal
	return nil
}

func (e *Evaluator) fail(err error) error {
	e.status = HaltedError
	e.tracer.Error(err)
	return err
}

// runFrom executes top-level statements starting at pc until the end of
// the program or a signal this cursor cannot handle. Jumps reposition the
// cursor; reaching the end yields a normal result.
func (e *Evaluator) runFrom(pc int) (types.Result, error) {
	stmts := e.prog.Statements
	for pc < len(stmts) {
		e.cursor = pc
		res, err := e.execStmt(stmts[pc])
		if err != nil {
			return res, err
		}
		switch res.Flow {
		case types.FlowNormal:
			pc++
		case types.FlowJump:
			pc = res.Target
		default:
			return res, nil
		}
	}
	return types.Ok(), nil
}

// runBlock executes a nested statement list, stopping at the first
// non-normal result
func (e *Evaluator) runBlock(stmts []parser.Stmt) (types.Result, error) {
	for _, stmt := range stmts {
		res, err := e.execStmt(stmt)
		if err != nil || !res.IsNormal() {
			return res, err
		}
	}
	return types.Ok(), nil
}

// execStmt counts the statement against the budget, traces it, executes it
// and stamps any error with the statement's position and the call stack
func (e *Evaluator) execStmt(stmt parser.Stmt) (types.Result, error) {
	if err := e.state.ConsumeStep(); err != nil {
		return types.Ok(), e.locate(err, stmt)
	}
	e.tracer.Statement(stmtKind(stmt), stmt.Position().Line, e.state.CallDepth())

	res, err := e.EvalStmt(stmt)
	if err != nil {
		return res, e.locate(err, stmt)
	}
	return res, nil
}

// locate attaches the position of the innermost failing statement and the
// traceback at the point of failure
func (e *Evaluator) locate(err error, stmt parser.Stmt) error {
	var rerr *types.Error
	if !errors.As(err, &rerr) || rerr.HasPosition() {
		return err
	}
	pos := stmt.Position()
	rerr.At(pos.Line, pos.Column)
	rerr.Traceback = state.Traceback(e.state.Frames())
	return rerr
}

// locateLabel stamps an invalid label error with the position of the
// statement the label marks
func (e *Evaluator) locateLabel(err error) error {
	var rerr *types.Error
	if !errors.As(err, &rerr) {
		return err
	}
	if idx, ok := e.prog.Labels[rerr.Name]; ok && idx < len(e.prog.Statements) {
		return e.locate(rerr, e.prog.Statements[idx])
	}
	return rerr
}

// ============================================================================
// EXPRESSIONS
// ============================================================================

// Eval evaluates an expression in the current scope
func (e *Evaluator) Eval(expr parser.Expr) (types.Value, error) {
	switch n := expr.(type) {
	case *parser.LiteralExpr:
		return n.Value, nil
	case *parser.IdentifierExpr:
		return e.evalIdentifier(n)
	case *parser.CallExpr:
		return e.evalCall(n)
	case *parser.UnaryExpr:
		return e.evalUnary(n)
	case *parser.BinaryExpr:
		return e.evalBinary(n)
	case *parser.ParenExpr:
		return e.Eval(n.Expr)
	default:
		return nil, types.NewError(types.TypeError, "Unsupported expression %T", expr)
	}
}

// evalIdentifier reads a variable. A bare array name yields a copy of the
// whole array.
func (e *Evaluator) evalIdentifier(node *parser.IdentifierExpr) (types.Value, error) {
	v, bound := e.state.Lookup(node.Name)
	if !bound {
		if arr, ok := e.state.Array(node.Name); ok {
			return arr.Clone(), nil
		}
	}
	if err := safeguard.VariableDefined(node.Name, v, bound); err != nil {
		return nil, err
	}
	return v, nil
}

// evalCall reads an array element when the name is a declared array and
// calls a builtin otherwise
func (e *Evaluator) evalCall(node *parser.CallExpr) (types.Value, error) {
	args, err := e.evalArgs(node.Args)
	if err != nil {
		return nil, err
	}
	if _, ok := e.state.Array(node.Name); ok {
		return e.state.ArrayAt(node.Name, args)
	}
	b, ok := e.builtins.Lookup(node.Name)
	if !ok {
		return nil, safeguard.ArrayDefined(node.Name, false)
	}
	return b.Call(e.bctx, args)
}

func (e *Evaluator) evalArgs(exprs []parser.Expr) ([]types.Value, error) {
	args := make([]types.Value, len(exprs))
	for i, arg := range exprs {
		v, err := e.Eval(arg)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// evalUnary evaluates a unary expression
// Implements: - (negation), + (identity), NOT (logical not)
func (e *Evaluator) evalUnary(node *parser.UnaryExpr) (types.Value, error) {
	operand, err := e.Eval(node.Operand)
	if err != nil {
		return nil, err
	}

	switch node.Operator {
	case parser.TOKEN_MINUS:
		return evalUnaryMinus(operand)
	case parser.TOKEN_PLUS:
		return evalUnaryPlus(operand)
	case parser.TOKEN_NOT:
		return evalUnaryNot(operand)
	default:
		return nil, types.NewError(types.TypeError, "Unsupported unary operator %s", node.Operator)
	}
}

// evalBinary evaluates both operands left to right, then applies the
// operator. AND and OR do not short-circuit.
func (e *Evaluator) evalBinary(node *parser.BinaryExpr) (types.Value, error) {
	left, err := e.Eval(node.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(node.Right)
	if err != nil {
		return nil, err
	}

	switch node.Operator {
	case parser.TOKEN_PLUS:
		return evalAdd(left, right)
	case parser.TOKEN_MINUS:
		return evalSubtract(left, right)
	case parser.TOKEN_STAR:
		return evalMultiply(left, right)
	case parser.TOKEN_SLASH:
		return evalDivide(left, right)
	case parser.TOKEN_MOD:
		return evalModulo(left, right)
	case parser.TOKEN_CARET:
		return evalPower(left, right)
	case parser.TOKEN_EQ:
		return evalEqual(left, right), nil
	case parser.TOKEN_NE:
		return evalNotEqual(left, right), nil
	case parser.TOKEN_LT:
		return evalLessThan(left, right)
	case parser.TOKEN_LE:
		return evalLessThanEqual(left, right)
	case parser.TOKEN_GT:
		return evalGreaterThan(left, right)
	case parser.TOKEN_GE:
		return evalGreaterThanEqual(left, right)
	case parser.TOKEN_AND:
		return evalAnd(left, right)
	case parser.TOKEN_OR:
		return evalOr(left, right)
	default:
		return nil, types.NewError(types.TypeError, "Unsupported operator %s", node.Operator)
	}
}
