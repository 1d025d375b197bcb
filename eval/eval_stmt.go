package eval

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"jbasic/format"
	"jbasic/parser"
	"jbasic/safeguard"
	"jbasic/state"
	"jbasic/types"
)

// EvalStmt executes one statement and reports how control continues
func (e *Evaluator) EvalStmt(stmt parser.Stmt) (types.Result, error) {
	switch s := stmt.(type) {
	case *parser.LetStmt:
		return e.evalLetStmt(s)
	case *parser.DimStmt:
		return e.evalDimStmt(s)
	case *parser.PrintStmt:
		return e.evalPrintStmt(s)
	case *parser.InputStmt:
		return e.evalInputStmt(s)
	case *parser.IfStmt:
		return e.evalIfStmt(s)
	case *parser.ForStmt:
		return e.evalForStmt(s)
	case *parser.WhileStmt:
		return e.evalWhileStmt(s)
	case *parser.DoStmt:
		return e.evalDoStmt(s)
	case *parser.ContinueStmt:
		return e.evalLoopSignal("CONTINUE", types.Continue())
	case *parser.ExitStmt:
		return e.evalLoopSignal("EXIT", types.Exit())
	case *parser.GotoStmt:
		return e.evalGotoStmt(s)
	case *parser.GosubStmt:
		return e.evalGosubStmt(s)
	case *parser.CallStmt:
		return e.evalCallStmt(s)
	case *parser.ReturnStmt:
		return e.evalReturnStmt(s)
	case *parser.EndStmt:
		return types.Halt(), nil
	case *parser.SubStmt:
		return types.Ok(), e.state.DefineSubroutine(state.NewSubroutine(s))
	case *parser.SelectStmt:
		return e.evalSelectStmt(s)
	case *parser.DataStmt:
		// collected before the run starts
		return types.Ok(), nil
	case *parser.ReadStmt:
		return e.evalReadStmt(s)
	case *parser.RestoreStmt:
		e.state.Restore()
		return types.Ok(), nil
	case *parser.RandomizeStmt:
		return e.evalRandomizeStmt(s)
	case *parser.ClsStmt:
		return e.evalClsStmt()
	default:
		return types.Ok(), types.NewError(types.ControlFlowMisuse, "Unsupported statement %T", stmt)
	}
}

// stmtKind names a statement for tracing
func stmtKind(stmt parser.Stmt) string {
	switch s := stmt.(type) {
	case *parser.LetStmt:
		return "LET"
	case *parser.DimStmt:
		return "DIM"
	case *parser.PrintStmt:
		return "PRINT"
	case *parser.InputStmt:
		return "INPUT"
	case *parser.IfStmt:
		return "IF"
	case *parser.ForStmt:
		return "FOR"
	case *parser.WhileStmt:
		return "WHILE"
	case *parser.DoStmt:
		return "DO"
	case *parser.ContinueStmt:
		return "CONTINUE"
	case *parser.ExitStmt:
		return "EXIT"
	case *parser.GotoStmt:
		return "GOTO"
	case *parser.GosubStmt:
		return "GOSUB"
	case *parser.CallStmt:
		return s.Keyword.String()
	case *parser.ReturnStmt:
		return "RETURN"
	case *parser.EndStmt:
		if s.Stop {
			return "STOP"
		}
		return "END"
	case *parser.SubStmt:
		return "SUB"
	case *parser.SelectStmt:
		return "SELECT"
	case *parser.DataStmt:
		return "DATA"
	case *parser.ReadStmt:
		return "READ"
	case *parser.RestoreStmt:
		return "RESTORE"
	case *parser.RandomizeStmt:
		return "RANDOMIZE"
	case *parser.ClsStmt:
		return "CLS"
	}
	return "unknown"
}

// ============================================================================
// ASSIGNMENT
// ============================================================================

// evalLetStmt evaluates the right-hand side and writes it to the target
func (e *Evaluator) evalLetStmt(stmt *parser.LetStmt) (types.Result, error) {
	v, err := e.Eval(stmt.Value)
	if err != nil {
		return types.Ok(), err
	}
	return types.Ok(), e.assign(stmt.Target, v)
}

// assign writes v to a variable or an array element after the suffix check
func (e *Evaluator) assign(target parser.Expr, v types.Value) error {
	switch t := target.(type) {
	case *parser.IdentifierExpr:
		if err := safeguard.VariableSuffix(t.Name, v); err != nil {
			return err
		}
		e.state.Assign(t.Name, v)
		return nil
	case *parser.CallExpr:
		indices, err := e.evalArgs(t.Args)
		if err != nil {
			return err
		}
		if err := safeguard.VariableSuffix(t.Name, v); err != nil {
			return err
		}
		return e.state.SetArrayAt(t.Name, indices, v)
	default:
		return types.NewError(types.TypeError, "Cannot assign to %T", target)
	}
}

// evalDimStmt declares each array in turn. Redeclaring replaces the array.
func (e *Evaluator) evalDimStmt(stmt *parser.DimStmt) (types.Result, error) {
	for _, decl := range stmt.Decls {
		sizes, err := e.evalArgs(decl.Sizes)
		if err != nil {
			return types.Ok(), err
		}
		dims, err := safeguard.ArrayDeclaration(decl.Name, sizes)
		if err != nil {
			return types.Ok(), err
		}
		e.state.DeclareArray(decl.Name, dims)
	}
	return types.Ok(), nil
}

// ============================================================================
// CONSOLE I/O
// ============================================================================

func (e *Evaluator) write(s string) error {
	if _, err := io.WriteString(e.out, s); err != nil {
		return types.NewError(types.IOError, "Could not write output: %v", err)
	}
	return nil
}

// evalPrintStmt prints each expression on its own line
func (e *Evaluator) evalPrintStmt(stmt *parser.PrintStmt) (types.Result, error) {
	if len(stmt.Exprs) == 0 {
		return types.Ok(), e.write("\n")
	}
	for _, expr := range stmt.Exprs {
		v, err := e.Eval(expr)
		if err != nil {
			return types.Ok(), err
		}
		if err := e.write(e.formatter.Format(v, format.Output) + "\n"); err != nil {
			return types.Ok(), err
		}
	}
	return types.Ok(), nil
}

// evalInputStmt writes the prompt and a space, reads one line and stores
// it as text, or as a number when the target has a % suffix
func (e *Evaluator) evalInputStmt(stmt *parser.InputStmt) (types.Result, error) {
	if stmt.Prompt != nil {
		prompt, err := e.Eval(stmt.Prompt)
		if err != nil {
			return types.Ok(), err
		}
		if err := e.write(e.formatter.Format(prompt, format.Output) + " "); err != nil {
			return types.Ok(), err
		}
	}

	line, err := e.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return types.Ok(), types.NewError(types.IOError, "Could not read input: %v", err)
	}
	line = strings.TrimRight(line, "\r\n")

	var v types.Value = types.NewStr(line)
	if strings.HasSuffix(targetName(stmt.Target), "%") {
		if f, perr := strconv.ParseFloat(strings.TrimSpace(line), 64); perr == nil {
			v = types.NewNum(f)
		}
	}
	return types.Ok(), e.assign(stmt.Target, v)
}

func targetName(target parser.Expr) string {
	switch t := target.(type) {
	case *parser.IdentifierExpr:
		return t.Name
	case *parser.CallExpr:
		return t.Name
	}
	return ""
}

// evalClsStmt clears the screen
func (e *Evaluator) evalClsStmt() (types.Result, error) {
	if e.clear == "" {
		return types.Ok(), nil
	}
	return types.Ok(), e.write(e.clear)
}

// ============================================================================
// BRANCHING
// ============================================================================

// evalIfStmt runs the first branch whose condition is nonzero
func (e *Evaluator) evalIfStmt(stmt *parser.IfStmt) (types.Result, error) {
	ok, err := e.condition(stmt.Condition)
	if err != nil {
		return types.Ok(), err
	}
	if ok {
		return e.runBlock(stmt.Body)
	}

	for _, clause := range stmt.ElseIfs {
		ok, err := e.condition(clause.Condition)
		if err != nil {
			return types.Ok(), err
		}
		if ok {
			return e.runBlock(clause.Body)
		}
	}

	return e.runBlock(stmt.Else)
}

func (e *Evaluator) condition(expr parser.Expr) (bool, error) {
	v, err := e.Eval(expr)
	if err != nil {
		return false, err
	}
	return safeguard.Condition(v)
}

// evalSelectStmt runs the first CASE with a value equal to the subject.
// EXIT and CONTINUE pass through to the enclosing loop.
func (e *Evaluator) evalSelectStmt(stmt *parser.SelectStmt) (types.Result, error) {
	subject, err := e.Eval(stmt.Subject)
	if err != nil {
		return types.Ok(), err
	}
	for _, c := range stmt.Cases {
		for _, expr := range c.Values {
			v, err := e.Eval(expr)
			if err != nil {
				return types.Ok(), err
			}
			if subject.Equal(v) {
				return e.runBlock(c.Body)
			}
		}
	}
	return e.runBlock(stmt.Else)
}

// ============================================================================
// LOOPS
// ============================================================================

// evalLoopSignal raises CONTINUE or EXIT, which only a loop in the same
// call may catch
func (e *Evaluator) evalLoopSignal(keyword string, signal types.Result) (types.Result, error) {
	if e.loops == 0 {
		err := types.NewError(types.ControlFlowMisuse, "%s used outside of a loop", keyword)
		err.Name = keyword
		return types.Ok(), err
	}
	return signal, nil
}

// loopBody runs one iteration. stop is set when the loop must end; res is
// then what the loop statement returns.
func (e *Evaluator) loopBody(body []parser.Stmt) (stop bool, res types.Result, err error) {
	res, err = e.runBlock(body)
	if err != nil {
		return true, res, err
	}
	switch res.Flow {
	case types.FlowNormal, types.FlowContinue:
		return false, types.Ok(), nil
	case types.FlowExit:
		return true, types.Ok(), nil
	default:
		return true, res, nil
	}
}

// evalForStmt runs FOR var = start TO end [STEP step]. The counter is
// kept internally and copied to the variable before each iteration, so
// the body cannot change the iteration count.
func (e *Evaluator) evalForStmt(stmt *parser.ForStmt) (types.Result, error) {
	start, err := e.number("FOR", stmt.Start)
	if err != nil {
		return types.Ok(), err
	}
	end, err := e.number("TO", stmt.End)
	if err != nil {
		return types.Ok(), err
	}
	step := 1.0
	if stmt.Step != nil {
		if step, err = e.number("STEP", stmt.Step); err != nil {
			return types.Ok(), err
		}
	}

	e.loops++
	defer func() { e.loops-- }()

	for i := start; ; i += step {
		if (step >= 0 && i > end) || (step < 0 && i < end) {
			break
		}
		v := types.NewNum(i)
		if err := safeguard.VariableSuffix(stmt.Var, v); err != nil {
			return types.Ok(), err
		}
		e.state.Assign(stmt.Var, v)

		stop, res, err := e.loopBody(stmt.Body)
		if stop || err != nil {
			return res, err
		}
	}
	return types.Ok(), nil
}

func (e *Evaluator) number(context string, expr parser.Expr) (float64, error) {
	v, err := e.Eval(expr)
	if err != nil {
		return 0, err
	}
	return safeguard.Number(context, v)
}

// evalWhileStmt runs the body while the condition is nonzero
func (e *Evaluator) evalWhileStmt(stmt *parser.WhileStmt) (types.Result, error) {
	e.loops++
	defer func() { e.loops-- }()

	for {
		ok, err := e.condition(stmt.Condition)
		if err != nil {
			return types.Ok(), err
		}
		if !ok {
			return types.Ok(), nil
		}
		stop, res, err := e.loopBody(stmt.Body)
		if stop || err != nil {
			return res, err
		}
	}
}

// evalDoStmt runs DO [WHILE|UNTIL c] ... LOOP and DO ... LOOP [WHILE|UNTIL c]
func (e *Evaluator) evalDoStmt(stmt *parser.DoStmt) (types.Result, error) {
	e.loops++
	defer func() { e.loops-- }()

	again := func() (bool, error) {
		if stmt.Condition == nil {
			return true, nil
		}
		ok, err := e.condition(stmt.Condition)
		if err != nil {
			return false, err
		}
		return ok != stmt.Until, nil
	}

	for {
		if !stmt.PostTest {
			ok, err := again()
			if err != nil || !ok {
				return types.Ok(), err
			}
		}
		stop, res, err := e.loopBody(stmt.Body)
		if stop || err != nil {
			return res, err
		}
		if stmt.PostTest {
			ok, err := again()
			if err != nil || !ok {
				return types.Ok(), err
			}
		}
	}
}

// ============================================================================
// JUMPS AND CALLS
// ============================================================================

// evalGotoStmt resolves the label and asks the enclosing cursor to move
func (e *Evaluator) evalGotoStmt(stmt *parser.GotoStmt) (types.Result, error) {
	idx, err := e.state.ResolveLabel(stmt.Target)
	if err != nil {
		return types.Ok(), err
	}
	e.tracer.Jump("GOTO", stmt.Target, idx)
	return types.Jump(stmt.Target, idx), nil
}

// evalGosubStmt runs the routine at a label in the caller's scope until it
// returns. A routine that runs off the end of the program ends the program.
func (e *Evaluator) evalGosubStmt(stmt *parser.GosubStmt) (types.Result, error) {
	idx, err := e.state.ResolveLabel(stmt.Target)
	if err != nil {
		return types.Ok(), err
	}

	frame := state.NewGosubFrame(stmt.Target, e.cursor+1)
	frame.Line, frame.Column = stmt.Pos.Line, stmt.Pos.Column
	if err := e.state.PushFrame(frame); err != nil {
		return types.Ok(), err
	}
	e.tracer.Jump("GOSUB", stmt.Target, idx)

	cursor, loops := e.cursor, e.loops
	e.loops = 0
	res, err := e.runFrom(idx)
	e.cursor, e.loops = cursor, loops
	if _, perr := e.state.PopFrame(); perr != nil && err == nil {
		err = perr
	}
	if err != nil {
		return types.Ok(), err
	}

	switch res.Flow {
	case types.FlowReturn:
		return types.Ok(), nil
	case types.FlowNormal:
		return types.Halt(), nil
	default:
		return res, nil
	}
}

// evalCallStmt invokes a named subroutine with its own local scope
func (e *Evaluator) evalCallStmt(stmt *parser.CallStmt) (types.Result, error) {
	sub, err := e.state.Subroutine(stmt.Name)
	if err != nil {
		return types.Ok(), err
	}
	if err := safeguard.SubroutineArity(sub.Name, len(sub.Params), len(stmt.Args)); err != nil {
		return types.Ok(), err
	}
	args, err := e.evalArgs(stmt.Args)
	if err != nil {
		return types.Ok(), err
	}
	for i, param := range sub.Params {
		if err := safeguard.VariableSuffix(param, args[i]); err != nil {
			return types.Ok(), err
		}
	}

	frame := state.NewSubFrame(sub, args)
	frame.ReturnIndex = e.cursor + 1
	frame.Line, frame.Column = stmt.Pos.Line, stmt.Pos.Column
	if err := e.state.PushFrame(frame); err != nil {
		return types.Ok(), err
	}
	depth := e.state.CallDepth()
	e.tracer.SubCall(sub.Name, args, depth)

	loops := e.loops
	e.loops = 0
	res, err := e.runBlock(sub.Body)
	e.loops = loops
	if _, perr := e.state.PopFrame(); perr != nil && err == nil {
		err = perr
	}
	if err != nil {
		return types.Ok(), err
	}
	e.tracer.SubReturn(sub.Name, depth)

	if res.IsReturn() {
		return types.Ok(), nil
	}
	return res, nil
}

// evalReturnStmt leaves the innermost GOSUB routine or subroutine
func (e *Evaluator) evalReturnStmt(stmt *parser.ReturnStmt) (types.Result, error) {
	if e.state.CallDepth() == 0 {
		return types.Ok(), types.NewError(types.ControlFlowMisuse, "RETURN without GOSUB")
	}
	return types.Return(), nil
}

// ============================================================================
// DATA AND RANDOM NUMBERS
// ============================================================================

// evalReadStmt assigns the next DATA value to each target in order
func (e *Evaluator) evalReadStmt(stmt *parser.ReadStmt) (types.Result, error) {
	for _, target := range stmt.Targets {
		v, err := e.state.ReadData()
		if err != nil {
			return types.Ok(), err
		}
		if err := e.assign(target, v); err != nil {
			return types.Ok(), err
		}
	}
	return types.Ok(), nil
}

// evalRandomizeStmt reseeds the random source from the given number, or
// from the clock when no seed is given
func (e *Evaluator) evalRandomizeStmt(stmt *parser.RandomizeStmt) (types.Result, error) {
	seed := time.Now().UnixNano()
	if stmt.Seed != nil {
		f, err := e.number("RANDOMIZE", stmt.Seed)
		if err != nil {
			return types.Ok(), err
		}
		seed = int64(f)
	}
	e.bctx.Random.Seed(seed)
	return types.Ok(), nil
}
