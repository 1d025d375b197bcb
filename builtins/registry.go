package builtins

import (
	"math"
	"sort"
	"strings"

	"jbasic/safeguard"
	"jbasic/types"
)

// Context is what a builtin may use besides its arguments
type Context struct {
	Random RandomSource
	Source string // program text, for LIST()
}

// BuiltinFunc is a function type for builtin functions
type BuiltinFunc func(ctx *Context, args []types.Value) (types.Value, error)

// Builtin is a registered function with its accepted argument counts.
// MaxArgs < 0 means any number from MinArgs up.
type Builtin struct {
	Name    string
	MinArgs int
	MaxArgs int
	Fn      BuiltinFunc
}

// Registry holds all registered builtin functions
type Registry struct {
	funcs map[string]*Builtin
}

// NewRegistry creates a new builtin function registry
func NewRegistry() *Registry {
	r := &Registry{
		funcs: make(map[string]*Builtin),
	}

	// Math
	r.Register("ABS", 1, 1, unary("ABS", math.Abs))
	r.Register("ACS", 1, 1, unary("ACS", math.Acos))
	r.Register("ASN", 1, 1, unary("ASN", math.Asin))
	r.Register("ATN", 1, 1, unary("ATN", math.Atan))
	r.Register("ASH", 1, 1, unary("ASH", math.Asinh))
	r.Register("ATH", 1, 1, unary("ATH", math.Atanh))
	r.Register("COS", 1, 1, unary("COS", math.Cos))
	r.Register("EXP", 1, 1, unary("EXP", math.Exp))
	r.Register("LOG", 1, 1, unary("LOG", math.Log))
	r.Register("SIN", 1, 1, unary("SIN", math.Sin))
	r.Register("SQR", 1, 1, unary("SQR", math.Sqrt))
	r.Register("TAN", 1, 1, unary("TAN", math.Tan))
	r.Register("INT", 1, 1, unary("INT", math.Floor))
	r.Register("SGN", 1, 1, unary("SGN", sign))

	// Aggregates
	r.Register("AVG", 1, -1, builtinAvg)
	r.Register("MAX", 1, -1, builtinMax)
	r.Register("MIN", 1, -1, builtinMin)
	r.Register("SUM", 1, -1, builtinSum)

	// Strings
	r.Register("LEN", 1, 1, builtinLen)
	r.Register("STR", 1, 1, builtinStr)
	r.Register("NUM", 1, 1, builtinNum)
	r.Register("LEFT$", 2, 2, builtinLeft)
	r.Register("RIGHT$", 2, 2, builtinRight)
	r.Register("MID$", 2, 3, builtinMid)
	r.Register("UCASE$", 1, 1, builtinUcase)
	r.Register("LCASE$", 1, 1, builtinLcase)
	r.Register("CHR$", 1, 1, builtinChr)
	r.Register("ASC", 1, 1, builtinAsc)

	// System
	r.Register("RND", 2, 2, builtinRnd)
	r.Register("LIST", 0, 0, builtinList)

	return r
}

// Register adds a builtin function to the registry. Names are
// case-insensitive.
func (r *Registry) Register(name string, minArgs, maxArgs int, fn BuiltinFunc) {
	name = strings.ToUpper(name)
	r.funcs[name] = &Builtin{
		Name:    name,
		MinArgs: minArgs,
		MaxArgs: maxArgs,
		Fn:      fn,
	}
}

// Lookup retrieves a builtin function by name
func (r *Registry) Lookup(name string) (*Builtin, bool) {
	b, ok := r.funcs[strings.ToUpper(name)]
	return b, ok
}

// Names returns the registered names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call checks the argument count and invokes the builtin
func (r *Registry) Call(ctx *Context, name string, args []types.Value) (types.Value, error) {
	b, ok := r.Lookup(name)
	if !ok {
		err := types.NewError(types.UndefinedVariable, "Function %s is not defined", name)
		err.Name = name
		return nil, err
	}
	return b.Call(ctx, args)
}

// Call checks the argument count and invokes the builtin
func (b *Builtin) Call(ctx *Context, args []types.Value) (types.Value, error) {
	if err := safeguard.FunctionArity(b.Name, b.MinArgs, b.MaxArgs, len(args)); err != nil {
		return nil, err
	}
	return b.Fn(ctx, args)
}
