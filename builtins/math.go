package builtins

import (
	"math"

	"jbasic/safeguard"
	"jbasic/types"
)

// ============================================================================
// SINGLE-ARGUMENT MATH
// ============================================================================

// unary wraps a float function as a one-argument builtin taking a NUMBER.
// Out-of-domain inputs yield NaN, as the float functions do.
func unary(name string, f func(float64) float64) BuiltinFunc {
	return func(ctx *Context, args []types.Value) (types.Value, error) {
		x, err := safeguard.Number(name, args[0])
		if err != nil {
			return nil, err
		}
		return types.NewNum(f(x)), nil
	}
}

// sign returns -1, 0 or 1
// SGN(x) -> number
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// ============================================================================
// AGGREGATES
// ============================================================================

// numbers asserts every argument is a NUMBER
func numbers(name string, args []types.Value) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		x, err := safeguard.Number(name, a)
		if err != nil {
			return nil, err
		}
		out[i] = x
	}
	return out, nil
}

// builtinSum adds its arguments
// SUM(n1, n2, ...) -> number
func builtinSum(ctx *Context, args []types.Value) (types.Value, error) {
	xs, err := numbers("SUM", args)
	if err != nil {
		return nil, err
	}
	total := 0.0
	for _, x := range xs {
		total += x
	}
	return types.NewNum(total), nil
}

// builtinAvg returns the arithmetic mean
// AVG(n1, n2, ...) -> number
func builtinAvg(ctx *Context, args []types.Value) (types.Value, error) {
	xs, err := numbers("AVG", args)
	if err != nil {
		return nil, err
	}
	total := 0.0
	for _, x := range xs {
		total += x
	}
	return types.NewNum(total / float64(len(xs))), nil
}

// builtinMax returns the largest argument
// MAX(n1, n2, ...) -> number
func builtinMax(ctx *Context, args []types.Value) (types.Value, error) {
	xs, err := numbers("MAX", args)
	if err != nil {
		return nil, err
	}
	best := xs[0]
	for _, x := range xs[1:] {
		best = math.Max(best, x)
	}
	return types.NewNum(best), nil
}

// builtinMin returns the smallest argument
// MIN(n1, n2, ...) -> number
func builtinMin(ctx *Context, args []types.Value) (types.Value, error) {
	xs, err := numbers("MIN", args)
	if err != nil {
		return nil, err
	}
	best := xs[0]
	for _, x := range xs[1:] {
		best = math.Min(best, x)
	}
	return types.NewNum(best), nil
}
