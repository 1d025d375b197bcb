package builtins

import (
	"jbasic/safeguard"
	"jbasic/types"
)

// builtinRnd draws a uniformly distributed number in [min, max)
// RND(min, max) -> number
func builtinRnd(ctx *Context, args []types.Value) (types.Value, error) {
	lo, err := safeguard.Number("RND", args[0])
	if err != nil {
		return nil, err
	}
	hi, err := safeguard.Number("RND", args[1])
	if err != nil {
		return nil, err
	}
	src := ctx.random()
	return types.NewNum(lo + (hi-lo)*src.Float64()), nil
}

// builtinList returns the source of the running program
// LIST() -> text
func builtinList(ctx *Context, args []types.Value) (types.Value, error) {
	if ctx == nil {
		return types.NewStr(""), nil
	}
	return types.NewStr(ctx.Source), nil
}

func (ctx *Context) random() RandomSource {
	if ctx == nil || ctx.Random == nil {
		return defaultRandom
	}
	return ctx.Random
}
