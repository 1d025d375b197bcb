package safeguard

import (
	"jbasic/types"
)

// MaxArrayDims is the largest dimensionality DIM accepts
const MaxArrayDims = 3

// MaxArraySlots caps the total number of slots one DIM may allocate
const MaxArraySlots = 1 << 24

// ArrayDeclaration validates the sizes given to DIM and returns them as ints
func ArrayDeclaration(name string, sizes []types.Value) ([]int, error) {
	if len(sizes) == 0 || len(sizes) > MaxArrayDims {
		err := types.NewError(types.ArrayDimensionUnsupported,
			"Array %s must have between 1 and %d dimensions, got %d", name, MaxArrayDims, len(sizes))
		err.Name = name
		err.Expected = MaxArrayDims
		err.Got = len(sizes)
		return nil, err
	}

	dims := make([]int, len(sizes))
	total := 1
	for i, v := range sizes {
		n, ok := v.(types.NumValue)
		if !ok {
			return nil, Operand("DIM", v)
		}
		if n.Val <= 0 {
			return nil, unsupportedSize(name, "Dimensions can not be negative or zero", n.Val)
		}
		if !n.IsWhole() {
			return nil, unsupportedSize(name, "Dimensions must be whole numbers", n.Val)
		}
		if n.Val > MaxArraySlots || total*int(n.Val) > MaxArraySlots {
			return nil, unsupportedSize(name, "Array is too large", n.Val)
		}
		dims[i] = int(n.Val)
		total *= dims[i]
	}
	return dims, nil
}

func unsupportedSize(name, msg string, size float64) *types.Error {
	err := types.NewError(types.ArrayDimensionUnsupported, "%s: %s(%s)", msg, name, types.FormatNumber(size))
	err.Name = name
	err.Indices = []float64{size}
	return err
}

// ArrayAccess validates indices against an array's declared shape and
// returns them as zero-based ints. Every index must be a whole number in
// [0, size); nothing is clamped.
func ArrayAccess(name string, arr *types.ArrayValue, indices []types.Value) ([]int, error) {
	dims := arr.Dims()
	if len(indices) != len(dims) {
		err := types.NewError(types.ArrayDimensionMismatch,
			"Array %s has %d dimension(s) but was indexed with %d", name, len(dims), len(indices))
		err.Name = name
		err.Expected = len(dims)
		err.Got = len(indices)
		err.Dims = dims
		return nil, err
	}

	raw := make([]float64, len(indices))
	for i, v := range indices {
		n, ok := v.(types.NumValue)
		if !ok {
			return nil, Operand("array index", v)
		}
		raw[i] = n.Val
	}

	out := make([]int, len(raw))
	for i, f := range raw {
		if !types.NewNum(f).IsWhole() || f < 0 || f >= float64(dims[i]) {
			err := types.NewError(types.ArrayIndexOutOfBounds,
				"Index %s is out of bounds for dimension %d of array %s (size %d)",
				types.FormatNumber(f), i+1, name, dims[i])
			err.Name = name
			err.Indices = raw
			err.Dims = dims
			return nil, err
		}
		out[i] = int(f)
	}
	return out, nil
}
