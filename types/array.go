package types

import (
	"strings"
)

// ArrayValue is a fixed-shape array of up to three dimensions.
// Slots are stored row-major in a flat backing slice and start Undefined.
// Callers validate indices before Get/Set.
type ArrayValue struct {
	dims  []int
	slots []Value
}

// NewArray creates an array with the given dimension sizes
func NewArray(dims []int) *ArrayValue {
	size := 1
	for _, d := range dims {
		size *= d
	}
	slots := make([]Value, size)
	for i := range slots {
		slots[i] = Undefined
	}
	return &ArrayValue{
		dims:  append([]int(nil), dims...),
		slots: slots,
	}
}

func (a *ArrayValue) Type() TypeCode {
	return TYPE_ARRAY
}

// Dims returns a copy of the declared dimension sizes
func (a *ArrayValue) Dims() []int {
	return append([]int(nil), a.dims...)
}

// Rank returns the number of dimensions
func (a *ArrayValue) Rank() int {
	return len(a.dims)
}

// Len returns the total number of slots
func (a *ArrayValue) Len() int {
	return len(a.slots)
}

func (a *ArrayValue) offset(indices []int) int {
	off := 0
	for i, idx := range indices {
		off = off*a.dims[i] + idx
	}
	return off
}

// Get returns the value at the given zero-based indices
func (a *ArrayValue) Get(indices []int) Value {
	return a.slots[a.offset(indices)]
}

// Set replaces the value at the given zero-based indices
func (a *ArrayValue) Set(indices []int, v Value) {
	a.slots[a.offset(indices)] = v
}

// Elements returns a copy of the slots in row-major order
func (a *ArrayValue) Elements() []Value {
	return append([]Value(nil), a.slots...)
}

// Clone returns an independent copy with the same shape and slots
func (a *ArrayValue) Clone() *ArrayValue {
	return &ArrayValue{
		dims:  a.Dims(),
		slots: a.Elements(),
	}
}

// String renders nested brackets, one level per dimension
func (a *ArrayValue) String() string {
	return a.Render(func(v Value) string { return v.String() })
}

// Render renders the array using fn for each slot
func (a *ArrayValue) Render(fn func(Value) string) string {
	var sb strings.Builder
	a.render(&sb, 0, 0, fn)
	return sb.String()
}

func (a *ArrayValue) render(sb *strings.Builder, dim, base int, fn func(Value) string) {
	stride := 1
	for _, d := range a.dims[dim+1:] {
		stride *= d
	}
	sb.WriteByte('[')
	for i := 0; i < a.dims[dim]; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		if dim == len(a.dims)-1 {
			sb.WriteString(fn(a.slots[base+i]))
		} else {
			a.render(sb, dim+1, base+i*stride, fn)
		}
	}
	sb.WriteByte(']')
}

// Equal reports whether both arrays have the same shape and equal slots
func (a *ArrayValue) Equal(other Value) bool {
	o, ok := other.(*ArrayValue)
	if !ok {
		return false
	}
	if len(a.dims) != len(o.dims) || len(a.slots) != len(o.slots) {
		return false
	}
	for i := range a.dims {
		if a.dims[i] != o.dims[i] {
			return false
		}
	}
	for i := range a.slots {
		if !a.slots[i].Equal(o.slots[i]) {
			return false
		}
	}
	return true
}

func (a *ArrayValue) value() {}
