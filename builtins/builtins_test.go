package builtins

import (
	"errors"
	"math"
	"testing"

	"jbasic/types"
)

func num(f float64) types.Value { return types.NewNum(f) }
func str(s string) types.Value  { return types.NewStr(s) }

func TestBuiltinResults(t *testing.T) {
	r := NewRegistry()
	ctx := &Context{Random: NewRandomSource(1), Source: "PRINT LIST()"}

	tests := []struct {
		name string
		fn   string
		args []types.Value
		want types.Value
	}{
		{"abs", "ABS", []types.Value{num(-3)}, num(3)},
		{"sqr", "SQR", []types.Value{num(16)}, num(4)},
		{"int floors", "INT", []types.Value{num(-2.5)}, num(-3)},
		{"sgn", "SGN", []types.Value{num(-7)}, num(-1)},
		{"cos zero", "COS", []types.Value{num(0)}, num(1)},
		{"sum", "SUM", []types.Value{num(1), num(2), num(3)}, num(6)},
		{"avg", "AVG", []types.Value{num(1), num(2), num(6)}, num(3)},
		{"max", "MAX", []types.Value{num(-5), num(-2)}, num(-2)},
		{"min", "MIN", []types.Value{num(4), num(9)}, num(4)},
		{"len", "LEN", []types.Value{str("héllo")}, num(5)},
		{"str rounds", "STR", []types.Value{num(3.14159)}, str("3.1")},
		{"str whole", "STR", []types.Value{num(42)}, str("42")},
		{"str text", "STR", []types.Value{str("x")}, str("x")},
		{"num parses", "NUM", []types.Value{str("2.5")}, num(2.5)},
		{"num bad", "NUM", []types.Value{str("abc")}, types.Undefined},
		{"num number", "NUM", []types.Value{num(7)}, num(7)},
		{"left", "LEFT$", []types.Value{str("HELLO"), num(2)}, str("HE")},
		{"left past end", "LEFT$", []types.Value{str("HI"), num(9)}, str("HI")},
		{"right", "RIGHT$", []types.Value{str("HELLO"), num(3)}, str("LLO")},
		{"mid", "MID$", []types.Value{str("HELLO"), num(2), num(3)}, str("ELL")},
		{"mid to end", "MID$", []types.Value{str("HELLO"), num(4)}, str("LO")},
		{"mid past end", "MID$", []types.Value{str("HELLO"), num(9)}, str("")},
		{"ucase", "ucase$", []types.Value{str("abc")}, str("ABC")},
		{"lcase", "LCASE$", []types.Value{str("ABC")}, str("abc")},
		{"chr", "CHR$", []types.Value{num(65)}, str("A")},
		{"asc", "ASC", []types.Value{str("a")}, num(97)},
		{"asc empty", "ASC", []types.Value{str("")}, num(0)},
		{"list", "LIST", nil, str("PRINT LIST()")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Call(ctx, tt.fn, tt.args)
			if err != nil {
				t.Fatalf("%s: unexpected error %v", tt.fn, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("%s(%v) = %v, want %v", tt.fn, tt.args, got, tt.want)
			}
		})
	}
}

func TestBuiltinNaN(t *testing.T) {
	r := NewRegistry()
	got, err := r.Call(nil, "LOG", []types.Value{num(-1)})
	if err != nil {
		t.Fatal(err)
	}
	if n := got.(types.NumValue); !math.IsNaN(n.Val) {
		t.Errorf("LOG(-1) = %v, want NaN", got)
	}
}

func TestBuiltinErrors(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name string
		fn   string
		args []types.Value
		want types.ErrorKind
	}{
		{"sin text", "SIN", []types.Value{str("x")}, types.TypeError},
		{"sum mixed", "SUM", []types.Value{num(1), str("x")}, types.TypeError},
		{"len number", "LEN", []types.Value{num(1)}, types.TypeError},
		{"abs no args", "ABS", nil, types.FunctionArity},
		{"abs two args", "ABS", []types.Value{num(1), num(2)}, types.FunctionArity},
		{"avg no args", "AVG", nil, types.FunctionArity},
		{"rnd one arg", "RND", []types.Value{num(1)}, types.FunctionArity},
		{"unknown", "FROB", nil, types.UndefinedVariable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Call(nil, tt.fn, tt.args)
			if !errors.Is(err, tt.want) {
				t.Errorf("%s error = %v, want %s", tt.fn, err, tt.want)
			}
		})
	}
}

func TestRndIsSeeded(t *testing.T) {
	r := NewRegistry()
	draw := func(seed int64) []float64 {
		ctx := &Context{Random: NewRandomSource(seed)}
		out := make([]float64, 5)
		for i := range out {
			v, err := r.Call(ctx, "RND", []types.Value{num(10), num(20)})
			if err != nil {
				t.Fatal(err)
			}
			out[i] = v.(types.NumValue).Val
			if out[i] < 10 || out[i] >= 20 {
				t.Errorf("RND(10, 20) = %v, out of range", out[i])
			}
		}
		return out
	}

	a, b := draw(42), draw(42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed drew %v and %v", a, b)
		}
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Lookup("sqr"); !ok {
		t.Error("Lookup(sqr) failed")
	}
	if len(r.Names()) != 30 {
		t.Errorf("Names() has %d entries, want 30", len(r.Names()))
	}
}
