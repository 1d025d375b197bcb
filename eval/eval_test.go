package eval

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"jbasic/builtins"
	"jbasic/parser"
	"jbasic/types"
)

// run parses and runs src with captured output, empty input and a fixed seed
func run(t *testing.T, src string, opts ...Option) (string, *Evaluator, error) {
	t.Helper()
	prog, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	var out bytes.Buffer
	base := []Option{
		WithOutput(&out),
		WithInput(strings.NewReader("")),
		WithRandom(builtins.NewRandomSource(1)),
	}
	e := New(prog, append(base, opts...)...)
	err = e.Run()
	return out.String(), e, err
}

// Helper to parse and evaluate a single expression
func evalExpr(t *testing.T, input string) (types.Value, error) {
	t.Helper()
	expr, err := parser.NewParser(input).ParseExpression(0)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	e := New(&parser.Program{})
	return e.Eval(expr)
}

func TestEvalExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected types.Value
	}{
		{"42", types.NewNum(42)},
		{`"hello"`, types.NewStr("hello")},
		{"1 + 2 * 3", types.NewNum(7)},
		{"(1 + 2) * 3", types.NewNum(9)},
		{"7 / 2", types.NewNum(3.5)},
		{"10 - 4 - 3", types.NewNum(3)},
		{"2 ^ 3 ^ 2", types.NewNum(512)},
		{"-2 ^ 2", types.NewNum(-4)},
		{"10 MOD 3", types.NewNum(1)},
		{"-7 MOD 3", types.NewNum(-1)},
		{"+5", types.NewNum(5)},
		{`"foo" + "bar"`, types.NewStr("foobar")},
		{"1 = 1", types.NewNum(1)},
		{"1 <> 1", types.NewNum(0)},
		{`"a" = "A"`, types.NewNum(0)},
		{`"a" = 1`, types.NewNum(0)},
		{`"abc" < "abd"`, types.NewNum(1)},
		{"3 >= 3", types.NewNum(1)},
		{"2 > 3", types.NewNum(0)},
		{"1 AND 0", types.NewNum(0)},
		{"1 OR 0", types.NewNum(1)},
		{"NOT 0", types.NewNum(1)},
		{"NOT 1 = 2", types.NewNum(1)},
		{"SQR(16) + ABS(-1)", types.NewNum(5)},
		{`LEN("abc")`, types.NewNum(3)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := evalExpr(t, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.expected) {
				t.Errorf("%s = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDivisionByZero(t *testing.T) {
	out, _, err := run(t, "PRINT 1 / 0\nPRINT -1 / 0\nPRINT 0 / 0\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out != "Infinity\n-Infinity\nNaN\n" {
		t.Errorf("output = %q", out)
	}
}

func TestEvalTypeErrors(t *testing.T) {
	tests := []struct {
		input string
		op    string
	}{
		{`"a" + 1`, "+"},
		{`1 + "a"`, "+"},
		{`"a" - "b"`, "-"},
		{`"a" * 2`, "*"},
		{`2 / "a"`, "/"},
		{`"x" ^ 2`, "^"},
		{`1 < "a"`, "<"},
		{`"a" AND 1`, "AND"},
		{`-"a"`, "-"},
		{`NOT "a"`, "NOT"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := evalExpr(t, tt.input)
			if !errors.Is(err, types.TypeError) {
				t.Fatalf("%s error = %v, want Type", tt.input, err)
			}
			var rerr *types.Error
			errors.As(err, &rerr)
			if rerr.Operator != tt.op {
				t.Errorf("Operator = %q, want %q", rerr.Operator, tt.op)
			}
		})
	}
}

func TestTypeErrorNamesOperands(t *testing.T) {
	_, err := evalExpr(t, `"a" + 1`)
	var rerr *types.Error
	if !errors.As(err, &rerr) {
		t.Fatalf("error = %v", err)
	}
	if rerr.Message != "Type mismatch: cannot apply + to TEXT and NUMBER" {
		t.Errorf("Message = %q", rerr.Message)
	}
	if len(rerr.Operands) != 2 || rerr.Operands[0] != types.TYPE_STR || rerr.Operands[1] != types.TYPE_NUM {
		t.Errorf("Operands = %v", rerr.Operands)
	}
}

func TestEvalNameErrors(t *testing.T) {
	tests := []struct {
		input string
		want  types.ErrorKind
	}{
		{"X", types.UndefinedVariable},
		{"FOO(1)", types.UndefinedVariable},
		{"SIN(1, 2)", types.FunctionArity},
		{"MAX()", types.FunctionArity},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := evalExpr(t, tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("%s error = %v, want %s", tt.input, err, tt.want)
			}
		})
	}
}

func TestAssignThenRead(t *testing.T) {
	values := []types.Value{
		types.NewNum(3.25),
		types.NewNum(-0.5),
		types.NewStr(""),
		types.NewStr(`say "hi"`),
	}
	for _, v := range values {
		t.Run(v.String(), func(t *testing.T) {
			e := New(&parser.Program{})
			if err := e.assign(&parser.IdentifierExpr{Name: "V"}, v); err != nil {
				t.Fatal(err)
			}
			got, err := e.Eval(&parser.IdentifierExpr{Name: "V"})
			if err != nil {
				t.Fatal(err)
			}
			if got.Type() != v.Type() || !got.Equal(v) {
				t.Errorf("read back %v, want %v", got, v)
			}
		})
	}
}
