package parser

import (
	"strings"
	"testing"

	"jbasic/types"
)

// sexpr renders an expression tree in prefix form for structural checks
func sexpr(e Expr) string {
	switch n := e.(type) {
	case *LiteralExpr:
		return n.Raw
	case *IdentifierExpr:
		return n.Name
	case *ParenExpr:
		return sexpr(n.Expr)
	case *UnaryExpr:
		return "(" + strings.TrimSpace(unparseOp(n.Operator)) + " " + sexpr(n.Operand) + ")"
	case *BinaryExpr:
		return "(" + unparseOp(n.Operator) + " " + sexpr(n.Left) + " " + sexpr(n.Right) + ")"
	case *CallExpr:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = sexpr(a)
		}
		return n.Name + "[" + strings.Join(args, " ") + "]"
	}
	return "?"
}

func TestParseExpressionPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"(1 + 2) * 3", "(* (+ 1 2) 3)"},
		{"1 - 2 - 3", "(- (- 1 2) 3)"},
		{"2 ^ 3 ^ 2", "(^ 2 (^ 3 2))"},
		{"-2 ^ 2", "(- (^ 2 2))"},
		{"2 * -3", "(* 2 (- 3))"},
		{"X MOD 3 + 1", "(+ (MOD X 3) 1)"},
		{"NOT A = B", "(NOT (= A B))"},
		{"A OR B AND C", "(OR A (AND B C))"},
		{"A < B AND C <> D", "(AND (< A B) (<> C D))"},
		{`F(1, A$) + G()`, "(+ F[1 A$] G[])"},
		{`"a" + "b"`, `(+ "a" "b")`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := NewParser(tt.input)
			expr, err := p.ParseExpression(PREC_LOWEST)
			if err != nil {
				t.Fatalf("ParseExpression(%q) error: %v", tt.input, err)
			}
			if got := sexpr(expr); got != tt.want {
				t.Errorf("ParseExpression(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLabels(t *testing.T) {
	src := "10 PRINT 1\nstart: PRINT 2\n20\nPRINT 3\nlast:\n"
	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if len(prog.Statements) != 3 {
		t.Fatalf("got %d statements, want 3", len(prog.Statements))
	}
	want := map[string]int{"10": 0, "start": 1, "20": 2, "last": 3}
	if len(prog.Labels) != len(want) {
		t.Fatalf("labels = %v, want %v", prog.Labels, want)
	}
	for label, idx := range want {
		if got, ok := prog.Labels[label]; !ok || got != idx {
			t.Errorf("label %s -> %d (present %v), want %d", label, got, ok, idx)
		}
	}
	if prog.Source != src {
		t.Error("Program.Source does not hold the original text")
	}
	if label, ok := prog.LabelAt(1); !ok || label != "start" {
		t.Errorf("LabelAt(1) = %q, %v", label, ok)
	}
}

func TestParseKeepsMalformedNumericLabel(t *testing.T) {
	prog, err := Parse("1.5 PRINT 1\nGOTO 1.5\n")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if _, ok := prog.Labels["1.5"]; !ok {
		t.Fatalf("labels = %v, want 1.5 recorded as written", prog.Labels)
	}
	if g, ok := prog.Statements[1].(*GotoStmt); !ok || g.Target != "1.5" {
		t.Fatalf("statement 1 = %#v, want GOTO 1.5", prog.Statements[1])
	}
}

func TestParseStatements(t *testing.T) {
	t.Run("for with step", func(t *testing.T) {
		prog := mustParse(t, "FOR I = 10 TO 1 STEP -2\nPRINT I\nNEXT I\n")
		f, ok := prog.Statements[0].(*ForStmt)
		if !ok {
			t.Fatalf("got %T, want *ForStmt", prog.Statements[0])
		}
		if f.Var != "I" || f.Step == nil || len(f.Body) != 1 {
			t.Errorf("ForStmt = %+v", f)
		}
		if got := sexpr(f.Step); got != "(- 2)" {
			t.Errorf("step = %s, want (- 2)", got)
		}
	})

	t.Run("do loop until", func(t *testing.T) {
		prog := mustParse(t, "DO\nX = X + 1\nLOOP UNTIL X > 3\n")
		d := prog.Statements[0].(*DoStmt)
		if !d.PostTest || !d.Until || d.Condition == nil {
			t.Errorf("DoStmt = %+v, want post-test UNTIL", d)
		}
	})

	t.Run("do while pretest", func(t *testing.T) {
		prog := mustParse(t, "DO WHILE X < 3\nX = X + 1\nLOOP\n")
		d := prog.Statements[0].(*DoStmt)
		if d.PostTest || d.Until || d.Condition == nil {
			t.Errorf("DoStmt = %+v, want pre-test WHILE", d)
		}
	})

	t.Run("while end while", func(t *testing.T) {
		prog := mustParse(t, "WHILE X < 3\nX = X + 1\nEND WHILE\n")
		if _, ok := prog.Statements[0].(*WhileStmt); !ok {
			t.Fatalf("got %T, want *WhileStmt", prog.Statements[0])
		}
	})

	t.Run("block if", func(t *testing.T) {
		prog := mustParse(t, "IF X = 1 THEN\nPRINT 1\nELSEIF X = 2 THEN\nPRINT 2\nELIF X = 3 THEN\nPRINT 3\nELSE\nPRINT 4\nEND IF\n")
		s := prog.Statements[0].(*IfStmt)
		if s.SingleLine || len(s.ElseIfs) != 2 || len(s.Else) != 1 {
			t.Errorf("IfStmt = %+v", s)
		}
	})

	t.Run("single line if", func(t *testing.T) {
		prog := mustParse(t, "IF X > 1 THEN 100 ELSE PRINT \"no\"\n100 END\n")
		s := prog.Statements[0].(*IfStmt)
		if !s.SingleLine {
			t.Fatal("expected single-line IF")
		}
		if g, ok := s.Body[0].(*GotoStmt); !ok || g.Target != "100" {
			t.Errorf("THEN branch = %#v, want GOTO 100", s.Body[0])
		}
		if _, ok := s.Else[0].(*PrintStmt); !ok {
			t.Errorf("ELSE branch = %T, want *PrintStmt", s.Else[0])
		}
	})

	t.Run("gosub label and gosub call", func(t *testing.T) {
		prog := mustParse(t, "GOSUB 100\nGOSUB Add(1, 2)\nCALL Greet\n100 RETURN\n")
		if g, ok := prog.Statements[0].(*GosubStmt); !ok || g.Target != "100" {
			t.Errorf("stmt 0 = %#v", prog.Statements[0])
		}
		c, ok := prog.Statements[1].(*CallStmt)
		if !ok || c.Name != "Add" || len(c.Args) != 2 || c.Keyword != TOKEN_GOSUB {
			t.Errorf("stmt 1 = %#v", prog.Statements[1])
		}
		c, ok = prog.Statements[2].(*CallStmt)
		if !ok || c.Name != "Greet" || len(c.Args) != 0 {
			t.Errorf("stmt 2 = %#v", prog.Statements[2])
		}
	})

	t.Run("sub definition", func(t *testing.T) {
		prog := mustParse(t, "SUB Add(a, b)\nPRINT a + b\nEND SUB\n")
		s := prog.Statements[0].(*SubStmt)
		if s.Name != "Add" || len(s.Params) != 2 || s.Params[1] != "b" || len(s.Body) != 1 {
			t.Errorf("SubStmt = %+v", s)
		}
	})

	t.Run("select case", func(t *testing.T) {
		prog := mustParse(t, "SELECT CASE X\nCASE 1, 2\nPRINT \"low\"\nCASE \"a\"\nPRINT \"a\"\nCASE ELSE\nPRINT \"other\"\nEND SELECT\n")
		s := prog.Statements[0].(*SelectStmt)
		if len(s.Cases) != 2 || len(s.Cases[0].Values) != 2 || !s.HasElse {
			t.Errorf("SelectStmt = %+v", s)
		}
	})

	t.Run("data with negative numbers", func(t *testing.T) {
		prog := mustParse(t, "DATA 5, -4, \"x\"\n")
		d := prog.Statements[0].(*DataStmt)
		if len(d.Values) != 3 {
			t.Fatalf("got %d values, want 3", len(d.Values))
		}
		if !d.Values[1].Value.Equal(types.NewNum(-4)) {
			t.Errorf("second value = %v, want -4", d.Values[1].Value)
		}
	})

	t.Run("dim several arrays", func(t *testing.T) {
		prog := mustParse(t, "DIM A(3), B(2, 3)\n")
		d := prog.Statements[0].(*DimStmt)
		if len(d.Decls) != 2 || len(d.Decls[1].Sizes) != 2 {
			t.Errorf("DimStmt = %+v", d)
		}
	})

	t.Run("array element assignment", func(t *testing.T) {
		prog := mustParse(t, "A(1, 2) = 5\n")
		l := prog.Statements[0].(*LetStmt)
		if c, ok := l.Target.(*CallExpr); !ok || c.Name != "A" || len(c.Args) != 2 {
			t.Errorf("target = %#v", l.Target)
		}
		if !l.Implicit {
			t.Error("expected implicit LET")
		}
	})

	t.Run("input with prompt", func(t *testing.T) {
		prog := mustParse(t, "INPUT \"Name?\", N$\nINPUT X\n")
		in := prog.Statements[0].(*InputStmt)
		if in.Prompt == nil || in.Target.(*IdentifierExpr).Name != "N$" {
			t.Errorf("InputStmt = %+v", in)
		}
		if prog.Statements[1].(*InputStmt).Prompt != nil {
			t.Error("INPUT X should have no prompt")
		}
	})
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"unterminated for", "FOR I = 1 TO 3\nPRINT I\n", "unexpected end of input in FOR block"},
		{"mismatched next", "FOR I = 1 TO 3\nNEXT J\n", "NEXT J does not match FOR I"},
		{"stray end if", "END IF\n", "END IF without matching IF"},
		{"trailing tokens", "PRINT 1 2\n", "unexpected number 2 after statement"},
		{"goto without label", "GOTO\n", "expected label after GOTO"},
		{"label in block", "IF 1 THEN\n10 PRINT 1\nEND IF\n", "labels are only allowed on top-level statements"},
		{"duplicate label", "10 PRINT 1\n10 PRINT 2\n", "duplicate label 10"},
		{"double test", "DO WHILE 1\nLOOP UNTIL 2\n", "cannot test a condition at both ends"},
		{"missing assignment", "X + 1\n", "expected =, got +"},
		{"bad data", "DATA X\n", "DATA values must be literals"},
		{"duplicate parameter", "SUB F(a, a)\nEND SUB\n", "duplicate parameter a"},
		{"case else not last", "SELECT CASE 1\nCASE ELSE\nCASE 1\nEND SELECT\n", "CASE after CASE ELSE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error containing %q", tt.input, tt.message)
			}
			if _, ok := err.(*ParseError); !ok {
				t.Errorf("error type = %T, want *ParseError", err)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.message)
			}
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse("PRINT 1\nPRINT )\n")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(err.Error(), "Error at [2, 7]:") {
		t.Errorf("error = %q, want position [2, 7]", err.Error())
	}
}

func mustParse(t *testing.T, src string) *Program {
	t.Helper()
	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", src, err)
	}
	return prog
}
