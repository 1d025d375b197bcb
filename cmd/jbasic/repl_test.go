package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jbasic/config"
)

func newTestSession(out *bytes.Buffer) *session {
	seed := int64(1)
	cfg := config.Default()
	cfg.Seed = &seed
	return newSession(options{cfg: cfg}, out, strings.NewReader(""))
}

func TestSessionRunAndList(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(&out)
	for _, line := range []string{"10 print 1", "20 print 2", "10 print 3", "run"} {
		if s.handle(line) {
			t.Fatalf("handle(%q) quit", line)
		}
	}
	if out.String() != "3\n2\n" {
		t.Errorf("RUN output = %q", out.String())
	}

	out.Reset()
	s.handle("LIST")
	if out.String() != "10 PRINT 3\n20 PRINT 2\n" {
		t.Errorf("LIST output = %q", out.String())
	}

	out.Reset()
	s.handle("NEW")
	s.handle("RUN")
	if out.String() != "" {
		t.Errorf("RUN after NEW = %q", out.String())
	}
}

func TestSessionErrors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"parse error", []string{"PRINT (", "RUN"}, "Error at [1,"},
		{"runtime error", []string{"PRINT X", "RUN"}, "Variable X is not defined"},
		{"traceback", []string{"SUB F()", "PRINT X", "END SUB", "CALL F()", "RUN"}, "... called from SUB F, line 4"},
		{"unknown command", []string{":nope"}, "unknown command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			s := newTestSession(&out)
			for _, line := range tt.lines {
				s.handle(line)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output = %q, want it to contain %q", out.String(), tt.want)
			}
		})
	}
}

func TestSessionQuit(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(&out)
	if !s.handle(":quit") {
		t.Error(":quit did not stop the session")
	}
}

func TestLineNumber(t *testing.T) {
	tests := map[string]string{
		"10 PRINT 1": "10",
		"10":         "10",
		"PRINT 10":   "",
		"10A = 1":    "",
		"loop: X=1":  "",
	}
	for line, want := range tests {
		if got := lineNumber(line); got != want {
			t.Errorf("lineNumber(%q) = %q, want %q", line, got, want)
		}
	}
}

func TestRunExitCodes(t *testing.T) {
	dir := t.TempDir()
	write := func(name, src string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"ok", []string{"-seed", "3", write("ok.bas", "X = 1\n")}, exitOK},
		{"runtime error", []string{write("bad.bas", "PRINT Y\n")}, exitRuntime},
		{"parse error", []string{write("syntax.bas", "PRINT (\n")}, exitSetup},
		{"missing file", []string{filepath.Join(dir, "none.bas")}, exitSetup},
		{"bad config", []string{"-config", write("c.yaml", "max_call_depth: 0\n"), write("ok2.bas", "X = 1\n")}, exitSetup},
		{"step limit", []string{"-max-steps", "10", write("loop.bas", "10 GOTO 10\n")}, exitRuntime},
		{"bad locale", []string{"-locale", "!!", write("ok3.bas", "X = 1\n")}, exitSetup},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := run(tt.args); got != tt.want {
				t.Errorf("run(%v) = %d, want %d", tt.args, got, tt.want)
			}
		})
	}
}
