package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"jbasic/eval"
	"jbasic/parser"
)

const (
	banner      = "jbasic. Enter program lines, then RUN. LIST, NEW and :quit are also available."
	prompt      = "] "
	historyFile = ".jbasic_history"
)

// session accumulates program lines typed at the prompt
type session struct {
	lines []string
	opts  options
	out   io.Writer
	in    io.Reader
}

func newSession(opts options, out io.Writer, in io.Reader) *session {
	return &session{opts: opts, out: out, in: in}
}

// handle processes one line of input and reports whether the REPL should stop
func (s *session) handle(line string) (quit bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, ":") {
		switch strings.ToLower(trimmed) {
		case ":quit", ":q":
			return true
		default:
			fmt.Fprintln(s.out, "unknown command. Type :quit to exit.")
		}
		return false
	}

	switch strings.ToUpper(trimmed) {
	case "RUN":
		s.run()
	case "LIST":
		s.list()
	case "NEW":
		s.lines = nil
	default:
		s.add(trimmed)
	}
	return false
}

// add appends a line, replacing an earlier line with the same number
func (s *session) add(line string) {
	if n := lineNumber(line); n != "" {
		for i, old := range s.lines {
			if lineNumber(old) == n {
				s.lines[i] = line
				return
			}
		}
	}
	s.lines = append(s.lines, line)
}

func (s *session) source() string {
	if len(s.lines) == 0 {
		return ""
	}
	return strings.Join(s.lines, "\n") + "\n"
}

func (s *session) parse() (*parser.Program, bool) {
	prog, err := parser.Parse(s.source())
	if err != nil {
		fmt.Fprintln(s.out, err)
		return nil, false
	}
	return prog, true
}

func (s *session) run() {
	prog, ok := s.parse()
	if !ok {
		return
	}
	opts, err := evalOptions(s.opts.cfg, s.out, s.in)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	if err := eval.New(prog, opts...).Run(); err != nil {
		reportRuntime(s.out, err)
	}
}

func (s *session) list() {
	prog, ok := s.parse()
	if !ok {
		return
	}
	fmt.Fprint(s.out, parser.Unparse(prog))
}

// lineNumber returns the leading numeric label of a line, if any
func lineNumber(line string) string {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 0 || (i < len(line) && line[i] != ' ' && line[i] != '\t') {
		return ""
	}
	return line[:i]
}

func repl(opts options) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	s := newSession(opts, os.Stdout, os.Stdin)
	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return exitOK
		}
		if err != nil {
			log.Error().Err(err).Msg("Failed to read line")
			return exitRuntime
		}
		ln.AppendHistory(line)
		if s.handle(line) {
			return exitOK
		}
	}
}
