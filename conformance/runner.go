package conformance

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"jbasic/builtins"
	"jbasic/eval"
	"jbasic/format"
	"jbasic/parser"
	"jbasic/types"
)

// ParseErrorTag is the expected error for programs that do not parse
const ParseErrorTag = "ParseError"

// DefaultSeed seeds RND for tests that do not pick their own
const DefaultSeed = 1

// TestResult represents the outcome of running a single test
type TestResult struct {
	Test       LoadedTest
	Passed     bool
	Skipped    bool
	SkipReason string
	Output     string
	Error      error
}

// Runner executes conformance tests, each in a fresh evaluator
type Runner struct {
	formatter format.Formatter
}

// NewRunner creates a runner using plain number formatting
func NewRunner() *Runner {
	return &Runner{formatter: format.Plain{}}
}

// Run executes a single test case
func (r *Runner) Run(test LoadedTest) TestResult {
	if skipped, reason := test.Test.IsSkipped(); skipped {
		return TestResult{
			Test:       test,
			Skipped:    true,
			SkipReason: reason,
		}
	}
	if test.Test.Expect.IsEmpty() {
		return TestResult{Test: test, Error: fmt.Errorf("no expectation specified")}
	}

	prog, err := parser.Parse(test.Test.Program)
	if err != nil {
		return r.result(test, "", err)
	}

	seed := int64(DefaultSeed)
	if test.Test.Seed != nil {
		seed = *test.Test.Seed
	}

	var out bytes.Buffer
	e := eval.New(prog,
		eval.WithOutput(&out),
		eval.WithInput(strings.NewReader(test.Test.Input)),
		eval.WithFormatter(r.formatter),
		eval.WithRandom(builtins.NewRandomSource(seed)),
		eval.WithLimits(test.Test.MaxCallDepth, test.Test.MaxSteps),
		eval.WithClearSequence(""),
	)
	runErr := e.Run()
	return r.result(test, out.String(), runErr)
}

func (r *Runner) result(test LoadedTest, output string, runErr error) TestResult {
	err := checkExpectation(test.Test.Expect, output, runErr)
	return TestResult{
		Test:   test,
		Passed: err == nil,
		Output: output,
		Error:  err,
	}
}

// RunAll executes all loaded tests
func (r *Runner) RunAll(tests []LoadedTest) []TestResult {
	results := make([]TestResult, len(tests))
	for i, test := range tests {
		results[i] = r.Run(test)
	}
	return results
}

// SummaryStats computes statistics from test results
type SummaryStats struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

// ComputeStats generates statistics from test results
func ComputeStats(results []TestResult) SummaryStats {
	stats := SummaryStats{Total: len(results)}
	for _, r := range results {
		if r.Skipped {
			stats.Skipped++
		} else if r.Passed {
			stats.Passed++
		} else {
			stats.Failed++
		}
	}
	return stats
}

// FormatStats returns a human-readable summary
func FormatStats(stats SummaryStats) string {
	return fmt.Sprintf("%d passed, %d failed, %d skipped (%d total)",
		stats.Passed, stats.Failed, stats.Skipped, stats.Total)
}

// checkExpectation compares a run's output and error with the expectation.
// It returns nil when they match.
func checkExpectation(expect Expectation, output string, runErr error) error {
	if expect.Output != nil && output != *expect.Output {
		return fmt.Errorf("expected output %q, got %q", *expect.Output, output)
	}
	if expect.Contains != "" && !strings.Contains(output, expect.Contains) {
		return fmt.Errorf("expected output containing %q, got %q", expect.Contains, output)
	}

	if expect.Error == "" {
		if runErr != nil {
			return fmt.Errorf("unexpected error: %v", runErr)
		}
		return nil
	}
	if runErr == nil {
		return fmt.Errorf("expected error %s, program ran to completion", expect.Error)
	}

	var message string
	var line int
	var perr *parser.ParseError
	var rerr *types.Error
	switch {
	case errors.As(runErr, &perr):
		if expect.Error != ParseErrorTag {
			return fmt.Errorf("expected error %s, got parse error: %v", expect.Error, runErr)
		}
		message, line = perr.Message, perr.Pos.Line
	case errors.As(runErr, &rerr):
		kind, ok := types.ErrorKindFromString(expect.Error)
		if !ok {
			return fmt.Errorf("unknown error kind: %s", expect.Error)
		}
		if rerr.Kind != kind {
			return fmt.Errorf("expected error %s, got %s: %v", expect.Error, rerr.Kind, runErr)
		}
		message, line = rerr.Message, rerr.Line
	default:
		return fmt.Errorf("expected error %s, got %v", expect.Error, runErr)
	}

	if expect.Match != "" {
		re, err := regexp.Compile(expect.Match)
		if err != nil {
			return fmt.Errorf("bad match pattern %q: %w", expect.Match, err)
		}
		if !re.MatchString(message) {
			return fmt.Errorf("error message %q does not match %q", message, expect.Match)
		}
	}
	if expect.Line != 0 && line != expect.Line {
		return fmt.Errorf("expected error at line %d, got line %d", expect.Line, line)
	}
	return nil
}
