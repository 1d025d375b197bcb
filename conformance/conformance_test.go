package conformance

import (
	"testing"
)

func TestConformance(t *testing.T) {
	tests, err := LoadAllTests()
	if err != nil {
		t.Fatalf("Failed to load tests: %v", err)
	}
	if len(tests) == 0 {
		t.Fatal("No tests loaded")
	}

	runner := NewRunner()
	results := runner.RunAll(tests)
	stats := ComputeStats(results)

	// Group results by file for organized output
	fileGroups := make(map[string][]TestResult)
	var files []string
	for _, result := range results {
		if _, ok := fileGroups[result.Test.File]; !ok {
			files = append(files, result.Test.File)
		}
		fileGroups[result.Test.File] = append(fileGroups[result.Test.File], result)
	}

	for _, file := range files {
		fileResults := fileGroups[file]
		t.Run(file, func(t *testing.T) {
			for _, result := range fileResults {
				result := result
				t.Run(result.Test.Test.Name, func(t *testing.T) {
					if result.Skipped {
						t.Skipf("Skipped: %s", result.SkipReason)
					} else if !result.Passed {
						t.Errorf("Test failed: %v", result.Error)
					}
				})
			}
		})
	}

	t.Logf("\n=== Summary ===\n%s", FormatStats(stats))
}

func TestYAMLParsing(t *testing.T) {
	tests, err := LoadAllTests()
	if err != nil {
		t.Fatalf("YAML parsing failed: %v", err)
	}

	names := make(map[string]bool)
	for i, test := range tests {
		if test.Test.Name == "" {
			t.Errorf("Test %d in %s has no name", i, test.File)
		}
		key := test.File + "/" + test.Test.Name
		if names[key] {
			t.Errorf("Duplicate test name %s", key)
		}
		names[key] = true

		if test.Test.Expect.IsEmpty() {
			t.Errorf("Test %s in %s has no expectation", test.Test.Name, test.File)
		}
		if test.Test.Program == "" {
			t.Errorf("Test %s in %s has no program", test.Test.Name, test.File)
		}
	}

	t.Logf("All %d tests parsed successfully", len(tests))
}

func TestCheckExpectation(t *testing.T) {
	out := "1\n"
	tests := []struct {
		name   string
		expect Expectation
		output string
		pass   bool
	}{
		{"output matches", Expectation{Output: &out}, "1\n", true},
		{"output differs", Expectation{Output: &out}, "2\n", false},
		{"contains", Expectation{Contains: "ell"}, "hello", true},
		{"missing error", Expectation{Error: "UndefinedVariable"}, "", false},
		{"unknown kind", Expectation{Error: "Bogus"}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkExpectation(tt.expect, tt.output, nil)
			if (err == nil) != tt.pass {
				t.Errorf("checkExpectation() = %v, want pass=%v", err, tt.pass)
			}
		})
	}
}

func TestSkip(t *testing.T) {
	runner := NewRunner()
	res := runner.Run(LoadedTest{Test: TestCase{Name: "s", Skip: "not yet", Program: "PRINT 1"}})
	if !res.Skipped || res.SkipReason != "not yet" {
		t.Errorf("Run() = %+v, want skipped", res)
	}
}

// BenchmarkConformance measures a full pass over the suites
func BenchmarkConformance(b *testing.B) {
	tests, err := LoadAllTests()
	if err != nil {
		b.Fatal(err)
	}
	runner := NewRunner()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		runner.RunAll(tests)
	}
}
