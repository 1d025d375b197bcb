package conformance

// TestSuite represents a complete YAML test file
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Tests       []TestCase `yaml:"tests"`
}

// TestCase represents a single program run within a suite
type TestCase struct {
	Name         string      `yaml:"name"`
	Description  string      `yaml:"description,omitempty"`
	Skip         interface{} `yaml:"skip,omitempty"` // bool or string
	Program      string      `yaml:"program"`
	Input        string      `yaml:"input,omitempty"`
	Seed         *int64      `yaml:"seed,omitempty"`
	MaxSteps     int64       `yaml:"max_steps,omitempty"`
	MaxCallDepth int         `yaml:"max_call_depth,omitempty"`
	Expect       Expectation `yaml:"expect"`
}

// Expectation defines what a run must produce
type Expectation struct {
	Output   *string `yaml:"output,omitempty"`   // exact program output
	Contains string  `yaml:"contains,omitempty"` // output substring
	Error    string  `yaml:"error,omitempty"`    // error kind tag, or ParseError
	Match    string  `yaml:"match,omitempty"`    // regex over the error message
	Line     int     `yaml:"line,omitempty"`     // line the error is reported at
}

// IsEmpty reports whether no expectation was given
func (e Expectation) IsEmpty() bool {
	return e.Output == nil && e.Contains == "" && e.Error == "" && e.Match == ""
}

// IsSkipped returns true if this test should be skipped
func (tc *TestCase) IsSkipped() (bool, string) {
	if tc.Skip == nil {
		return false, ""
	}

	switch v := tc.Skip.(type) {
	case bool:
		if v {
			return true, "skipped"
		}
		return false, ""
	case string:
		return true, v
	default:
		return false, ""
	}
}
