package trace

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"jbasic/types"
)

func decode(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("bad trace line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestTracerEvents(t *testing.T) {
	var buf bytes.Buffer
	tr := New(true, nil, &buf)

	tr.Statement("PRINT", 3, 0)
	tr.SubCall("Add", []types.Value{types.NewNum(1), types.NewStr("x")}, 1)
	tr.SubReturn("Add", 1)
	tr.Jump("GOTO", "100", 4)
	tr.Error(types.NewError(types.UndefinedLabel, "A label called 7 is not defined"))

	events := decode(t, &buf)
	if len(events) != 5 {
		t.Fatalf("got %d events, want 5: %s", len(events), buf.String())
	}
	if events[0]["kind"] != "PRINT" || events[0]["line"] != float64(3) {
		t.Errorf("statement event = %v", events[0])
	}
	if events[1]["args"] != `1, "x"` {
		t.Errorf("call args = %v", events[1]["args"])
	}
	if events[4]["kind"] != "UndefinedLabel" {
		t.Errorf("error event = %v", events[4])
	}
}

func TestTracerFilters(t *testing.T) {
	var buf bytes.Buffer
	tr := New(true, []string{"Add*"}, &buf)

	tr.SubCall("Add", nil, 1)
	tr.SubCall("AddAll", nil, 1)
	tr.SubCall("Mul", nil, 1)
	tr.Statement("PRINT", 1, 0)

	if got := len(decode(t, &buf)); got != 2 {
		t.Errorf("got %d events, want 2: %s", got, buf.String())
	}
}

func TestDisabledTracer(t *testing.T) {
	var buf bytes.Buffer
	New(false, nil, &buf).Statement("PRINT", 1, 0)

	var nilTracer *Tracer
	nilTracer.Statement("PRINT", 1, 0)
	nilTracer.Error(types.NewError(types.IOError, "x"))

	if buf.Len() != 0 {
		t.Errorf("disabled tracer wrote %q", buf.String())
	}
}

func TestGlobalTracer(t *testing.T) {
	var buf bytes.Buffer
	Init(true, nil, &buf)
	defer Init(false, nil, nil)

	if !Default().IsEnabled() {
		t.Fatal("Default() not enabled after Init")
	}
	Default().Jump("GOSUB", "10", 2)
	if !strings.Contains(buf.String(), `"label":"10"`) {
		t.Errorf("trace output = %q", buf.String())
	}
}
