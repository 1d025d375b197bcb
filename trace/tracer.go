package trace

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"jbasic/types"
)

// Tracer provides execution tracing for debugging. A nil *Tracer is valid
// and traces nothing.
type Tracer struct {
	enabled bool
	filters []string
	logger  zerolog.Logger
	mu      sync.Mutex
}

// New creates a tracer writing JSON lines to w (stderr when nil)
func New(enabled bool, filters []string, w io.Writer) *Tracer {
	if w == nil {
		w = os.Stderr
	}
	return &Tracer{
		enabled: enabled,
		filters: filters,
		logger:  zerolog.New(w).With().Str("component", "trace").Logger(),
	}
}

// Global tracer instance
var globalTracer *Tracer

// Init initializes the global tracer
func Init(enabled bool, filters []string, w io.Writer) {
	globalTracer = New(enabled, filters, w)
}

// Default returns the global tracer, which may be nil
func Default() *Tracer {
	return globalTracer
}

// IsEnabled returns whether tracing is enabled
func (t *Tracer) IsEnabled() bool {
	return t != nil && t.enabled
}

// matchesFilter checks if a statement kind or subroutine name matches any
// of the filter patterns
func (t *Tracer) matchesFilter(name string) bool {
	if len(t.filters) == 0 {
		return true // No filters = trace everything
	}

	for _, pattern := range t.filters {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

// Statement logs the execution of one statement
func (t *Tracer) Statement(kind string, line, depth int) {
	if !t.IsEnabled() || !t.matchesFilter(kind) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.logger.Log().Str("event", "stmt").Str("kind", kind).Int("line", line).Int("depth", depth).Send()
}

// SubCall logs a subroutine call with its arguments
func (t *Tracer) SubCall(name string, args []types.Value, depth int) {
	if !t.IsEnabled() || !t.matchesFilter(name) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	argStrs := make([]string, len(args))
	for i, arg := range args {
		argStrs[i] = arg.String()
	}
	t.logger.Log().Str("event", "call").Str("sub", name).
		Str("args", strings.Join(argStrs, ", ")).Int("depth", depth).Send()
}

// SubReturn logs the return from a subroutine
func (t *Tracer) SubReturn(name string, depth int) {
	if !t.IsEnabled() || !t.matchesFilter(name) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.logger.Log().Str("event", "return").Str("sub", name).Int("depth", depth).Send()
}

// Jump logs a GOTO or GOSUB transfer to a label
func (t *Tracer) Jump(kind, label string, index int) {
	if !t.IsEnabled() || !t.matchesFilter(kind) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.logger.Log().Str("event", "jump").Str("kind", kind).Str("label", label).Int("target", index).Send()
}

// Error logs the error that halted the program
func (t *Tracer) Error(err error) {
	if !t.IsEnabled() || err == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	ev := t.logger.Log().Str("event", "error")
	if kind, ok := types.KindOf(err); ok {
		ev = ev.Str("kind", kind.String())
	}
	ev.Err(err).Send()
}
