package logging

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/arloliu/parfill/types"
)

// Entry is one message captured by a Recorder.
type Entry struct {
	Level  string
	Msg    string
	Fields map[string]any
}

// Recorder is a types.Logger that keeps every message in memory.
//
// It is safe for concurrent use. When created with a testing.TB, messages
// are also echoed through t.Logf so they appear in verbose test output.
type Recorder struct {
	tb testing.TB

	mu      sync.Mutex
	entries []Entry
}

// Compile-time assertion that Recorder implements Logger.
var _ types.Logger = (*Recorder)(nil)

// NewRecorder creates a recording logger.
//
// Parameters:
//   - tb: Optional test handle for echoing messages (may be nil)
//
// Returns:
//   - *Recorder: Empty recorder
//
// Example:
//
//	func TestSomething(t *testing.T) {
//	    rec := logging.NewRecorder(t)
//	    f, _ := parfill.NewFiller(&cfg, src, parfill.WithLogger(rec))
//	    ...
//	    require.True(t, rec.Has("INFO", "fill completed"))
//	}
func NewRecorder(tb testing.TB) *Recorder {
	return &Recorder{tb: tb}
}

// Debug records a debug-level message.
func (r *Recorder) Debug(msg string, keysAndValues ...any) {
	r.record("DEBUG", msg, keysAndValues)
}

// Info records an info-level message.
func (r *Recorder) Info(msg string, keysAndValues ...any) {
	r.record("INFO", msg, keysAndValues)
}

// Warn records a warning-level message.
func (r *Recorder) Warn(msg string, keysAndValues ...any) {
	r.record("WARN", msg, keysAndValues)
}

// Error records an error-level message.
func (r *Recorder) Error(msg string, keysAndValues ...any) {
	r.record("ERROR", msg, keysAndValues)
}

// Fatal records the message and fails the test if a testing.TB was given.
func (r *Recorder) Fatal(msg string, keysAndValues ...any) {
	r.record("FATAL", msg, keysAndValues)
	if r.tb != nil {
		r.tb.Fatalf("FATAL: %s %s", msg, formatKeyValues(keysAndValues))
	}
}

// Entries returns a copy of every recorded message in order.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Entry(nil), r.entries...)
}

// Has reports whether a message with the given level and text was recorded.
func (r *Recorder) Has(level, msg string) bool {
	for _, e := range r.Entries() {
		if e.Level == level && e.Msg == msg {
			return true
		}
	}

	return false
}

func (r *Recorder) record(level, msg string, keysAndValues []any) {
	fields := make(map[string]any, len(keysAndValues)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		if i+1 < len(keysAndValues) {
			fields[key] = keysAndValues[i+1]
		} else {
			fields[key] = "<missing>"
		}
	}

	r.mu.Lock()
	r.entries = append(r.entries, Entry{Level: level, Msg: msg, Fields: fields})
	r.mu.Unlock()

	if r.tb != nil && level != "FATAL" {
		r.tb.Logf("%s: %s %s", level, msg, formatKeyValues(keysAndValues))
	}
}

// formatKeyValues formats key-value pairs for logging.
func formatKeyValues(keysAndValues []any) string {
	if len(keysAndValues) == 0 {
		return ""
	}

	var b strings.Builder
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 < len(keysAndValues) {
			fmt.Fprintf(&b, "%v=%v ", keysAndValues[i], keysAndValues[i+1])
		} else {
			fmt.Fprintf(&b, "%v=<missing> ", keysAndValues[i])
		}
	}

	return b.String()
}
