package testutils

import (
	"fmt"
	"strings"
	"sync"
)

// LogCall is one call captured by RecordingLogger
type LogCall struct {
	Level  string
	Msg    string
	Fields []any
}

// RecordingLogger captures log calls in memory. It satisfies logging.Logger
// without importing it, so logging's own tests can use it.
type RecordingLogger struct {
	mu    sync.Mutex
	calls []LogCall
}

func (r *RecordingLogger) record(level, msg string, fields []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, LogCall{Level: level, Msg: msg, Fields: fields})
}

func (r *RecordingLogger) Debug(msg string, fields ...any) { r.record("DEBUG", msg, fields) }
func (r *RecordingLogger) Info(msg string, fields ...any)  { r.record("INFO", msg, fields) }
func (r *RecordingLogger) Warn(msg string, fields ...any)  { r.record("WARN", msg, fields) }
func (r *RecordingLogger) Error(msg string, fields ...any) { r.record("ERROR", msg, fields) }

// Calls returns a copy of every captured call
func (r *RecordingLogger) Calls() []LogCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]LogCall, len(r.calls))
	copy(out, r.calls)
	return out
}

// ByLevel returns the captured calls at the given level (DEBUG, INFO, WARN, ERROR)
func (r *RecordingLogger) ByLevel(level string) []LogCall {
	var out []LogCall
	for _, c := range r.Calls() {
		if c.Level == level {
			out = append(out, c)
		}
	}
	return out
}

// Find returns the first call whose message contains substr
func (r *RecordingLogger) Find(substr string) (LogCall, bool) {
	for _, c := range r.Calls() {
		if strings.Contains(c.Msg, substr) {
			return c, true
		}
	}
	return LogCall{}, false
}

func (c LogCall) String() string {
	return fmt.Sprintf("[%s] %s %v", c.Level, c.Msg, c.Fields)
}
