package types

// Logger is the key/value logging sink of a Filler.
//
// Messages are a constant string followed by alternating key-value pairs,
// the calling convention of log/slog, zap's SugaredLogger and logrus
// adapters alike. What the filler emits per level:
//   - Debug: every fill state transition
//   - Info: one line per completed fill (run ID, mode, length, workers, duration)
//   - Warn: failed tasks, failing hooks, suspicious configuration
//   - Error: one line per failed fill
//
// Fatal is never called by the library; it exists for harness code.
// Worker goroutines call Warn concurrently, so implementations must be
// thread-safe.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)

	// Fatal logs and terminates the process. No-op and recording
	// implementations do not exit.
	Fatal(msg string, keysAndValues ...any)
}
