package logging

import "github.com/arloliu/parfill/types"

// NopLogger is a no-op logger that discards all log messages.
//
// It is the default logger of a Filler when none is configured.
type NopLogger struct{}

// Compile-time assertion that NopLogger implements Logger.
var _ types.Logger = NopLogger{}

// NewNop creates a new no-op logger.
func NewNop() NopLogger {
	return NopLogger{}
}

// Debug discards the message.
func (NopLogger) Debug(_ /* msg */ string, _ /* keysAndValues */ ...any) {}

// Info discards the message.
func (NopLogger) Info(_ /* msg */ string, _ /* keysAndValues */ ...any) {}

// Warn discards the message.
func (NopLogger) Warn(_ /* msg */ string, _ /* keysAndValues */ ...any) {}

// Error discards the message.
func (NopLogger) Error(_ /* msg */ string, _ /* keysAndValues */ ...any) {}

// Fatal discards the message and does NOT exit.
func (NopLogger) Fatal(_ /* msg */ string, _ /* keysAndValues */ ...any) {}
