package logger

import "context"

// NoopLogger satisfies the small Info/Error logger interfaces used by
// platform helpers when no logger is configured.
type NoopLogger struct{}

func (NoopLogger) Info(context.Context, string, ...Field)  {}
func (NoopLogger) Error(context.Context, string, ...Field) {}
