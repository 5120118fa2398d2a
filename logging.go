// Copyright (c) 2012 by Christoph Hack <christoph@tux21b.org>
// All rights reserved. Distributed under the Simplified BSD License.

package chesscore

import "go.uber.org/zap"

// LogLevel orders the logging channels the core emits diagnostics on.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger is the collaborator interface the core emits diagnostics
// through (§6). The core never aborts across its API boundary — it logs
// and returns a sentinel value instead. Implementations must be safe to
// call from a single goroutine only, matching the core's own concurrency
// model (§5).
type Logger interface {
	Error(msg string, fields ...any)
	Warn(msg string, fields ...any)
	Info(msg string, fields ...any)
	Debug(msg string, fields ...any)
}

// nopLogger discards everything. It is the Board/Game default so the
// core never requires a configured logger to function.
type nopLogger struct{}

func (nopLogger) Error(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Debug(string, ...any) {}

// NewNopLogger returns a Logger that discards all messages.
func NewNopLogger() Logger {
	return nopLogger{}
}

// zapLogger adapts a *zap.Logger, applying a print threshold below which
// messages are dropped.
type zapLogger struct {
	l         *zap.Logger
	threshold LogLevel
}

// NewZapLogger wraps z as a Logger, suppressing messages below threshold.
func NewZapLogger(z *zap.Logger, threshold LogLevel) Logger {
	return &zapLogger{l: z, threshold: threshold}
}

func toZapFields(fields []any) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		out = append(out, zap.Any(key, fields[i+1]))
	}
	return out
}

func (z *zapLogger) Error(msg string, fields ...any) {
	if z.threshold > LevelError {
		return
	}
	z.l.Error(msg, toZapFields(fields)...)
}

func (z *zapLogger) Warn(msg string, fields ...any) {
	if z.threshold > LevelWarn {
		return
	}
	z.l.Warn(msg, toZapFields(fields)...)
}

func (z *zapLogger) Info(msg string, fields ...any) {
	if z.threshold > LevelInfo {
		return
	}
	z.l.Info(msg, toZapFields(fields)...)
}

func (z *zapLogger) Debug(msg string, fields ...any) {
	if z.threshold > LevelDebug {
		return
	}
	z.l.Debug(msg, toZapFields(fields)...)
}
