package glog

import (
	"context"

	"go.uber.org/atomic"
)

// holder keeps the stored type constant whatever Logger implementation is set.
type holder struct {
	l Logger
}

var global atomic.Value

func init() {
	global.Store(holder{l: New(&Config{Type: TypeConsole, Level: InfoLevel})})
}

func current() Logger {
	return global.Load().(holder).l
}

// SetLogger replaces the global logger, nil is ignored. Safe for concurrent use.
func SetLogger(l Logger) {
	if l != nil {
		global.Store(holder{l: l})
	}
}

// Default returns the global logger.
func Default() Logger {
	return current()
}

func Sync() error { return current().Sync() }
func Close() error { return current().Close() }

func Enabled(lv Level) bool { return current().Enabled(lv) }
func SetLevel(lv Level) { current().SetLevel(lv) }

func Debug(ctx context.Context, msg string, fields ...Field) {
	current().doLog(ctx, DebugLevel, msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	current().doLog(ctx, InfoLevel, msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	current().doLog(ctx, WarnLevel, msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	current().doLog(ctx, ErrorLevel, msg, fields...)
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	current().doLogf(ctx, DebugLevel, format, args...)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	current().doLogf(ctx, InfoLevel, format, args...)
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	current().doLogf(ctx, WarnLevel, format, args...)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	current().doLogf(ctx, ErrorLevel, format, args...)
}
