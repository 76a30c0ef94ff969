package glog

import (
	"context"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is a field in a log message.
type Field = zap.Field

// Level is a logging priority.
type Level = zapcore.Level

const (
	DebugLevel = zap.DebugLevel
	InfoLevel  = zap.InfoLevel
	WarnLevel  = zap.WarnLevel
	ErrorLevel = zap.ErrorLevel
)

// ParseLevel parses debug, info, warn or error, case-insensitively.
func ParseLevel(text string) (Level, error) {
	return zapcore.ParseLevel(text)
}

// Logger is a structured logger, every call takes the caller's context.
type Logger interface {
	Sync() error
	Close() error
	Enabled(lv Level) bool
	Named(s string) Logger
	With(fields ...Field) Logger

	GetLevel() Level
	SetLevel(lv Level)

	Log(ctx context.Context, level Level, msg string, fields ...Field)

	Debug(ctx context.Context, msg string, fields ...Field)
	Info(ctx context.Context, msg string, fields ...Field)
	Warn(ctx context.Context, msg string, fields ...Field)
	Error(ctx context.Context, msg string, fields ...Field)

	Debugf(ctx context.Context, format string, args ...interface{})
	Infof(ctx context.Context, format string, args ...interface{})
	Warnf(ctx context.Context, format string, args ...interface{})
	Errorf(ctx context.Context, format string, args ...interface{})

	// every public call goes through these two, so caller skip is the same everywhere
	doLog(ctx context.Context, level Level, msg string, fields ...Field)
	doLogf(ctx context.Context, level Level, format string, args ...interface{})
}

// ContextBuildFunc extracts fields such as a trace id from ctx.
type ContextBuildFunc func(ctx context.Context, fields []Field) []Field

const (
	TypeConsole    = "console"
	TypeFile       = "file"
	TypeLumberjack = "lumberjack"
)

const (
	FormatJson    = "json"
	FormatConsole = "console"
)

type Config struct {
	Type             string           `json:"type" yaml:"type"`
	Level            Level            `json:"level" yaml:"level"`
	File             string           `json:"file" yaml:"file"`
	Format           string           `json:"format" yaml:"format"`
	TimeFormat       string           `json:"time_format" yaml:"time_format"`
	MaxSize          int              `json:"max_size" yaml:"max_size"` // megabytes
	MaxAge           int              `json:"max_age" yaml:"max_age"`   // days
	MaxBackups       int              `json:"max_backups" yaml:"max_backups"`
	Compress         bool             `json:"compress" yaml:"compress"`
	DisableCaller    bool             `json:"disable_caller" yaml:"disable_caller"`
	DisableLevel     bool             `json:"disable_level" yaml:"disable_level"`
	Skip             int              `json:"skip" yaml:"skip"`
	ConsoleSeparator string           `json:"console_separator" yaml:"console_separator"` // default \t
	Output           io.Writer        `json:"-" yaml:"-"`                                 // console only, default os.Stdout
	ContextFn        ContextBuildFunc `json:"-" yaml:"-"`
	Fields           []Field          `json:"-" yaml:"-"` // attached to every entry, e.g. host or project name
}

func New(c *Config) Logger {
	return newZapLogger(c)
}
