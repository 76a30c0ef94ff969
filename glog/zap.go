package glog

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultTimeFormat = "2006-01-02T15:04:05.000Z"

func newZapLogger(c *Config) Logger {
	cfg := withDefaults(c)
	ws, closer := newSink(&cfg)

	atom := zap.NewAtomicLevelAt(cfg.Level)
	core := zapcore.NewCore(newEncoder(&cfg), ws, atom)

	var opts []zap.Option
	if !cfg.DisableCaller {
		opts = append(opts, zap.AddCaller(), zap.AddCallerSkip(cfg.Skip))
	}
	if len(cfg.Fields) != 0 {
		opts = append(opts, zap.Fields(cfg.Fields...))
	}

	return &zapLogger{raw: zap.New(core, opts...), atom: atom, fn: cfg.ContextFn, closer: closer}
}

// withDefaults returns a copy of c with zero values filled in; c itself is not modified.
func withDefaults(c *Config) Config {
	var cfg Config
	if c != nil {
		cfg = *c
	}
	if cfg.Skip <= 0 {
		cfg.Skip = 2
	}
	if cfg.TimeFormat == "" {
		cfg.TimeFormat = defaultTimeFormat
	}
	if cfg.Type == TypeFile || cfg.Type == TypeLumberjack {
		if cfg.MaxSize <= 0 {
			cfg.MaxSize = 100
		}
		if cfg.MaxAge <= 0 {
			cfg.MaxAge = 30
		}
		if cfg.MaxBackups <= 0 {
			cfg.MaxBackups = 3
		}
		if cfg.File == "" {
			cfg.File = defaultFilename()
		}
	}
	return cfg
}

// newEncoder uses one letter keys: T time, L level, N name, C caller, M message, S stack.
func newEncoder(c *Config) zapcore.Encoder {
	ec := zapcore.EncoderConfig{
		TimeKey:          "T",
		LevelKey:         "L",
		NameKey:          "N",
		CallerKey:        "C",
		MessageKey:       "M",
		StacktraceKey:    "S",
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeTime:       zapcore.TimeEncoderOfLayout(c.TimeFormat),
		EncodeDuration:   zapcore.SecondsDurationEncoder,
		EncodeCaller:     zapcore.ShortCallerEncoder,
		EncodeName:       zapcore.FullNameEncoder,
		ConsoleSeparator: c.ConsoleSeparator,
	}
	if c.DisableCaller {
		ec.CallerKey = zapcore.OmitKey
	}
	if c.DisableLevel {
		ec.LevelKey = zapcore.OmitKey
	}
	// colors only on a terminal-bound console
	if c.Type != TypeFile && c.Type != TypeLumberjack && c.Output == nil && c.Format != FormatJson {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if c.Format == FormatJson {
		return zapcore.NewJSONEncoder(ec)
	}
	return zapcore.NewConsoleEncoder(ec)
}

// newSink returns the write target and, for rotated files, the function that releases it.
func newSink(c *Config) (zapcore.WriteSyncer, func() error) {
	switch c.Type {
	case TypeFile, TypeLumberjack:
		if err := mkdirAll(filepath.Dir(c.File)); err != nil {
			log.Printf("make dir for logfile fail: %v, err: %v\n", c.File, err)
		}

		rotated := &lumberjack.Logger{
			Filename:   c.File,
			MaxSize:    c.MaxSize,
			MaxBackups: c.MaxBackups,
			MaxAge:     c.MaxAge,
			Compress:   c.Compress,
		}
		buffered := &zapcore.BufferedWriteSyncer{
			WS:            zapcore.AddSync(rotated),
			FlushInterval: time.Second,
		}
		return buffered, func() error {
			if err := buffered.Stop(); err != nil {
				return err
			}
			return rotated.Close()
		}
	default:
		if c.Output != nil {
			return zapcore.AddSync(c.Output), nil
		}
		return zapcore.Lock(os.Stdout), nil
	}
}

func mkdirAll(path string) error {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil
	}
	return os.MkdirAll(path, 0755)
}

// defaultFilename is /data/logs/<project>/<process>.log, project from GSTRATEGY_PROJECT_NAME.
func defaultFilename() string {
	project := os.Getenv("GSTRATEGY_PROJECT_NAME")
	if project == "" {
		project = "gstrategy"
	}
	return fmt.Sprintf("/data/logs/%s/%s.log", project, filepath.Base(os.Args[0]))
}

type zapLogger struct {
	raw    *zap.Logger
	atom   zap.AtomicLevel
	fn     ContextBuildFunc
	closer func() error
}

func (l *zapLogger) Close() error {
	err := l.raw.Sync()
	if l.closer != nil {
		if cerr := l.closer(); cerr != nil {
			return cerr
		}
	}
	return err
}

func (l *zapLogger) Sync() error {
	return l.raw.Sync()
}

func (l *zapLogger) Enabled(lv Level) bool {
	return l.raw.Core().Enabled(lv)
}

func (l *zapLogger) SetLevel(lv Level) {
	l.atom.SetLevel(lv)
}

func (l *zapLogger) GetLevel() Level {
	return l.atom.Level()
}

// Named and With share the parent's level, SetLevel on either affects both.
func (l *zapLogger) Named(s string) Logger {
	return l.derive(l.raw.Named(s))
}

func (l *zapLogger) With(fields ...Field) Logger {
	return l.derive(l.raw.With(fields...))
}

func (l *zapLogger) derive(raw *zap.Logger) *zapLogger {
	return &zapLogger{raw: raw, atom: l.atom, fn: l.fn}
}

func (l *zapLogger) Log(ctx context.Context, level Level, msg string, fields ...Field) {
	l.doLog(ctx, level, msg, fields...)
}

func (l *zapLogger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.doLog(ctx, DebugLevel, msg, fields...)
}

func (l *zapLogger) Info(ctx context.Context, msg string, fields ...Field) {
	l.doLog(ctx, InfoLevel, msg, fields...)
}

func (l *zapLogger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.doLog(ctx, WarnLevel, msg, fields...)
}

func (l *zapLogger) Error(ctx context.Context, msg string, fields ...Field) {
	l.doLog(ctx, ErrorLevel, msg, fields...)
}

func (l *zapLogger) Debugf(ctx context.Context, format string, args ...interface{}) {
	l.doLogf(ctx, DebugLevel, format, args...)
}

func (l *zapLogger) Infof(ctx context.Context, format string, args ...interface{}) {
	l.doLogf(ctx, InfoLevel, format, args...)
}

func (l *zapLogger) Warnf(ctx context.Context, format string, args ...interface{}) {
	l.doLogf(ctx, WarnLevel, format, args...)
}

func (l *zapLogger) Errorf(ctx context.Context, format string, args ...interface{}) {
	l.doLogf(ctx, ErrorLevel, format, args...)
}

func (l *zapLogger) doLog(ctx context.Context, level Level, msg string, fields ...Field) {
	if ce := l.raw.Check(level, msg); ce != nil {
		ce.Write(l.contextFields(ctx, fields)...)
	}
}

func (l *zapLogger) doLogf(ctx context.Context, level Level, format string, args ...interface{}) {
	if !l.Enabled(level) {
		return
	}
	if ce := l.raw.Check(level, fmt.Sprintf(format, args...)); ce != nil {
		ce.Write(l.contextFields(ctx, nil)...)
	}
}

func (l *zapLogger) contextFields(ctx context.Context, fields []Field) []Field {
	if ctx == nil || l.fn == nil {
		return fields
	}
	return l.fn(ctx, fields)
}
