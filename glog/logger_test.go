package glog

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ctxKey string

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		m := map[string]interface{}{}
		require.NoError(t, json.Unmarshal([]byte(line), &m), line)
		entries = append(entries, m)
	}
	return entries
}

func TestConsole(t *testing.T) {
	c := &Config{
		Type:  TypeConsole,
		Level: DebugLevel,
	}
	l := New(c)
	l.Info(nil, "TestConsole", String("key", "value"))
	assert.Equal(t, DebugLevel, l.GetLevel())
}

func TestJSONOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	l := New(&Config{Type: TypeConsole, Format: FormatJson, Output: buf, Fields: []Field{String("project", "gstrategy")}})

	l.Info(context.Background(), "TestJSON", Float64("value", 1.5), Int("n", 2))
	l.Debug(context.Background(), "dropped")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "TestJSON", entries[0]["M"])
	assert.Equal(t, "INFO", entries[0]["L"])
	assert.Equal(t, 1.5, entries[0]["value"])
	assert.Equal(t, "gstrategy", entries[0]["project"])
	assert.Contains(t, entries[0]["C"], "logger_test.go")
}

func TestDisableLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	l := New(&Config{
		Format:        FormatJson,
		Output:        buf,
		DisableCaller: true,
		DisableLevel:  true,
	})
	l.Info(nil, "TestDisableLevel", String("key", "value"))

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0], "L")
	assert.NotContains(t, entries[0], "C")
}

func TestContext(t *testing.T) {
	buf := &bytes.Buffer{}
	l := New(&Config{
		Format: FormatJson,
		Output: buf,
		ContextFn: func(ctx context.Context, fields []Field) []Field {
			if traceId, ok := ctx.Value(ctxKey("traceid")).(string); ok {
				fields = append(fields, String("traceid", traceId))
			}
			return fields
		},
	})
	ctx := context.WithValue(context.Background(), ctxKey("traceid"), "123")
	l.Info(ctx, "TestContext", String("key", "value"))
	l.Infof(ctx, "TestContext %d", 2)

	entries := decodeLines(t, buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "123", entries[0]["traceid"])
	assert.Equal(t, "TestContext 2", entries[1]["M"])
	assert.Equal(t, "123", entries[1]["traceid"])
}

func TestLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	l := New(&Config{Format: FormatJson, Output: buf, Level: ErrorLevel})
	named := l.Named("child").With(String("k", "v"))

	l.Info(nil, "TestLevel", String("key", "info"))
	l.Error(nil, "TestLevel", String("key", "error"))
	assert.False(t, named.Enabled(InfoLevel))

	l.SetLevel(DebugLevel)
	named.Debug(nil, "TestLevel", String("key", "debug"))

	entries := decodeLines(t, buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "error", entries[0]["key"])
	assert.Equal(t, "child", entries[1]["N"])
	assert.Equal(t, "v", entries[1]["k"])
}

func TestFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "test.log")
	l := New(&Config{
		Type:   TypeFile,
		File:   file,
		Format: FormatJson,
	})
	l.Info(nil, "TestFile", String("key", "value"))
	require.NoError(t, l.Close())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "TestFile")
}

func TestGlobal(t *testing.T) {
	old := Default()
	defer SetLogger(old)

	buf := &bytes.Buffer{}
	SetLogger(New(&Config{Format: FormatJson, Output: buf}))
	SetLogger(nil)
	Info(nil, "TestGlobal", String("key", "xxx"))
	Warnf(nil, "TestGlobal %s", "warn")
	Debug(nil, "dropped")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "WARN", entries[1]["L"])
	assert.Contains(t, entries[0]["C"], "logger_test.go")
}

func TestDefaultFilename(t *testing.T) {
	t.Setenv("GSTRATEGY_PROJECT_NAME", "pricing")
	assert.True(t, strings.HasPrefix(defaultFilename(), "/data/logs/pricing/"))
}

func TestParseLevel(t *testing.T) {
	lv, err := ParseLevel("debug")
	assert.NoError(t, err)
	assert.Equal(t, DebugLevel, lv)

	_, err = ParseLevel("123")
	assert.Error(t, err)
}

func TestWithDefaults(t *testing.T) {
	c := &Config{Type: TypeLumberjack, File: "/tmp/x.log"}
	cfg := withDefaults(c)
	assert.Equal(t, 100, cfg.MaxSize)
	assert.Equal(t, 3, cfg.MaxBackups)
	assert.Equal(t, 2, cfg.Skip)
	assert.Equal(t, defaultTimeFormat, cfg.TimeFormat)
	// caller's config untouched
	assert.Equal(t, 0, c.MaxSize)

	cfg = withDefaults(nil)
	assert.Equal(t, "", cfg.File)
	assert.Equal(t, InfoLevel, cfg.Level)
}

func TestGlobalDebugf(t *testing.T) {
	old := Default()
	defer SetLogger(old)

	buf := &bytes.Buffer{}
	SetLogger(New(&Config{Format: FormatJson, Output: buf, Level: DebugLevel}))
	Debugf(nil, "TestGlobalDebugf %d", 7)

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "DEBUG", entries[0]["L"])
	assert.Equal(t, "TestGlobalDebugf 7", entries[0]["M"])
	assert.Contains(t, entries[0]["C"], "logger_test.go")
}
