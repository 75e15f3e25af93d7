package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func parseLastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &m))
	return m
}

func TestNew_TimestampInLocation(t *testing.T) {
	var buf bytes.Buffer
	loc := time.FixedZone("WIB", 7*60*60)
	log := New(&buf, "info", loc)

	log.Info("hello")

	entry := parseLastLine(t, &buf)
	ts, ok := entry["ts"].(string)
	require.True(t, ok, "expected ts field")
	assert.True(t, strings.HasSuffix(ts, "+07:00"), ts)
	assert.NotContains(t, entry, "time")
	assert.Equal(t, "hello", entry["msg"])
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn", nil)

	log.Info("dropped")
	assert.Zero(t, buf.Len())

	log.Warn("kept")
	assert.Equal(t, "WARN", parseLastLine(t, &buf)["level"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestTraceHandler_WithSpan(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	defer tp.Shutdown(context.Background()) //nolint:errcheck
	otel.SetTracerProvider(tp)

	var buf bytes.Buffer
	log := New(&buf, "debug", time.UTC)

	ctx, parent := otel.Tracer("test").Start(context.Background(), "parent")
	log.InfoContext(ctx, "parent log")
	parentEntry := parseLastLine(t, &buf)

	ctx, child := otel.Tracer("test").Start(ctx, "child")
	log.InfoContext(ctx, "child log")
	childEntry := parseLastLine(t, &buf)
	child.End()
	parent.End()

	assert.NotEmpty(t, parentEntry["trace_id"])
	assert.Equal(t, parentEntry["trace_id"], childEntry["trace_id"])
	assert.NotEqual(t, parentEntry["span_id"], childEntry["span_id"])
}

func TestTraceHandler_NoSpan(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info", time.UTC)

	log.InfoContext(context.Background(), "no span")

	entry := parseLastLine(t, &buf)
	assert.NotContains(t, entry, "trace_id")
	assert.NotContains(t, entry, "span_id")
	assert.NotContains(t, entry, "request_id")
}

func TestTraceHandler_RequestID(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info", time.UTC).With("component", "http")

	ctx := WithRequestID(context.Background(), "rid-1")
	log.InfoContext(ctx, "request")

	entry := parseLastLine(t, &buf)
	assert.Equal(t, "rid-1", entry["request_id"])
	assert.Equal(t, "http", entry["component"])
	assert.Equal(t, "rid-1", RequestID(ctx))
	assert.Empty(t, RequestID(context.Background()))
}
