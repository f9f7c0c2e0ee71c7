package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"go.opentelemetry.io/otel/trace"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := sonic.UnmarshalString(line, &entry); err != nil {
			t.Fatalf("decode log line %q: %v", line, err)
		}
		out = append(out, entry)
	}
	return out
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"":        LevelInfo,
		"warning": LevelWarn,
		" warn ":  LevelWarn,
		"error":   LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if got != want {
			t.Fatalf("parse %q: got=%s want=%s", in, got, want)
		}
	}

	if _, err := ParseLevel("trace"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNew_WritesBaseFieldsAndFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{
		Level:          LevelInfo,
		Output:         &buf,
		ServiceName:    "nba-draft-hub-api",
		ServiceVersion: "1.2.3",
		Environment:    "dev",
	})

	logger.Debug("hidden")
	logger.Info("dataset loaded", "prospects", 3, "error", errors.New("boom"))

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line, got %d: %s", len(lines), buf.String())
	}
	entry := lines[0]
	if entry["msg"] != "dataset loaded" {
		t.Fatalf("unexpected msg: %v", entry["msg"])
	}
	if entry["service"] != "nba-draft-hub-api" || entry["version"] != "1.2.3" || entry["env"] != "dev" {
		t.Fatalf("missing base fields: %+v", entry)
	}
	if entry["prospects"] != float64(3) {
		t.Fatalf("unexpected prospects field: %v", entry["prospects"])
	}
	if entry["error"] != "boom" {
		t.Fatalf("unexpected error field: %v", entry["error"])
	}
}

func TestInfoContext_AddsTraceIDs(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelDebug, Output: &buf})

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	spanCtx := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), spanCtx)

	logger.InfoContext(ctx, "request done")

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line, got %d", len(lines))
	}
	if lines[0]["trace_id"] != traceID.String() || lines[0]["span_id"] != spanID.String() {
		t.Fatalf("missing trace fields: %+v", lines[0])
	}
}

func TestZapFields_HandlesOddArgs(t *testing.T) {
	fields := zapFields([]any{1, "value", "dangling"})
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0].Key != "arg" {
		t.Fatalf("expected non-string key to become arg, got %q", fields[0].Key)
	}
	if fields[1].Key != "dangling" {
		t.Fatalf("unexpected dangling key: %q", fields[1].Key)
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var buf bytes.Buffer
	prev := Default()
	SetDefault(New(Options{Level: LevelInfo, Output: &buf}))
	defer SetDefault(prev)

	var logger *Logger
	logger.Info("from nil")

	if !strings.Contains(buf.String(), "from nil") {
		t.Fatalf("expected nil logger to write through default, got %q", buf.String())
	}
}
