package tracing

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

func TestProviderLogsFinishedSpans(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	tp := NewProvider(logger)
	defer tp.Shutdown(context.Background())

	tracer := tp.Tracer("test")
	ctx, parent := tracer.Start(context.Background(), "status.collect")
	_, child := tracer.Start(ctx, "status.container")
	child.SetAttributes(attribute.String("container.name", "minecraft_server"), attribute.Bool("container.online", true))
	child.End()
	parent.End()

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("logged %d lines, want 2:\n%s", len(lines), out)
	}
	for _, want := range []string{"span=status.container", "container.name=minecraft_server", "container.online=true", "parent=", "duration="} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("child line missing %q: %s", want, lines[0])
		}
	}
	if !strings.Contains(lines[1], "span=status.collect") || strings.Contains(lines[1], "parent=") {
		t.Errorf("root line = %s", lines[1])
	}
	if !strings.Contains(lines[0], "level=INFO") {
		t.Errorf("child line level: %s", lines[0])
	}
}

func TestProviderLogsErrorsAsWarnings(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tp := NewProvider(slog.New(slog.NewTextHandler(&buf, nil)))
	defer tp.Shutdown(context.Background())

	_, span := tp.Tracer("test").Start(context.Background(), "status.container")
	span.RecordError(errors.New("daemon unreachable"))
	span.SetStatus(codes.Error, "daemon unreachable")
	span.End()

	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, `err="daemon unreachable"`) {
		t.Fatalf("output = %s", out)
	}
}
