// Package status builds per-container status records from the container
// runtime and the containers' own log output.
package status

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gamemon/gamemon/internal/docker"
	"github.com/gamemon/gamemon/internal/logs"
	"github.com/gamemon/gamemon/internal/presence"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const DefaultDisplayLines = 3

// Runtime is what the aggregator needs from the container runtime. *docker.Client implements it.
type Runtime interface {
	Inspect(ctx context.Context, name string) (docker.Container, error)
	Tail(ctx context.Context, c docker.Container, n int) ([]docker.LogLine, error)
}

// Aggregator holds no per-request state and is safe for concurrent use.
type Aggregator struct {
	runtime        Runtime
	displayLines   int
	presenceWindow int
	now            func() time.Time
	tracer         trace.Tracer
}

type Option func(*Aggregator)

func WithDisplayLines(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.displayLines = n
		}
	}
}

func WithPresenceWindow(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.presenceWindow = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) {
		a.now = now
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(a *Aggregator) {
		a.tracer = tracer
	}
}

func NewAggregator(runtime Runtime, opts ...Option) *Aggregator {
	a := &Aggregator{
		runtime:        runtime,
		displayLines:   DefaultDisplayLines,
		presenceWindow: presence.DefaultWindow,
		now:            time.Now,
		tracer:         otel.Tracer("gamemon/status"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Collect inspects every target in order and keys the records by Target.Key.
func (a *Aggregator) Collect(ctx context.Context, targets []Target) map[string]Record {
	ctx, span := a.tracer.Start(ctx, "status.collect", trace.WithAttributes(
		attribute.Int("status.targets", len(targets)),
	))
	defer span.End()

	records := make(map[string]Record, len(targets))
	for _, target := range targets {
		records[target.Key] = a.Status(ctx, target)
	}
	return records
}

// Status never fails: runtime errors are reported inside the record.
func (a *Aggregator) Status(ctx context.Context, target Target) Record {
	ctx, span := a.tracer.Start(ctx, "status.container", trace.WithAttributes(
		attribute.String("container.name", target.Name),
		attribute.String("container.kind", string(target.Kind)),
	))
	defer span.End()

	record := a.status(ctx, target)
	span.SetAttributes(
		attribute.String("container.status", record.Status),
		attribute.Bool("container.online", record.Online),
	)
	return record
}

func (a *Aggregator) status(ctx context.Context, target Target) Record {
	c, err := a.runtime.Inspect(ctx, target.Name)
	if errors.Is(err, docker.ErrNotFound) {
		return Record{
			Name:   target.Name,
			Status: StatusNotFound,
			Logs:   []string{"Container not found"},
		}
	}
	if err != nil {
		slog.Warn("Failed to get container status.", "container", target.Name, "err", err)
		span := trace.SpanFromContext(ctx)
		span.RecordError(err)
		span.SetStatus(codes.Error, strings.TrimSpace(err.Error()))
		return Record{
			Name:   target.Name,
			Status: StatusError,
			Logs:   []string{errorLine(err)},
		}
	}

	record := Record{
		Name:   target.Name,
		Status: c.State,
		Online: c.Running(),
		Logs:   a.displayLogs(ctx, target, c),
		Image:  c.Image,
		Health: c.Health,
	}

	if record.Online && !c.StartedAt.IsZero() {
		uptime := FormatUptime(a.now().Sub(c.StartedAt))
		record.Uptime = &uptime
	}

	if record.Online && target.Kind == KindMinecraft {
		a.attachPresence(ctx, c, &record)
	}

	return record
}

func (a *Aggregator) displayLogs(ctx context.Context, target Target, c docker.Container) []string {
	lines, err := a.runtime.Tail(ctx, c, a.displayLines)
	if err != nil {
		slog.Warn("Failed to get container logs.", "container", target.Name, "err", err)
		return []string{errorLine(err)}
	}

	structured := target.Kind == KindMinecraft
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line.Text) == "" {
			continue
		}
		if text, ok := logs.Classify(line.Text, structured); ok {
			kept = append(kept, text)
		}
	}

	if len(kept) > a.displayLines {
		kept = kept[len(kept)-a.displayLines:]
	}
	return kept
}

func (a *Aggregator) attachPresence(ctx context.Context, c docker.Container, record *Record) {
	players := 0
	record.Players = &players

	lines, err := a.runtime.Tail(ctx, c, a.presenceWindow)
	if err != nil {
		slog.Warn("Failed to get player count.", "container", c.Name, "err", err)
		return
	}

	events := logs.ExtractEvents(docker.Texts(lines))
	players = presence.Compute(events).Len()

	for _, event := range events {
		switch event.Kind {
		case logs.PlayerList:
			capacity := event.Max
			record.MaxPlayers = &capacity
		case logs.Chat:
			record.LastChat = fmt.Sprintf("<%s> %s", event.Player, event.Message)
		}
	}
}

func errorLine(err error) string {
	return "Error: " + err.Error()
}
