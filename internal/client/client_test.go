package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gamemon/gamemon/internal/metrics"
	"github.com/gamemon/gamemon/internal/server"
	"github.com/gamemon/gamemon/internal/status"
)

type staticCollector map[string]status.Record

func (c staticCollector) Collect(ctx context.Context, targets []status.Target) map[string]status.Record {
	return c
}

type staticProbe metrics.Snapshot

func (p staticProbe) Snapshot(ctx context.Context) metrics.Snapshot {
	return metrics.Snapshot(p)
}

func TestStatusRoundTrip(t *testing.T) {
	t.Parallel()

	players := 3
	mem := 61.2
	collector := staticCollector{
		"minecraft": {Name: "minecraft_server", Status: "running", Online: true, Logs: []string{"hi"}, Players: &players},
	}
	srv := server.New(collector, staticProbe{MemoryPercent: &mem}, []status.Target{status.NewTarget("minecraft", "minecraft_server")}, "test")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	c, err := New(ts.URL + "/")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	report, err := c.Status(context.Background())
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	got := report.Servers["minecraft"]
	if !got.Online || got.Players == nil || *got.Players != 3 {
		t.Fatalf("record = %+v", got)
	}
	if report.System.MemoryPercent == nil || *report.System.MemoryPercent != 61.2 {
		t.Fatalf("system = %+v", report.System)
	}
	if report.System.CPUTemp != nil {
		t.Fatalf("cpu_temp = %v, want nil", *report.System.CPUTemp)
	}

	health, err := c.Health(context.Background())
	if err != nil || health.Status != "healthy" {
		t.Fatalf("Health() = %+v, %v", health, err)
	}
}

func TestStatusHTTPError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer ts.Close()

	c, err := New(ts.URL)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := c.Status(context.Background()); err == nil {
		t.Fatal("Status() error = nil, want error")
	}
}

func TestNewRejectsBadURL(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"localhost:5000", "ftp://host", "://bad"} {
		if _, err := New(raw); err == nil {
			t.Errorf("New(%q) error = nil, want error", raw)
		}
	}
}
