package docker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"testing"

	"github.com/containerd/errdefs"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/pkg/stdcopy"
)

type fakeAPI struct {
	inspect    container.InspectResponse
	inspectErr error
	logs       []byte
	logsErr    error
	gotLogs    container.LogsOptions
	gotTarget  string
}

func (f *fakeAPI) ContainerInspect(ctx context.Context, containerID string) (container.InspectResponse, error) {
	return f.inspect, f.inspectErr
}

func (f *fakeAPI) ContainerLogs(ctx context.Context, containerID string, options container.LogsOptions) (io.ReadCloser, error) {
	f.gotTarget = containerID
	f.gotLogs = options
	if f.logsErr != nil {
		return nil, f.logsErr
	}
	return io.NopCloser(bytes.NewReader(f.logs)), nil
}

func multiplexed(t *testing.T, stdout, stderr string) []byte {
	t.Helper()
	var buf bytes.Buffer
	if _, err := stdcopy.NewStdWriter(&buf, stdcopy.Stdout).Write([]byte(stdout)); err != nil {
		t.Fatalf("write stdout frame: %v", err)
	}
	if stderr != "" {
		if _, err := stdcopy.NewStdWriter(&buf, stdcopy.Stderr).Write([]byte(stderr)); err != nil {
			t.Fatalf("write stderr frame: %v", err)
		}
	}
	return buf.Bytes()
}

func TestInspectRunningContainer(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{inspect: container.InspectResponse{
		ContainerJSONBase: &container.ContainerJSONBase{
			ID:      "0123456789abcdef0123",
			Name:    "/minecraft_server",
			Created: "2024-01-15T10:00:00.000000000Z",
			State: &container.State{
				Status:    "running",
				StartedAt: "2024-01-15T10:30:45.123456789Z",
				Health:    &container.Health{Status: "Healthy"},
			},
		},
		Config: &container.Config{Image: "itzg/minecraft-server", Tty: true},
	}}

	got, err := NewClient(api).Inspect(context.Background(), "minecraft_server")
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}
	if got.ID != "0123456789ab" || got.Name != "minecraft_server" {
		t.Fatalf("Inspect() = %+v", got)
	}
	if !got.Running() || !got.Tty || got.Image != "itzg/minecraft-server" || got.Health != "healthy" {
		t.Fatalf("Inspect() = %+v", got)
	}
	if got.StartedAt.IsZero() || got.StartedAt.Nanosecond() != 123456789 {
		t.Fatalf("StartedAt = %v", got.StartedAt)
	}
}

func TestInspectNotFound(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{inspectErr: fmt.Errorf("No such container: ghost: %w", errdefs.ErrNotFound)}
	_, err := NewClient(api).Inspect(context.Background(), "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Inspect() error = %v, want ErrNotFound", err)
	}
}

func TestInspectOtherError(t *testing.T) {
	t.Parallel()

	daemonDown := errors.New("Cannot connect to the Docker daemon")
	api := &fakeAPI{inspectErr: daemonDown}
	_, err := NewClient(api).Inspect(context.Background(), "minecraft_server")
	if errors.Is(err, ErrNotFound) {
		t.Fatal("daemon error reported as not found")
	}
	if !errors.Is(err, daemonDown) {
		t.Fatalf("Inspect() error = %v, want wrapped daemon error", err)
	}
}

func TestTailDemultiplexes(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{logs: multiplexed(t, "first\r\nsecond\n", "third\n")}
	c := Container{ID: "abc", Name: "satisfactory-server"}

	got, err := NewClient(api).Tail(context.Background(), c, 50)
	if err != nil {
		t.Fatalf("Tail() error = %v", err)
	}
	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(Texts(got), want) {
		t.Fatalf("Tail() = %q, want %q", Texts(got), want)
	}
	if got[0].Container != "satisfactory-server" {
		t.Fatalf("Container = %q", got[0].Container)
	}
	if api.gotTarget != "abc" || api.gotLogs.Tail != "50" || !api.gotLogs.ShowStdout || !api.gotLogs.ShowStderr {
		t.Fatalf("ContainerLogs called with %q %+v", api.gotTarget, api.gotLogs)
	}
}

func TestTailTTYReplacesInvalidBytes(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{logs: []byte("ok\nbad \xff\xfe byte\n")}
	c := Container{Name: "minecraft_server", Tty: true}

	got, err := NewClient(api).Tail(context.Background(), c, 3)
	if err != nil {
		t.Fatalf("Tail() error = %v", err)
	}
	want := []string{"ok", "bad � byte"}
	if !reflect.DeepEqual(Texts(got), want) {
		t.Fatalf("Tail() = %q, want %q", Texts(got), want)
	}
	if api.gotTarget != "minecraft_server" {
		t.Fatalf("target = %q, want container name", api.gotTarget)
	}
}

func TestTailEmpty(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{logs: nil}
	got, err := NewClient(api).Tail(context.Background(), Container{Name: "x", Tty: true}, 3)
	if err != nil || len(got) != 0 {
		t.Fatalf("Tail() = %v, %v, want empty", got, err)
	}
}

func TestTailError(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{logsErr: errors.New("boom")}
	if _, err := NewClient(api).Tail(context.Background(), Container{Name: "x"}, 3); err == nil {
		t.Fatal("Tail() error = nil, want error")
	}
}
