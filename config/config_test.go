package config

import (
	"reflect"
	"testing"
	"time"

	"github.com/gamemon/gamemon/internal/status"

	"github.com/alecthomas/kong"
)

func TestParseContainer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    ContainerConfig
		wantErr bool
	}{
		{in: "minecraft=minecraft_server", want: ContainerConfig{Key: "minecraft", Name: "minecraft_server"}},
		{in: " sat = satisfactory-server ", want: ContainerConfig{Key: "sat", Name: "satisfactory-server"}},
		{in: "valheim", want: ContainerConfig{Key: "valheim", Name: "valheim"}},
		{in: "", wantErr: true},
		{in: "=name", wantErr: true},
		{in: "key=", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseContainer(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseContainer(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseContainer(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func parse(t *testing.T, args ...string) (*Cli, *kong.Context) {
	t.Helper()

	var cli Cli
	parser, err := kong.New(&cli, Vars())
	if err != nil {
		t.Fatalf("kong.New() error = %v", err)
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		t.Fatalf("Parse(%v) error = %v", args, err)
	}
	return &cli, ctx
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	cli, ctx := parse(t)
	if ctx.Command() != "serve" {
		t.Fatalf("Command() = %q, want serve", ctx.Command())
	}

	serve := cli.Serve
	if serve.Host != "local" || serve.Listen != ":5000" {
		t.Fatalf("serve = %+v", serve)
	}
	if serve.DisplayLines != 3 || serve.PresenceWindow != 50 || serve.SensorsTimeout != 2*time.Second || serve.Trace {
		t.Fatalf("serve = %+v", serve)
	}

	want := []status.Target{
		{Key: "minecraft_bingo", Name: "minecraft_bingo_server", Kind: status.KindMinecraft},
		{Key: "minecraft", Name: "minecraft_server", Kind: status.KindMinecraft},
		{Key: "satisfactory", Name: "satisfactory-server", Kind: status.KindGeneric},
	}
	if got := serve.Targets(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Targets() = %+v, want %+v", got, want)
	}
	if cli.LogLevel != "info" {
		t.Fatalf("LogLevel = %q", cli.LogLevel)
	}
}

func TestWatchCommand(t *testing.T) {
	t.Parallel()

	cli, ctx := parse(t, "watch", "--url", "http://games.local:5000", "--interval", "2s")
	if ctx.Command() != "watch" {
		t.Fatalf("Command() = %q, want watch", ctx.Command())
	}
	if cli.Watch.URL != "http://games.local:5000" || cli.Watch.Interval != 2*time.Second {
		t.Fatalf("watch = %+v", cli.Watch)
	}
}

func TestServeValidate(t *testing.T) {
	t.Parallel()

	ok := ServeCmd{
		Containers:     []ContainerConfig{{Key: "a", Name: "a"}, {Key: "b", Name: "b"}},
		DisplayLines:   3,
		PresenceWindow: 50,
	}
	if err := ok.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	dupe := ok
	dupe.Containers = []ContainerConfig{{Key: "a", Name: "a"}, {Key: "a", Name: "b"}}
	if err := dupe.Validate(); err == nil {
		t.Fatal("Validate() with duplicate keys error = nil")
	}

	empty := ok
	empty.Containers = nil
	if err := empty.Validate(); err == nil {
		t.Fatal("Validate() with no containers error = nil")
	}

	zero := ok
	zero.DisplayLines = 0
	if err := zero.Validate(); err == nil {
		t.Fatal("Validate() with zero display lines error = nil")
	}
}

func TestServeTraceFlag(t *testing.T) {
	t.Parallel()

	cli, _ := parse(t, "serve", "--trace")
	if !cli.Serve.Trace {
		t.Fatal("--trace did not enable tracing")
	}
}
