package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/gamemon/gamemon/internal/status"

	"github.com/alecthomas/kong"
	"github.com/samber/lo"
)

const DefaultContainers = "minecraft_bingo=minecraft_bingo_server,minecraft=minecraft_server,satisfactory=satisfactory-server"

type Cli struct {
	Serve    ServeCmd `cmd:"" default:"withargs" help:"Serve container status over HTTP."`
	Watch    WatchCmd `cmd:"" help:"Show a live status board for a running server."`
	LogLevel string   `help:"Log level." default:"info" name:"log-level" enum:"debug,info,warn,error"`
	Version  bool     `help:"Show version information." default:"false" name:"version" short:"v"`
}

type ServeCmd struct {
	Host           string            `help:"Docker host: local, tcp://host:port, unix:///path or ssh://user@host." name:"host" default:"local"`
	Listen         string            `help:"Address to listen on." name:"listen" default:":5000"`
	Containers     []ContainerConfig `help:"Container to monitor as key=name." name:"container" default:"${containers}"`
	DisplayLines   int               `help:"Log lines shown per container." name:"display-lines" default:"3"`
	PresenceWindow int               `help:"Log lines scanned for player joins and leaves." name:"presence-window" default:"50"`
	SensorsTimeout time.Duration     `help:"Timeout for the sensors command fallback." name:"sensors-timeout" default:"2s"`
	Trace          bool              `help:"Log the duration and outcome of every status lookup." name:"trace" default:"false"`
}

type WatchCmd struct {
	URL      string        `help:"Base URL of the status server." name:"url" default:"http://localhost:5000"`
	Interval time.Duration `help:"Refresh interval." name:"interval" default:"5s"`
}

// Vars are the interpolation variables used by the Cli tags.
func Vars() kong.Vars {
	return kong.Vars{"containers": DefaultContainers}
}

// ContainerConfig is a monitored container. Key names its entry in the status report.
type ContainerConfig struct {
	Key  string `help:"Report key." name:"key"`
	Name string `help:"Container name." name:"name"`
}

func ParseContainer(value string) (ContainerConfig, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return ContainerConfig{}, fmt.Errorf("empty container")
	}

	key, name, found := strings.Cut(value, "=")
	if !found {
		return ContainerConfig{Key: value, Name: value}, nil
	}

	key = strings.TrimSpace(key)
	name = strings.TrimSpace(name)
	if key == "" || name == "" {
		return ContainerConfig{}, fmt.Errorf("invalid container %q, want key=name", value)
	}
	return ContainerConfig{Key: key, Name: name}, nil
}

func (c *ContainerConfig) Decode(ctx *kong.DecodeContext) error {
	token, err := ctx.Scan.PopValue("container")
	if err != nil {
		return err
	}
	parsed, err := ParseContainer(token.String())
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c ContainerConfig) Target() status.Target {
	return status.NewTarget(c.Key, c.Name)
}

func (s *ServeCmd) Validate() error {
	if len(s.Containers) == 0 {
		return fmt.Errorf("at least one --container is required")
	}
	dupes := lo.FindDuplicates(lo.Map(s.Containers, func(c ContainerConfig, _ int) string {
		return c.Key
	}))
	if len(dupes) > 0 {
		return fmt.Errorf("duplicate container keys: %s", strings.Join(dupes, ", "))
	}
	if s.DisplayLines <= 0 || s.PresenceWindow <= 0 {
		return fmt.Errorf("--display-lines and --presence-window must be positive")
	}
	return nil
}

func (s *ServeCmd) Targets() []status.Target {
	return lo.Map(s.Containers, func(c ContainerConfig, _ int) status.Target {
		return c.Target()
	})
}

func (w *WatchCmd) Validate() error {
	if w.Interval <= 0 {
		return fmt.Errorf("--interval must be positive")
	}
	return nil
}
