package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gamemon/gamemon/config"
	"github.com/gamemon/gamemon/internal/client"
	"github.com/gamemon/gamemon/internal/docker"
	"github.com/gamemon/gamemon/internal/logging"
	"github.com/gamemon/gamemon/internal/metrics"
	"github.com/gamemon/gamemon/internal/server"
	"github.com/gamemon/gamemon/internal/status"
	"github.com/gamemon/gamemon/internal/tracing"
	"github.com/gamemon/gamemon/internal/ui"

	"github.com/alecthomas/kong"
	kongyaml "github.com/alecthomas/kong-yaml"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	var cfg config.Cli
	ctx := kong.Parse(&cfg,
		kong.Name("gamemon"),
		kong.Description("Status monitor for game servers running in Docker."),
		config.Vars(),
		kong.Configuration(kongyaml.Loader, "./config.yaml", "~/.config/gamemon/config.yaml", "~/.gamemon.yaml"),
	)

	if cfg.Version {
		fmt.Printf("gamemon version: %s\nCommit: %s\nBuilt on: %s\n", version, commit, date)
		os.Exit(0)
	}

	var err error
	switch ctx.Command() {
	case "watch":
		err = watch(cfg)
	default:
		err = serve(cfg)
	}
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

func serve(cfg config.Cli) error {
	if err := logging.Configure(cfg.LogLevel); err != nil {
		return err
	}

	opts := cfg.Serve
	cli, err := config.NewClient(opts.Host)
	if err != nil {
		return err
	}
	defer cli.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if _, err := cli.Ping(pingCtx); err != nil {
		slog.Warn("Docker daemon is not reachable, containers will report errors until it is.", "host", opts.Host, "err", err)
	}
	cancel()

	aggregatorOpts := []status.Option{
		status.WithDisplayLines(opts.DisplayLines),
		status.WithPresenceWindow(opts.PresenceWindow),
	}
	if opts.Trace {
		tp := tracing.NewProvider(slog.Default())
		defer tp.Shutdown(context.Background())
		aggregatorOpts = append(aggregatorOpts, status.WithTracer(tp.Tracer("gamemon/status")))
	}

	targets := opts.Targets()
	aggregator := status.NewAggregator(docker.NewClient(cli), aggregatorOpts...)
	probe := metrics.NewProbe()
	probe.SensorsTimeout = opts.SensorsTimeout

	srv := server.New(aggregator, probe, targets, version)

	slog.Info("Starting "+server.DisplayName,
		"version", version,
		"listen", opts.Listen,
		"host", opts.Host,
		"containers", strings.Join(lo.Map(targets, func(t status.Target, _ int) string {
			return t.Key + "=" + t.Name
		}), ","),
		"endpoints", strings.Join(lo.Keys(server.Endpoints()), ","),
	)

	return srv.Run(ctx, opts.Listen)
}

func watch(cfg config.Cli) error {
	// The UI owns the terminal. Debug logs go to a file, everything else is dropped.
	var out io.Writer = io.Discard
	if cfg.LogLevel == logging.LevelDebug {
		f, err := tea.LogToFile("gamemon-debug.log", "watch")
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if err := logging.ConfigureWriter(out, cfg.LogLevel); err != nil {
		return err
	}

	c, err := client.New(cfg.Watch.URL)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := tea.NewProgram(ui.NewApp(ctx, c, cfg.Watch.Interval), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
