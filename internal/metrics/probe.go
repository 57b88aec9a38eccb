// Package metrics reads host CPU temperature and memory utilization.
package metrics

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const DefaultSensorsTimeout = 2 * time.Second

var DefaultThermalZones = []string{
	"/sys/class/thermal/thermal_zone0/temp",
	"/sys/class/thermal/thermal_zone1/temp",
}

var sensorsTemperature = regexp.MustCompile(`([+-]?\d+\.\d+)°C`)

// Snapshot is read fresh on every request. Nil fields mean the value could not be read.
type Snapshot struct {
	CPUTemp       *float64 `json:"cpu_temp"`
	MemoryPercent *float64 `json:"memory_percent"`
}

// CommandRunner runs an external command and returns its standard output.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

type Probe struct {
	ThermalZones   []string
	MemInfoPath    string
	SensorsCommand []string
	SensorsTimeout time.Duration
	Run            CommandRunner
}

func NewProbe() *Probe {
	return &Probe{
		ThermalZones:   DefaultThermalZones,
		MemInfoPath:    "/proc/meminfo",
		SensorsCommand: []string{"sensors"},
		SensorsTimeout: DefaultSensorsTimeout,
		Run:            runCommand,
	}
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

func (p *Probe) Snapshot(ctx context.Context) Snapshot {
	return Snapshot{
		CPUTemp:       p.CPUTemperature(ctx),
		MemoryPercent: p.MemoryPercent(),
	}
}

// CPUTemperature tries the thermal zones in order and falls back to the sensors command.
func (p *Probe) CPUTemperature(ctx context.Context) *float64 {
	for _, path := range p.ThermalZones {
		temp, err := readThermalZone(path)
		if err != nil {
			if !os.IsNotExist(err) {
				slog.Debug("Skipping thermal zone.", "path", path, "err", err)
			}
			continue
		}
		return &temp
	}

	temp, err := p.sensorsTemperature(ctx)
	if err != nil {
		slog.Debug("CPU temperature unavailable.", "err", err)
		return nil
	}
	return &temp
}

func readThermalZone(path string) (float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	milli, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}
	return round1(milli / 1000), nil
}

func (p *Probe) sensorsTemperature(ctx context.Context) (float64, error) {
	if len(p.SensorsCommand) == 0 || p.Run == nil {
		return 0, fmt.Errorf("no sensors command configured")
	}

	timeout := p.SensorsTimeout
	if timeout <= 0 {
		timeout = DefaultSensorsTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := p.Run(ctx, p.SensorsCommand[0], p.SensorsCommand[1:]...)
	if err != nil {
		return 0, fmt.Errorf("run %s: %w", p.SensorsCommand[0], err)
	}
	return ParseSensorsOutput(out)
}

// ParseSensorsOutput returns the first temperature on a CPU or Core line of `sensors` output.
func ParseSensorsOutput(out []byte) (float64, error) {
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, "CPU") && !strings.Contains(line, "Core") {
			continue
		}
		m := sensorsTemperature.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		temp, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		return temp, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return 0, fmt.Errorf("no CPU temperature in sensors output")
}

// MemoryPercent reads MemTotal and MemAvailable and returns the used share.
func (p *Probe) MemoryPercent() *float64 {
	total, available, err := readMemInfo(p.MemInfoPath)
	if err != nil {
		slog.Warn("Memory usage unavailable.", "path", p.MemInfoPath, "err", err)
		return nil
	}
	percent := MemoryPercent(total, available)
	return &percent
}

// MemoryPercent is 100 * (total - available) / total, rounded to one decimal.
func MemoryPercent(total, available uint64) float64 {
	if total == 0 {
		return 0
	}
	used := float64(total) - float64(available)
	return round1(used * 100 / float64(total))
}

func readMemInfo(path string) (uint64, uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	var total, available uint64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		switch fields[0] {
		case "MemTotal:":
			total, _ = strconv.ParseUint(fields[1], 10, 64)
		case "MemAvailable:":
			available, _ = strconv.ParseUint(fields[1], 10, 64)
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, err
	}
	if total == 0 || available == 0 {
		return 0, 0, fmt.Errorf("MemTotal or MemAvailable missing")
	}
	return total, available, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
