package status

import (
	"strings"

	"github.com/gamemon/gamemon/internal/metrics"
)

const (
	StatusNotFound = "not_found"
	StatusError    = "error"
)

type Kind string

const (
	// KindMinecraft containers write "[time] [thread/LEVEL]: message" logs and get player tracking.
	KindMinecraft Kind = "minecraft"
	KindGeneric   Kind = "generic"
)

// KindFor guesses the kind of a container from its name.
func KindFor(name string) Kind {
	if strings.Contains(strings.ToLower(name), "minecraft") {
		return KindMinecraft
	}
	return KindGeneric
}

// Target is one monitored container. Key is its entry under "servers" in the report.
type Target struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

func NewTarget(key, name string) Target {
	if key == "" {
		key = name
	}
	return Target{Key: key, Name: name, Kind: KindFor(name)}
}

// Record is built fresh for every request and never cached.
type Record struct {
	Name       string   `json:"name"`
	Status     string   `json:"status"`
	Online     bool     `json:"online"`
	Uptime     *string  `json:"uptime"`
	Logs       []string `json:"logs"`
	Image      string   `json:"image,omitempty"`
	Health     string   `json:"health,omitempty"`
	Players    *int     `json:"players,omitempty"`
	MaxPlayers *int     `json:"max_players,omitempty"`
	LastChat   string   `json:"last_chat,omitempty"`
}

type Report struct {
	Timestamp string            `json:"timestamp"`
	System    metrics.Snapshot  `json:"system"`
	Servers   map[string]Record `json:"servers"`
}
