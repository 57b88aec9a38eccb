package docker

import (
	"strings"
	"time"

	docker "github.com/docker/docker/api/types/container"
	"github.com/samber/lo"
)

const StateRunning = "running"

// Container is the part of an inspect response a status record is built from.
// Health is empty for containers without a healthcheck.
type Container struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	StartedAt time.Time `json:"startedAt"`
	State     string    `json:"state"`
	Health    string    `json:"health,omitempty"`
	Tty       bool      `json:"tty"`
}

func (c Container) Running() bool {
	return c.State == StateRunning
}

func newContainerFromJSON(c docker.InspectResponse) Container {
	var container Container

	if c.ContainerJSONBase != nil {
		container.ID = c.ID
		if len(container.ID) > 12 {
			container.ID = container.ID[:12]
		}
		container.Name = strings.TrimPrefix(c.Name, "/")

		if c.State != nil {
			container.State = string(c.State.Status)

			if startedAt, err := time.Parse(time.RFC3339Nano, c.State.StartedAt); err == nil {
				container.StartedAt = startedAt.UTC()
			}

			if c.State.Health != nil {
				container.Health = strings.ToLower(string(c.State.Health.Status))
			}
		}
	}

	if c.Config != nil {
		container.Image = c.Config.Image
		container.Tty = c.Config.Tty
	}

	return container
}

// LogLine is one decoded line of container output. It is never persisted.
type LogLine struct {
	Container string `json:"container"`
	Text      string `json:"text"`
}

func Texts(lines []LogLine) []string {
	return lo.Map(lines, func(line LogLine, _ int) string {
		return line.Text
	})
}
