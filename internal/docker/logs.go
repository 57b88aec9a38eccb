package docker

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/pkg/stdcopy"
	"github.com/samber/lo"
)

// Tail returns the last n lines of a container's combined stdout and stderr, oldest first.
func (d *Client) Tail(ctx context.Context, c Container, n int) ([]LogLine, error) {
	options := container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Tail:       strconv.Itoa(n),
	}

	target := c.ID
	if target == "" {
		target = c.Name
	}

	reader, err := d.api.ContainerLogs(ctx, target, options)
	if err != nil {
		return nil, fmt.Errorf("logs for %s: %w", c.Name, err)
	}
	defer reader.Close()

	var buf bytes.Buffer
	if c.Tty {
		_, err = io.Copy(&buf, reader)
	} else {
		// Without a TTY the stream is multiplexed with 8 byte frame headers.
		_, err = stdcopy.StdCopy(&buf, &buf, reader)
	}
	if err != nil {
		return nil, fmt.Errorf("read logs for %s: %w", c.Name, err)
	}

	return splitLines(c.Name, buf.Bytes()), nil
}

func splitLines(name string, data []byte) []LogLine {
	text := strings.ToValidUTF8(string(data), "�")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}

	return lo.Map(strings.Split(text, "\n"), func(line string, _ int) LogLine {
		return LogLine{
			Container: name,
			Text:      strings.TrimSuffix(line, "\r"),
		}
	})
}
