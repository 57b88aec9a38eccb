package docker

import (
	"context"
	"errors"
	"io"

	"github.com/docker/docker/api/types/container"
)

var ErrNotFound = errors.New("container not found")

// API is the part of the Docker Engine client this package needs.
type API interface {
	ContainerInspect(ctx context.Context, containerID string) (container.InspectResponse, error)
	ContainerLogs(ctx context.Context, containerID string, options container.LogsOptions) (io.ReadCloser, error)
}

type Client struct {
	api API
}

func NewClient(api API) *Client {
	return &Client{api: api}
}
