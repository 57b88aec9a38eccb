package docker

import (
	"context"
	"fmt"

	"github.com/containerd/errdefs"
)

// Inspect looks a container up by name. A missing container returns an error wrapping ErrNotFound.
func (d *Client) Inspect(ctx context.Context, name string) (Container, error) {
	json, err := d.api.ContainerInspect(ctx, name)
	if err != nil {
		if errdefs.IsNotFound(err) {
			return Container{}, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return Container{}, fmt.Errorf("inspect container %s: %w", name, err)
	}
	return newContainerFromJSON(json), nil
}
