// Where: internal/launcher/stop.go
// What: Stop the managed container without removing it.
// Why: Preserve container state for a later restart.
package launcher

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types/container"
)

// StopContainer stops the named container, leaving it in place.
// Returns false when no container by that name exists.
func StopContainer(ctx context.Context, client DockerClient, name string) (bool, error) {
	ctr, err := FindContainer(ctx, client, name)
	if err != nil {
		return false, err
	}
	if ctr == nil {
		return false, nil
	}

	if err := client.ContainerStop(ctx, ctr.ID, container.StopOptions{}); err != nil {
		return true, fmt.Errorf("stop container %s: %w", name, err)
	}
	return true, nil
}
