// Where: internal/launcher/down.go
// What: Stop and remove the managed container.
// Why: Give operators the teardown the original scripts only hinted at.
package launcher

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types/container"
)

// DownContainer stops the named container if running and removes it.
// Returns false when no container by that name exists.
func DownContainer(ctx context.Context, client DockerClient, name string, removeVolumes bool) (bool, error) {
	ctr, err := FindContainer(ctx, client, name)
	if err != nil {
		return false, err
	}
	if ctr == nil {
		return false, nil
	}

	if ctr.State == "running" {
		if err := client.ContainerStop(ctx, ctr.ID, container.StopOptions{}); err != nil {
			return true, fmt.Errorf("stop container %s: %w", name, err)
		}
	}
	if err := client.ContainerRemove(ctx, ctr.ID, container.RemoveOptions{RemoveVolumes: removeVolumes}); err != nil {
		return true, fmt.Errorf("remove container %s: %w", name, err)
	}
	return true, nil
}
