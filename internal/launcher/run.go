// Where: internal/launcher/run.go
// What: Container create/start via the Docker SDK.
// Why: Replace the original docker run invocation with typed API calls.
package launcher

import (
	"context"
	"fmt"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/mount"
	"github.com/docker/go-connections/nat"
)

// ManagedLabel marks containers created by this launcher so status and
// teardown can scope their queries.
const ManagedLabel = "com.gptresearcher.launcher"

// MountSpec is a host directory bind-mounted into the container.
type MountSpec struct {
	Source   string
	Target   string
	ReadOnly bool
}

// ContainerSpec describes the single detached container the launcher manages.
type ContainerSpec struct {
	Name          string
	Image         string
	Env           []string
	Mounts        []MountSpec
	HostIP        string
	HostPort      int
	ContainerPort int
	Restart       string
	ExtraArgs     []string
}

// RunContainer creates and starts the named container. It returns once the
// daemon accepts the start; no readiness probe is performed. A name collision
// with an existing container fails rather than tearing the old one down.
func RunContainer(ctx context.Context, client DockerClient, spec ContainerSpec) (string, error) {
	if client == nil {
		return "", fmt.Errorf("docker client is nil")
	}
	if strings.TrimSpace(spec.Name) == "" {
		return "", fmt.Errorf("container name is required")
	}

	containerPort, err := nat.NewPort("tcp", fmt.Sprintf("%d", spec.ContainerPort))
	if err != nil {
		return "", fmt.Errorf("container port: %w", err)
	}

	config := &container.Config{
		Image: spec.Image,
		Env:   spec.Env,
		Labels: map[string]string{
			ManagedLabel: spec.Name,
		},
		ExposedPorts: nat.PortSet{containerPort: struct{}{}},
	}
	if len(spec.ExtraArgs) > 0 {
		config.Cmd = spec.ExtraArgs
	}

	hostConfig := &container.HostConfig{
		PortBindings: nat.PortMap{
			containerPort: []nat.PortBinding{
				{
					HostIP:   spec.HostIP,
					HostPort: fmt.Sprintf("%d", spec.HostPort),
				},
			},
		},
	}
	for _, m := range spec.Mounts {
		hostConfig.Mounts = append(hostConfig.Mounts, mount.Mount{
			Type:     mount.TypeBind,
			Source:   m.Source,
			Target:   m.Target,
			ReadOnly: m.ReadOnly,
		})
	}
	if spec.Restart != "" {
		hostConfig.RestartPolicy = container.RestartPolicy{
			Name: container.RestartPolicyMode(spec.Restart),
		}
	}

	created, err := client.ContainerCreate(ctx, config, hostConfig, nil, nil, spec.Name)
	if err != nil {
		if strings.Contains(err.Error(), "Conflict") {
			return "", fmt.Errorf("container %q already exists (run 'gptrctl down' first): %w", spec.Name, err)
		}
		return "", err
	}

	if err := client.ContainerStart(ctx, created.ID, container.StartOptions{}); err != nil {
		return "", fmt.Errorf("start container %s: %w", spec.Name, err)
	}
	return created.ID, nil
}
