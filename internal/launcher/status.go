// Where: internal/launcher/status.go
// What: Container lookup and status queries.
// Why: Resolve the managed container by exact name for every operation.
package launcher

import (
	"context"
	"fmt"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
)

// ContainerStatus summarizes the managed container for operator display.
type ContainerStatus struct {
	ID    string
	Name  string
	Image string
	State string
	// Status is the daemon's human-readable state line, e.g. "Up 2 hours".
	Status string
	Ports  []string
}

// FindContainer returns the container with the exact given name, or nil when
// absent. The daemon's name filter matches substrings, so results are
// re-checked against the full name.
func FindContainer(ctx context.Context, client DockerClient, name string) (*container.Summary, error) {
	nameFilter := filters.NewArgs()
	nameFilter.Add("name", name)

	containers, err := client.ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: nameFilter,
	})
	if err != nil {
		return nil, err
	}

	for _, ctr := range containers {
		for _, n := range ctr.Names {
			if strings.TrimPrefix(n, "/") == name {
				found := ctr
				return &found, nil
			}
		}
	}
	return nil, nil
}

// Status returns display information for the named container, or nil when no
// such container exists.
func Status(ctx context.Context, client DockerClient, name string) (*ContainerStatus, error) {
	ctr, err := FindContainer(ctx, client, name)
	if err != nil {
		return nil, err
	}
	if ctr == nil {
		return nil, nil
	}

	status := &ContainerStatus{
		ID:     ctr.ID,
		Name:   name,
		Image:  ctr.Image,
		State:  ctr.State,
		Status: ctr.Status,
	}
	for _, p := range ctr.Ports {
		if p.PublicPort == 0 {
			status.Ports = append(status.Ports, fmt.Sprintf("%d/%s", p.PrivatePort, p.Type))
			continue
		}
		ip := p.IP
		if ip == "" {
			ip = "0.0.0.0"
		}
		status.Ports = append(status.Ports, fmt.Sprintf("%s:%d->%d/%s", ip, p.PublicPort, p.PrivatePort, p.Type))
	}
	return status, nil
}
