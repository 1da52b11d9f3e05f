// Where: cmd/gptrctl/cli_test.go
// What: Tests for CLI dependency wiring.
// Why: Ensure buildDependencies is deterministic.
package main

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/network"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/researchkit/gptrctl/internal/launcher"
)

type fakeDockerClient struct{}

func (fakeDockerClient) ContainerCreate(_ context.Context, _ *container.Config, _ *container.HostConfig,
	_ *network.NetworkingConfig, _ *ocispec.Platform, _ string) (container.CreateResponse, error) {
	return container.CreateResponse{}, nil
}

func (fakeDockerClient) ContainerStart(_ context.Context, _ string, _ container.StartOptions) error {
	return nil
}

func (fakeDockerClient) ContainerList(_ context.Context, _ container.ListOptions) ([]container.Summary, error) {
	return nil, nil
}

func (fakeDockerClient) ContainerStop(_ context.Context, _ string, _ container.StopOptions) error {
	return nil
}

func (fakeDockerClient) ContainerRemove(_ context.Context, _ string, _ container.RemoveOptions) error {
	return nil
}

func (fakeDockerClient) ContainerLogs(_ context.Context, _ string, _ container.LogsOptions) (io.ReadCloser, error) {
	return nil, nil
}

func swapWiring(t *testing.T) {
	t.Helper()
	origGetwd := getwd
	origNewClient := newDockerClient
	t.Cleanup(func() {
		getwd = origGetwd
		newDockerClient = origNewClient
	})
}

func TestBuildDependenciesSuccess(t *testing.T) {
	swapWiring(t)
	getwd = func() (string, error) { return "/project", nil }
	newDockerClient = func() (launcher.DockerClient, error) { return fakeDockerClient{}, nil }

	deps, closer, err := buildDependencies()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if deps.ProjectDir != "/project" {
		t.Fatalf("unexpected project dir: %s", deps.ProjectDir)
	}
	if deps.Builder == nil || deps.Upper == nil || deps.Downer == nil ||
		deps.Stopper == nil || deps.Logger == nil || deps.StatusReader == nil ||
		deps.Scaffolder == nil {
		t.Fatal("expected all command dependencies to be wired")
	}
	if closer != nil {
		t.Fatal("fake client is not a closer")
	}
}

func TestBuildDependenciesGetwdFailure(t *testing.T) {
	swapWiring(t)
	getwd = func() (string, error) { return "", errors.New("getwd failed") }

	if _, _, err := buildDependencies(); err == nil {
		t.Fatal("expected getwd failure to propagate")
	}
}

func TestBuildDependenciesClientFailure(t *testing.T) {
	swapWiring(t)
	getwd = func() (string, error) { return "/project", nil }
	newDockerClient = func() (launcher.DockerClient, error) {
		return nil, errors.New("cannot connect to the Docker daemon")
	}

	if _, _, err := buildDependencies(); err == nil {
		t.Fatal("expected client failure to propagate")
	}
}
