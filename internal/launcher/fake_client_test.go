// Where: internal/launcher/fake_client_test.go
// What: Fake Docker client for launcher tests.
// Why: Exercise container operations without a daemon.
package launcher

import (
	"bytes"
	"context"
	"io"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/network"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

type fakeDockerClient struct {
	createConfig *container.Config
	createHost   *container.HostConfig
	createName   string
	createErr    error

	started  []string
	startErr error

	listResult []container.Summary
	listErr    error

	stopped []string
	stopErr error

	removed       []string
	removeOptions container.RemoveOptions
	removeErr     error

	logsPayload []byte
	logsOptions container.LogsOptions
	logsErr     error
}

func (f *fakeDockerClient) ContainerCreate(_ context.Context, config *container.Config, hostConfig *container.HostConfig,
	_ *network.NetworkingConfig, _ *ocispec.Platform, name string) (container.CreateResponse, error) {
	f.createConfig = config
	f.createHost = hostConfig
	f.createName = name
	if f.createErr != nil {
		return container.CreateResponse{}, f.createErr
	}
	return container.CreateResponse{ID: "cid-1"}, nil
}

func (f *fakeDockerClient) ContainerStart(_ context.Context, containerID string, _ container.StartOptions) error {
	f.started = append(f.started, containerID)
	return f.startErr
}

func (f *fakeDockerClient) ContainerList(_ context.Context, _ container.ListOptions) ([]container.Summary, error) {
	return f.listResult, f.listErr
}

func (f *fakeDockerClient) ContainerStop(_ context.Context, containerID string, _ container.StopOptions) error {
	f.stopped = append(f.stopped, containerID)
	return f.stopErr
}

func (f *fakeDockerClient) ContainerRemove(_ context.Context, containerID string, options container.RemoveOptions) error {
	f.removed = append(f.removed, containerID)
	f.removeOptions = options
	return f.removeErr
}

func (f *fakeDockerClient) ContainerLogs(_ context.Context, _ string, options container.LogsOptions) (io.ReadCloser, error) {
	f.logsOptions = options
	if f.logsErr != nil {
		return nil, f.logsErr
	}
	return io.NopCloser(bytes.NewReader(f.logsPayload)), nil
}

type fakeRunner struct {
	dir    string
	name   string
	args   []string
	output []byte
	err    error
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	f.dir = dir
	f.name = name
	f.args = append([]string{}, args...)
	return f.err
}

func (f *fakeRunner) RunOutput(_ context.Context, dir, name string, args ...string) ([]byte, error) {
	f.dir = dir
	f.name = name
	f.args = append([]string{}, args...)
	return f.output, f.err
}
