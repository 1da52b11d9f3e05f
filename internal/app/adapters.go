// Where: internal/app/adapters.go
// What: Concrete command dependencies backed by the launcher package.
// Why: Keep handlers on narrow interfaces while wiring stays in one place.
package app

import (
	"context"
	"io"

	"github.com/researchkit/gptrctl/internal/config"
	"github.com/researchkit/gptrctl/internal/launcher"
	"github.com/researchkit/gptrctl/internal/scaffold"
)

// BuildRequest contains parameters for building the server image.
type BuildRequest struct {
	ProjectDir string
	Config     config.Config
	NoCache    bool
	Pull       bool
	Verbose    bool
}

// Builder defines the interface for building the server image.
type Builder interface {
	Build(request BuildRequest) error
}

// Upper defines the interface for starting the server container.
type Upper interface {
	Up(spec launcher.ContainerSpec) (string, error)
}

// Downer defines the interface for stopping and removing the container.
type Downer interface {
	Down(name string, removeVolumes bool) (bool, error)
}

// Stopper defines the interface for stopping the container in place.
type Stopper interface {
	Stop(name string) (bool, error)
}

// LogStreamer defines the interface for streaming container logs.
type LogStreamer interface {
	Logs(name string, opts launcher.LogsOptions, stdout, stderr io.Writer) error
}

// StatusReader defines the interface for reading container status.
type StatusReader interface {
	Status(name string) (*launcher.ContainerStatus, error)
}

// Scaffolder defines the interface for writing project scaffold files.
type Scaffolder interface {
	Scaffold(dir string, cfg config.Config, force bool) ([]string, error)
}

type dockerBuilder struct {
	runner launcher.CommandRunner
}

// NewBuilder returns a Builder that shells out to docker build.
func NewBuilder(runner launcher.CommandRunner) Builder {
	return dockerBuilder{runner: runner}
}

func (b dockerBuilder) Build(request BuildRequest) error {
	return launcher.BuildImage(context.Background(), b.runner, launcher.BuildOptions{
		ContextDir: config.ResolvePath(request.ProjectDir, request.Config.Build.Context),
		Dockerfile: config.ResolvePath(request.ProjectDir, request.Config.Build.Dockerfile),
		Ref:        request.Config.Image.Ref(),
		NoCache:    request.NoCache,
		Pull:       request.Pull,
		Verbose:    request.Verbose,
	})
}

type dockerUpper struct {
	client launcher.DockerClient
}

// NewUpper returns an Upper backed by the Docker SDK.
func NewUpper(client launcher.DockerClient) Upper {
	return dockerUpper{client: client}
}

func (u dockerUpper) Up(spec launcher.ContainerSpec) (string, error) {
	return launcher.RunContainer(context.Background(), u.client, spec)
}

type dockerDowner struct {
	client launcher.DockerClient
}

// NewDowner returns a Downer backed by the Docker SDK.
func NewDowner(client launcher.DockerClient) Downer {
	return dockerDowner{client: client}
}

func (d dockerDowner) Down(name string, removeVolumes bool) (bool, error) {
	return launcher.DownContainer(context.Background(), d.client, name, removeVolumes)
}

type dockerStopper struct {
	client launcher.DockerClient
}

// NewStopper returns a Stopper backed by the Docker SDK.
func NewStopper(client launcher.DockerClient) Stopper {
	return dockerStopper{client: client}
}

func (s dockerStopper) Stop(name string) (bool, error) {
	return launcher.StopContainer(context.Background(), s.client, name)
}

type dockerLogger struct {
	client launcher.DockerClient
}

// NewLogger returns a LogStreamer backed by the Docker SDK.
func NewLogger(client launcher.DockerClient) LogStreamer {
	return dockerLogger{client: client}
}

func (l dockerLogger) Logs(name string, opts launcher.LogsOptions, stdout, stderr io.Writer) error {
	return launcher.StreamLogs(context.Background(), l.client, name, opts, stdout, stderr)
}

type dockerStatusReader struct {
	client launcher.DockerClient
}

// NewStatusReader returns a StatusReader backed by the Docker SDK.
func NewStatusReader(client launcher.DockerClient) StatusReader {
	return dockerStatusReader{client: client}
}

func (r dockerStatusReader) Status(name string) (*launcher.ContainerStatus, error) {
	return launcher.Status(context.Background(), r.client, name)
}

type fsScaffolder struct{}

// NewScaffolder returns a Scaffolder writing to the local filesystem.
func NewScaffolder() Scaffolder {
	return fsScaffolder{}
}

func (fsScaffolder) Scaffold(dir string, cfg config.Config, force bool) ([]string, error) {
	return scaffold.Write(dir, cfg, force)
}
