// Where: internal/app/fakes_test.go
// What: Fake command dependencies for app tests.
// Why: Exercise handlers without docker or the filesystem.
package app

import (
	"io"

	"github.com/researchkit/gptrctl/internal/config"
	"github.com/researchkit/gptrctl/internal/launcher"
)

type fakeBuilder struct {
	request BuildRequest
	calls   int
	err     error
}

func (f *fakeBuilder) Build(request BuildRequest) error {
	f.request = request
	f.calls++
	return f.err
}

type fakeUpper struct {
	spec launcher.ContainerSpec
	err  error
}

func (f *fakeUpper) Up(spec launcher.ContainerSpec) (string, error) {
	f.spec = spec
	if f.err != nil {
		return "", f.err
	}
	return "cid-1", nil
}

type fakeDowner struct {
	name    string
	volumes bool
	found   bool
	err     error
}

func (f *fakeDowner) Down(name string, removeVolumes bool) (bool, error) {
	f.name = name
	f.volumes = removeVolumes
	return f.found, f.err
}

type fakeStopper struct {
	name  string
	found bool
	err   error
}

func (f *fakeStopper) Stop(name string) (bool, error) {
	f.name = name
	return f.found, f.err
}

type fakeLogger struct {
	name string
	opts launcher.LogsOptions
	err  error
}

func (f *fakeLogger) Logs(name string, opts launcher.LogsOptions, _, _ io.Writer) error {
	f.name = name
	f.opts = opts
	return f.err
}

type fakeStatusReader struct {
	status *launcher.ContainerStatus
	err    error
}

func (f *fakeStatusReader) Status(string) (*launcher.ContainerStatus, error) {
	return f.status, f.err
}

type fakeScaffolder struct {
	dir     string
	force   bool
	created []string
	err     error
}

func (f *fakeScaffolder) Scaffold(dir string, _ config.Config, force bool) ([]string, error) {
	f.dir = dir
	f.force = force
	return f.created, f.err
}

func testDeps() Dependencies {
	return Dependencies{
		ProjectDir: "/project",
		EnvLoader: func(string) ([]string, error) {
			return []string{"OPENAI_API_KEY=sk-abc"}, nil
		},
		LoadConfig: func(string) (config.Config, error) {
			return config.Default(), nil
		},
	}
}
