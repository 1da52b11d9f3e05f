// Where: cmd/gptrctl/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"io"
	"os"

	"github.com/researchkit/gptrctl/internal/app"
	"github.com/researchkit/gptrctl/internal/launcher"
)

var (
	getwd           = os.Getwd
	newDockerClient = launcher.NewDockerClient
)

// buildDependencies constructs all runtime dependencies required by the CLI.
// Returns the dependencies, a closer for cleanup, and any initialization error.
func buildDependencies() (app.Dependencies, io.Closer, error) {
	projectDir, err := getwd()
	if err != nil {
		return app.Dependencies{}, nil, err
	}

	client, err := newDockerClient()
	if err != nil {
		return app.Dependencies{}, nil, err
	}

	deps := app.Dependencies{
		ProjectDir:   projectDir,
		Out:          os.Stdout,
		ErrOut:       os.Stderr,
		Builder:      app.NewBuilder(launcher.ExecRunner{}),
		Upper:        app.NewUpper(client),
		Downer:       app.NewDowner(client),
		Stopper:      app.NewStopper(client),
		Logger:       app.NewLogger(client),
		StatusReader: app.NewStatusReader(client),
		Scaffolder:   app.NewScaffolder(),
	}

	return deps, asCloser(client), nil
}

// asCloser attempts to cast the Docker client to an io.Closer.
// Returns nil if the client does not implement the Closer interface.
func asCloser(client launcher.DockerClient) io.Closer {
	if closer, ok := client.(io.Closer); ok {
		return closer
	}
	return nil
}
