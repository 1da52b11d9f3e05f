// Where: internal/app/build.go
// What: Build command helpers.
// Why: Orchestrate the image build in a testable way.
package app

import (
	"fmt"
	"io"
)

func runBuild(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.Builder == nil {
		fmt.Fprintln(out, "build: not implemented")
		return 1
	}

	cfg, err := loadProjectConfig(deps)
	if err != nil {
		return exitWithError(out, err)
	}

	request := BuildRequest{
		ProjectDir: deps.ProjectDir,
		Config:     cfg,
		NoCache:    cli.Build.NoCache,
		Pull:       cli.Build.Pull,
		Verbose:    cli.Build.Verbose,
	}
	if err := deps.Builder.Build(request); err != nil {
		return exitWithError(out, err)
	}

	fmt.Fprintf(out, "✅ Image built: %s\n", cfg.Image.Ref())
	return 0
}
