// Where: internal/app/init.go
// What: Init command helpers.
// Why: Scaffold the files the original deployment repo checked in by hand.
package app

import (
	"fmt"
	"io"

	"github.com/researchkit/gptrctl/internal/config"
)

func runInit(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.Scaffolder == nil {
		fmt.Fprintln(out, "init: not implemented")
		return 1
	}

	created, err := deps.Scaffolder.Scaffold(deps.ProjectDir, config.Default(), cli.Init.Force)
	if err != nil {
		return exitWithError(out, err)
	}

	for _, name := range created {
		fmt.Fprintf(out, "   created %s\n", name)
	}
	fmt.Fprintln(out, "✅ project initialized")
	fmt.Fprintln(out, "Next:")
	fmt.Fprintln(out, "  cp .env.example .env   # Fill in API keys")
	fmt.Fprintln(out, "  gptrctl up --build     # Build the image and start the server")
	return 0
}
