// Where: internal/app/down.go
// What: Down and stop command helpers.
// Why: Tear down or pause the managed container.
package app

import (
	"fmt"
	"io"
)

func runDown(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.Downer == nil {
		fmt.Fprintln(out, "down: not implemented")
		return 1
	}

	cfg, err := loadProjectConfig(deps)
	if err != nil {
		return exitWithError(out, err)
	}

	found, err := deps.Downer.Down(cfg.Container.Name, cli.Down.Volumes)
	if err != nil {
		return exitWithError(out, err)
	}
	if !found {
		fmt.Fprintf(out, "➜ no container named %q\n", cfg.Container.Name)
		return 0
	}

	fmt.Fprintln(out, "✅ down complete")
	return 0
}

func runStop(_ CLI, deps Dependencies, out io.Writer) int {
	if deps.Stopper == nil {
		fmt.Fprintln(out, "stop: not implemented")
		return 1
	}

	cfg, err := loadProjectConfig(deps)
	if err != nil {
		return exitWithError(out, err)
	}

	found, err := deps.Stopper.Stop(cfg.Container.Name)
	if err != nil {
		return exitWithError(out, err)
	}
	if !found {
		fmt.Fprintf(out, "➜ no container named %q\n", cfg.Container.Name)
		return 0
	}

	fmt.Fprintln(out, "✅ stopped (container preserved)")
	return 0
}
