// Where: internal/app/logs.go
// What: Logs command helpers.
// Why: Stream server output without a docker CLI round trip.
package app

import (
	"fmt"
	"io"

	"github.com/researchkit/gptrctl/internal/launcher"
)

func runLogs(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.Logger == nil {
		fmt.Fprintln(out, "logs: not implemented")
		return 1
	}

	cfg, err := loadProjectConfig(deps)
	if err != nil {
		return exitWithError(out, err)
	}

	opts := launcher.LogsOptions{
		Follow:     cli.Logs.Follow,
		Tail:       cli.Logs.Tail,
		Timestamps: cli.Logs.Timestamps,
	}
	if err := deps.Logger.Logs(cfg.Container.Name, opts, out, deps.ErrOut); err != nil {
		return exitWithError(out, err)
	}
	return 0
}
