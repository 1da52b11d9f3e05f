// Where: internal/app/status.go
// What: Status and info command helpers.
// Why: Give operators a quick view of config and container state.
package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/researchkit/gptrctl/internal/ui"
	"github.com/researchkit/gptrctl/internal/version"
)

func runStatus(_ CLI, deps Dependencies, out io.Writer) int {
	if deps.StatusReader == nil {
		fmt.Fprintln(out, "status: not implemented")
		return 1
	}

	cfg, err := loadProjectConfig(deps)
	if err != nil {
		return exitWithError(out, err)
	}

	status, err := deps.StatusReader.Status(cfg.Container.Name)
	if err != nil {
		return exitWithError(out, err)
	}

	console := ui.New(out)
	if status == nil {
		console.Info(fmt.Sprintf("no container named %q", cfg.Container.Name))
		return 1
	}

	console.Header("📦", status.Name)
	console.Item("image", status.Image)
	console.Item("state", status.State)
	console.Item("status", status.Status)
	if len(status.Ports) > 0 {
		console.Item("ports", strings.Join(status.Ports, ", "))
	}
	return 0
}

// runInfo handles invocation without arguments: configuration summary plus
// container state when a status reader is wired.
func runInfo(cli CLI, deps Dependencies, out io.Writer) int {
	cfg, err := loadProjectConfig(deps)
	if err != nil {
		return exitWithError(out, err)
	}

	console := ui.New(out)
	console.Header("⚙️ ", "Config")
	console.Item("version", version.GetVersion())
	console.Item("image", cfg.Image.Ref())
	console.Item("container", cfg.Container.Name)
	console.Item("publish", fmt.Sprintf("%d -> %d", cfg.Network.HostPort, cfg.Server.Port))
	if cfg.EnvFile != "" {
		console.Item("env file", cfg.EnvFile)
	}
	for _, m := range cfg.Mounts {
		console.Item("mount", fmt.Sprintf("%s -> %s", m.Source, m.Target))
	}

	if deps.StatusReader == nil {
		return 0
	}
	status, err := deps.StatusReader.Status(cfg.Container.Name)
	if err != nil {
		return exitWithError(out, err)
	}
	if status == nil {
		console.Info("container not created (run 'gptrctl up')")
		return 0
	}
	console.Header("📦", "Container")
	console.Item("state", status.State)
	console.Item("status", status.Status)
	return 0
}
