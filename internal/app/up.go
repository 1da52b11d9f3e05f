// Where: internal/app/up.go
// What: Up command helpers.
// Why: Turn the configured launch contract into one container start.
package app

import (
	"fmt"
	"io"

	"github.com/researchkit/gptrctl/internal/config"
	"github.com/researchkit/gptrctl/internal/launcher"
)

func runUp(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.Upper == nil {
		fmt.Fprintln(out, "up: not implemented")
		return 1
	}

	cfg, err := loadProjectConfig(deps)
	if err != nil {
		return exitWithError(out, err)
	}

	if cli.Up.Build {
		if deps.Builder == nil {
			fmt.Fprintln(out, "up: builder not configured")
			return 1
		}
		request := BuildRequest{ProjectDir: deps.ProjectDir, Config: cfg}
		if err := deps.Builder.Build(request); err != nil {
			return exitWithError(out, err)
		}
	}

	spec, err := containerSpec(cli, deps, cfg)
	if err != nil {
		return exitWithError(out, err)
	}

	if _, err := deps.Upper.Up(spec); err != nil {
		return exitWithError(out, err)
	}

	fmt.Fprintf(out, "✅ %s running\n", cfg.Container.Name)
	fmt.Fprintf(out, "   url: http://localhost:%d\n", cfg.Network.HostPort)
	fmt.Fprintln(out, "Next:")
	fmt.Fprintln(out, "  gptrctl logs -f   # Follow server logs")
	fmt.Fprintln(out, "  gptrctl down      # Stop and remove the container")
	return 0
}

// containerSpec maps the configuration onto the one container the launcher
// manages. The env file is read here so a missing file fails the launch, as
// the original docker run --env-file invocation did.
func containerSpec(cli CLI, deps Dependencies, cfg config.Config) (launcher.ContainerSpec, error) {
	var env []string
	envPath := cli.EnvFile
	if envPath == "" {
		envPath = cfg.EnvFile
	}
	if envPath != "" {
		entries, err := deps.EnvLoader(config.ResolvePath(deps.ProjectDir, envPath))
		if err != nil {
			return launcher.ContainerSpec{}, err
		}
		env = entries
	}

	spec := launcher.ContainerSpec{
		Name:          cfg.Container.Name,
		Image:         cfg.Image.Ref(),
		Env:           env,
		HostIP:        cfg.Network.HostIP,
		HostPort:      cfg.Network.HostPort,
		ContainerPort: cfg.Server.Port,
		Restart:       cfg.Container.Restart,
		ExtraArgs:     append(append([]string{}, cfg.Server.Args...), cli.Up.Args...),
	}
	for _, m := range cfg.Mounts {
		spec.Mounts = append(spec.Mounts, launcher.MountSpec{
			Source:   config.ResolvePath(deps.ProjectDir, m.Source),
			Target:   m.Target,
			ReadOnly: m.ReadOnly,
		})
	}
	return spec, nil
}
