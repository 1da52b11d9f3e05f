// Where: internal/app/doctor.go
// What: Doctor command helpers.
// Why: Catch the config/Dockerfile disagreements the original scripts shipped.
package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/researchkit/gptrctl/internal/config"
	"github.com/researchkit/gptrctl/internal/ui"
)

func runDoctor(_ CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)
	defects := 0

	configPath := config.Path(deps.ProjectDir)
	if payload, err := os.ReadFile(configPath); err == nil {
		if err := config.ValidateSchema(payload); err != nil {
			console.Fail(fmt.Sprintf("%s: %v", config.FileName, err))
			defects++
		}
	} else if !os.IsNotExist(err) {
		return exitWithError(out, err)
	}

	cfg, err := deps.LoadConfig(deps.ProjectDir)
	if err != nil {
		return exitWithError(out, err)
	}
	if err := cfg.Validate(); err != nil {
		console.Fail(fmt.Sprintf("%s: %v", config.FileName, err))
		defects++
	}

	if cfg.EnvFile != "" {
		envPath := config.ResolvePath(deps.ProjectDir, cfg.EnvFile)
		if _, err := os.Stat(envPath); err != nil {
			console.Fail(fmt.Sprintf("env file %s missing ('gptrctl up' will fail)", cfg.EnvFile))
			defects++
		}
	}

	for _, m := range cfg.Mounts {
		source := config.ResolvePath(deps.ProjectDir, m.Source)
		if _, err := os.Stat(source); err != nil {
			console.Fail(fmt.Sprintf("mount source %s missing", m.Source))
			defects++
		}
	}

	dockerfilePath := config.ResolvePath(deps.ProjectDir, cfg.Build.Dockerfile)
	ports, err := exposedPorts(dockerfilePath)
	switch {
	case os.IsNotExist(err):
		console.Warn(fmt.Sprintf("%s not found ('gptrctl build' will fail)", cfg.Build.Dockerfile))
	case err != nil:
		return exitWithError(out, err)
	case len(ports) == 0:
		console.Warn(fmt.Sprintf("%s declares no EXPOSE directive", cfg.Build.Dockerfile))
	case !containsPort(ports, cfg.Server.Port):
		console.Fail(fmt.Sprintf("%s exposes %v but server.port is %d", cfg.Build.Dockerfile, ports, cfg.Server.Port))
		defects++
	}

	if defects > 0 {
		fmt.Fprintf(out, "%d defect(s) found\n", defects)
		return 1
	}
	console.Success("no defects found")
	return 0
}

// exposedPorts returns the ports named by EXPOSE directives in a Dockerfile.
func exposedPorts(path string) ([]int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var ports []int
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 || !strings.EqualFold(fields[0], "EXPOSE") {
			continue
		}
		for _, field := range fields[1:] {
			spec := field
			if idx := strings.IndexByte(spec, '/'); idx >= 0 {
				spec = spec[:idx]
			}
			port, err := strconv.Atoi(spec)
			if err != nil {
				continue
			}
			ports = append(ports, port)
		}
	}
	return ports, scanner.Err()
}

func containsPort(ports []int, port int) bool {
	for _, p := range ports {
		if p == port {
			return true
		}
	}
	return false
}
