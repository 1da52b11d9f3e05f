// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/researchkit/gptrctl/internal/config"
	"github.com/researchkit/gptrctl/internal/envfile"
	"github.com/researchkit/gptrctl/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command
// execution. This structure enables dependency injection for testing and
// allows swapping implementations of various subsystems.
type Dependencies struct {
	ProjectDir   string
	Out          io.Writer
	ErrOut       io.Writer
	Builder      Builder
	Upper        Upper
	Downer       Downer
	Stopper      Stopper
	Logger       LogStreamer
	StatusReader StatusReader
	Scaffolder   Scaffolder
	EnvLoader    func(path string) ([]string, error)
	LoadConfig   func(projectDir string) (config.Config, error)
}

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	Project string `short:"C" help:"Project directory (default: current directory)"`
	EnvFile string `name:"env-file" help:"Path to .env file (default: env_file from launcher.yaml)"`

	Init    InitCmd    `cmd:"" help:"Scaffold Dockerfile, launcher.yaml, and .env.example"`
	Build   BuildCmd   `cmd:"" help:"Build the server image"`
	Up      UpCmd      `cmd:"" help:"Start the server container (detached)"`
	Down    DownCmd    `cmd:"" help:"Stop and remove the server container"`
	Stop    StopCmd    `cmd:"" help:"Stop the server container (preserve it)"`
	Logs    LogsCmd    `cmd:"" help:"View server logs"`
	Status  StatusCmd  `cmd:"" help:"Show container status"`
	Doctor  DoctorCmd  `cmd:"" help:"Check config, env file, mounts, and Dockerfile consistency"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

type (
	InitCmd struct {
		Force bool `help:"Overwrite existing files"`
	}
	BuildCmd struct {
		NoCache bool `name:"no-cache" help:"Do not use cache when building the image"`
		Pull    bool `help:"Always attempt to pull newer base images"`
		Verbose bool `short:"v" help:"Stream build output"`
	}
	UpCmd struct {
		Build bool     `help:"Rebuild the image before starting"`
		Args  []string `arg:"" optional:"" passthrough:"" help:"Extra arguments forwarded to the server"`
	}
	DownCmd struct {
		Volumes bool `short:"v" help:"Remove anonymous volumes"`
	}
	StopCmd struct{}
	LogsCmd struct {
		Follow     bool `short:"f" help:"Follow logs"`
		Tail       int  `help:"Tail the latest N lines"`
		Timestamps bool `help:"Show timestamps"`
	}
	StatusCmd  struct{}
	DoctorCmd  struct{}
	VersionCmd struct{}
)

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	deps.Out = out
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	if deps.EnvLoader == nil {
		deps.EnvLoader = envfile.Load
	}
	if deps.LoadConfig == nil {
		deps.LoadConfig = config.LoadOrDefault
	}

	if deps.ProjectDir == "" {
		deps.ProjectDir = "."
	}

	// No arguments: show configuration and container state.
	if len(args) == 0 {
		return runInfo(CLI{}, deps, out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	if cli.Project != "" {
		deps.ProjectDir = cli.Project
	}

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

type prefixHandler struct {
	prefix  string
	handler commandHandler
}

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"init":    runInit,
		"build":   runBuild,
		"down":    runDown,
		"stop":    runStop,
		"logs":    runLogs,
		"status":  runStatus,
		"doctor":  runDoctor,
		"version": func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(out) },
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}

	prefixHandlers := []prefixHandler{
		{prefix: "up", handler: runUp},
	}

	for _, entry := range prefixHandlers {
		if strings.HasPrefix(command, entry.prefix) {
			return entry.handler(cli, deps, out), true
		}
	}

	return 1, false
}

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}

// runVersion prints the version information of the CLI.
func runVersion(out io.Writer) int {
	fmt.Fprintln(out, version.GetVersion())
	return 0
}

// loadProjectConfig resolves and validates the project configuration shared
// by every docker-facing command.
func loadProjectConfig(deps Dependencies) (config.Config, error) {
	cfg, err := deps.LoadConfig(deps.ProjectDir)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("%s: %w", config.FileName, err)
	}
	return cfg, nil
}
