// Where: internal/entrypoint/entrypoint.go
// What: In-container process-1 launch.
// Why: Replace the current process with the server so it receives lifecycle
// signals directly, with no supervisor in between.
package entrypoint

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"golang.org/x/sys/unix"
)

// Options describes the server invocation. Extra arguments are forwarded
// verbatim after the two fixed flags.
type Options struct {
	Server  []string
	Host    string
	Port    int
	AppRoot string
	Extra   []string
}

// BuildArgv assembles the effective argument list: the server command, the
// fixed --host/--port flags, then the forwarded arguments unaltered.
func BuildArgv(opts Options) []string {
	argv := make([]string, 0, len(opts.Server)+4+len(opts.Extra))
	argv = append(argv, opts.Server...)
	argv = append(argv, "--host", opts.Host, "--port", strconv.Itoa(opts.Port))
	argv = append(argv, opts.Extra...)
	return argv
}

// Launcher carries the process primitives so tests can observe the launch
// without replacing the test process.
type Launcher struct {
	Chdir    func(dir string) error
	LookPath func(file string) (string, error)
	Environ  func() []string
	Exec     func(argv0 string, argv []string, envv []string) error
}

// New returns a Launcher backed by the real process primitives.
func New() Launcher {
	return Launcher{
		Chdir:    os.Chdir,
		LookPath: exec.LookPath,
		Environ:  os.Environ,
		Exec:     unix.Exec,
	}
}

// Launch changes to the application root and execs the server process.
// On success it does not return: the server replaces the current process.
func (l Launcher) Launch(opts Options) error {
	if len(opts.Server) == 0 {
		return fmt.Errorf("server command is required")
	}

	if err := l.Chdir(opts.AppRoot); err != nil {
		return fmt.Errorf("chdir %s: %w", opts.AppRoot, err)
	}

	argv0, err := l.LookPath(opts.Server[0])
	if err != nil {
		return fmt.Errorf("resolve %s: %w", opts.Server[0], err)
	}

	if err := l.Exec(argv0, BuildArgv(opts), l.Environ()); err != nil {
		return fmt.Errorf("exec %s: %w", argv0, err)
	}
	return nil
}
