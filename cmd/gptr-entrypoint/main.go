// Where: cmd/gptr-entrypoint/main.go
// What: In-container entrypoint.
// Why: Run as process 1 and hand itself over to the server via exec.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/researchkit/gptrctl/internal/entrypoint"
)

// CLI defines the entrypoint flags. Everything after the flags is forwarded
// verbatim to the server process.
type CLI struct {
	Host    string   `default:"0.0.0.0" help:"Host the server binds to"`
	Port    int      `default:"11250" help:"Port the server binds to"`
	AppRoot string   `name:"app-root" default:"/app" help:"Application root to change into"`
	Server  string   `default:"python backend/run_server.py" help:"Server command"`
	Args    []string `arg:"" optional:"" passthrough:"" help:"Extra arguments forwarded to the server"`
}

func main() {
	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if _, err := parser.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	launcher := entrypoint.New()
	err = launcher.Launch(entrypoint.Options{
		Server:  strings.Fields(cli.Server),
		Host:    cli.Host,
		Port:    cli.Port,
		AppRoot: cli.AppRoot,
		Extra:   cli.Args,
	})
	// Launch only returns on failure; on success the server has replaced
	// this process.
	if err == nil {
		err = fmt.Errorf("exec returned without error")
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
