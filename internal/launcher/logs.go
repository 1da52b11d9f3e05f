// Where: internal/launcher/logs.go
// What: Container log streaming.
// Why: Surface the server's output without a docker CLI round trip.
package launcher

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/pkg/stdcopy"
)

// LogsOptions controls how container logs are streamed.
type LogsOptions struct {
	Follow     bool
	Tail       int
	Timestamps bool
}

// StreamLogs copies the named container's log streams to the given writers.
// The container never gets a TTY, so the multiplexed stream is demuxed into
// stdout and stderr.
func StreamLogs(ctx context.Context, client DockerClient, name string, opts LogsOptions, stdout, stderr io.Writer) error {
	ctr, err := FindContainer(ctx, client, name)
	if err != nil {
		return err
	}
	if ctr == nil {
		return fmt.Errorf("no container named %q", name)
	}

	logOpts := container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Follow:     opts.Follow,
		Timestamps: opts.Timestamps,
	}
	if opts.Tail > 0 {
		logOpts.Tail = strconv.Itoa(opts.Tail)
	}

	reader, err := client.ContainerLogs(ctx, ctr.ID, logOpts)
	if err != nil {
		return fmt.Errorf("logs for container %s: %w", name, err)
	}
	defer reader.Close()

	_, err = stdcopy.StdCopy(stdout, stderr, reader)
	return err
}
