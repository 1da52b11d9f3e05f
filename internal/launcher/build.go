// Where: internal/launcher/build.go
// What: Image build helper.
// Why: Build the server image the way the original build script did.
package launcher

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// BuildOptions contains configuration for building the server image.
type BuildOptions struct {
	ContextDir string
	Dockerfile string
	Ref        string
	NoCache    bool
	Pull       bool
	Verbose    bool
}

// BuildImage runs docker build for the configured image. Failure modes are
// delegated entirely to the build tool; the first failing invocation aborts.
// Quiet builds capture output and replay it only on failure.
func BuildImage(ctx context.Context, runner CommandRunner, opts BuildOptions) error {
	if runner == nil {
		return fmt.Errorf("command runner is nil")
	}
	if strings.TrimSpace(opts.Ref) == "" {
		return fmt.Errorf("image reference is required")
	}

	contextDir := opts.ContextDir
	if contextDir == "" {
		contextDir = "."
	}

	args := []string{"build", "-t", opts.Ref}
	if opts.Dockerfile != "" {
		args = append(args, "-f", opts.Dockerfile)
	}
	if opts.NoCache {
		args = append(args, "--no-cache")
	}
	if opts.Pull {
		args = append(args, "--pull")
	}
	args = append(args, contextDir)

	if opts.Verbose {
		return runner.Run(ctx, contextDir, "docker", args...)
	}
	output, err := runner.RunOutput(ctx, contextDir, "docker", args...)
	if err != nil {
		if len(output) > 0 {
			_, _ = os.Stderr.Write(output)
		}
		return fmt.Errorf("image build failed: %w", err)
	}
	return nil
}
