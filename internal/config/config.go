// Where: internal/config/config.go
// What: Launcher configuration load/save helpers.
// Why: Keep every value the shell scripts hard-coded in one validated place.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the per-project configuration file name.
const FileName = "launcher.yaml"

// Config externalizes the image, container, and network literals that the
// original deployment scripts embedded in three different files.
type Config struct {
	Image     ImageConfig     `yaml:"image"`
	Container ContainerConfig `yaml:"container"`
	Server    ServerConfig    `yaml:"server"`
	Network   NetworkConfig   `yaml:"network"`
	Mounts    []Mount         `yaml:"mounts,omitempty"`
	EnvFile   string          `yaml:"env_file,omitempty"`
	Build     BuildConfig     `yaml:"build"`
}

// ImageConfig names the image to build and run.
type ImageConfig struct {
	Repository string `yaml:"repository"`
	Tag        string `yaml:"tag"`
}

// Ref returns the full image reference.
func (i ImageConfig) Ref() string {
	tag := i.Tag
	if tag == "" {
		tag = "latest"
	}
	return i.Repository + ":" + tag
}

// ContainerConfig describes the single managed container.
type ContainerConfig struct {
	Name    string `yaml:"name"`
	Restart string `yaml:"restart"`
	AppRoot string `yaml:"app_root"`
}

// ServerConfig describes how the in-container server process is invoked.
// Port is the authoritative container-side port: the entrypoint flag, the
// scaffolded EXPOSE, and the publish target all derive from it.
type ServerConfig struct {
	Host string   `yaml:"host"`
	Port int      `yaml:"port"`
	Args []string `yaml:"args,omitempty"`
}

// NetworkConfig describes the host side of the published port.
type NetworkConfig struct {
	HostIP   string `yaml:"host_ip,omitempty"`
	HostPort int    `yaml:"host_port"`
}

// Mount is a host directory bind-mounted into the container.
type Mount struct {
	Source   string `yaml:"source"`
	Target   string `yaml:"target"`
	ReadOnly bool   `yaml:"read_only,omitempty"`
}

// BuildConfig locates the Dockerfile and build context.
type BuildConfig struct {
	Dockerfile string `yaml:"dockerfile"`
	Context    string `yaml:"context"`
}

// Default returns the configuration matching the original deployment scripts.
func Default() Config {
	return Config{
		Image:     ImageConfig{Repository: "gpt-researcher", Tag: "latest"},
		Container: ContainerConfig{Name: "gpt-researcher", Restart: "always", AppRoot: "/app"},
		Server:    ServerConfig{Host: "0.0.0.0", Port: 11250},
		Network:   NetworkConfig{HostPort: 11250},
		Mounts: []Mount{
			{Source: "my-docs", Target: "/app/my-docs"},
			{Source: "outputs", Target: "/app/outputs"},
		},
		EnvFile: ".env",
		Build:   BuildConfig{Dockerfile: "Dockerfile", Context: "."},
	}
}

// Path returns the config file path for a project directory.
func Path(projectDir string) string {
	return filepath.Join(projectDir, FileName)
}

// Load reads and parses a launcher configuration file. Fields omitted from
// the file keep their defaults.
func Load(path string) (Config, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads the project configuration when present and falls back
// to defaults when the file does not exist.
func LoadOrDefault(projectDir string) (Config, error) {
	path := Path(projectDir)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, err
	}
	return Load(path)
}

// Save writes a configuration to the specified path.
func Save(path string, cfg Config) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, payload, 0o644)
}

var restartPolicies = map[string]bool{
	"no":             true,
	"always":         true,
	"unless-stopped": true,
	"on-failure":     true,
}

// Validate checks the named fields the run invocation depends on.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Image.Repository) == "" {
		return fmt.Errorf("image.repository is required")
	}
	if strings.TrimSpace(c.Container.Name) == "" {
		return fmt.Errorf("container.name is required")
	}
	if c.Container.Restart != "" && !restartPolicies[c.Container.Restart] {
		return fmt.Errorf("container.restart: unsupported policy %q", c.Container.Restart)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port: %d out of range", c.Server.Port)
	}
	if c.Network.HostPort < 1 || c.Network.HostPort > 65535 {
		return fmt.Errorf("network.host_port: %d out of range", c.Network.HostPort)
	}
	for _, m := range c.Mounts {
		if strings.TrimSpace(m.Source) == "" || strings.TrimSpace(m.Target) == "" {
			return fmt.Errorf("mounts: source and target are required")
		}
	}
	return nil
}

// ResolvePath anchors a relative path at the project directory, mirroring the
// original scripts' repo-root anchoring for mounts and the env file.
func ResolvePath(projectDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(projectDir, path)
}
