// Where: internal/scaffold/scaffold.go
// What: Render project files for the init command.
// Why: Generate the Dockerfile and config the original repo checked in.
package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/researchkit/gptrctl/internal/config"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

type dockerfileData struct {
	Host    string
	Port    int
	AppRoot string
}

type envExampleData struct {
	DocPath string
}

// RenderDockerfile produces the two-stage Dockerfile for the server image.
// The entrypoint flags and EXPOSE both derive from the configured port.
func RenderDockerfile(cfg config.Config) (string, error) {
	return renderTemplate("Dockerfile.tmpl", dockerfileData{
		Host:    cfg.Server.Host,
		Port:    cfg.Server.Port,
		AppRoot: cfg.Container.AppRoot,
	})
}

// RenderLauncherConfig produces the launcher.yaml document.
func RenderLauncherConfig(cfg config.Config) (string, error) {
	return renderTemplate("launcher.yaml.tmpl", cfg)
}

// RenderEnvExample produces the .env.example stub.
func RenderEnvExample(cfg config.Config) (string, error) {
	data := envExampleData{}
	if len(cfg.Mounts) > 0 {
		data.DocPath = cfg.Mounts[0].Target
	}
	return renderTemplate("env.example.tmpl", data)
}

// Write renders all scaffold files into the project directory and creates
// the relative mount source directories. Existing files are refused unless
// force is set.
func Write(dir string, cfg config.Config, force bool) ([]string, error) {
	type output struct {
		name   string
		render func(config.Config) (string, error)
	}
	outputs := []output{
		{"Dockerfile", RenderDockerfile},
		{config.FileName, RenderLauncherConfig},
		{".env.example", RenderEnvExample},
	}

	var created []string
	for _, out := range outputs {
		path := filepath.Join(dir, out.name)
		if !force {
			if _, err := os.Stat(path); err == nil {
				return created, fmt.Errorf("refusing to overwrite %s (use --force)", path)
			}
		}

		content, err := out.render(cfg)
		if err != nil {
			return created, fmt.Errorf("render %s: %w", out.name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return created, err
		}
		created = append(created, out.name)
	}

	for _, m := range cfg.Mounts {
		if filepath.IsAbs(m.Source) {
			continue
		}
		if err := os.MkdirAll(filepath.Join(dir, m.Source), 0o755); err != nil {
			return created, err
		}
	}

	return created, nil
}

func renderTemplate(name string, data any) (string, error) {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return strings.TrimLeft(buf.String(), "\n"), nil
}

func loadTemplate(name string) (*template.Template, error) {
	if cached, ok := templateCache.Load(name); ok {
		return cached.(*template.Template), nil
	}

	payload, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Parse(string(payload))
	if err != nil {
		return nil, err
	}

	templateCache.Store(name, tmpl)
	return tmpl, nil
}
