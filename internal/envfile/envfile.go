// Where: internal/envfile/envfile.go
// What: Env file reading for container launches.
// Why: Pass .env contents to the container environment unmodified.
package envfile

import (
	"fmt"
	"sort"

	"github.com/joho/godotenv"
)

// Read parses an env file into a key/value map. The values are opaque to the
// launcher; nothing is validated or transformed.
func Read(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return vars, nil
}

// List renders a variable map as sorted KEY=VALUE entries, the form the
// Docker API expects.
func List(vars map[string]string) []string {
	out := make([]string, 0, len(vars))
	for k, v := range vars {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}

// Load reads an env file and returns its sorted KEY=VALUE entries.
func Load(path string) ([]string, error) {
	vars, err := Read(path)
	if err != nil {
		return nil, err
	}
	return List(vars), nil
}
