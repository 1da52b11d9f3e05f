// Where: internal/config/schema.go
// What: JSON-schema validation for launcher.yaml.
// Why: Catch malformed config documents before any docker invocation.
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"
)

//go:embed launcher.schema.json
var schemaText string

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// ValidateSchema validates a raw launcher.yaml document against the embedded
// schema. The YAML is converted to JSON first so the schema vocabulary
// applies directly.
func ValidateSchema(content []byte) error {
	sch, err := loadSchema()
	if err != nil {
		return err
	}

	jsonData, err := yaml.YAMLToJSON(content)
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}

	return sch.Validate(document)
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = jsonschema.CompileString("launcher.schema.json", schemaText)
	})
	return compiledSchema, schemaErr
}
