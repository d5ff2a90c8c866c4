package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// GenerateSchema returns the JSON schema of the config file.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:               "toml",
		RequiredFromJSONSchemaTags: true,
	}
	schema := r.Reflect(&Config{})
	schema.ID = "https://github.com/oneuniverse/onboard/config.schema.json"
	schema.Title = "onboard configuration"
	schema.Description = "Configuration of the One Universe permission onboarding"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// WriteSchemaFile writes config.schema.json next to the config file.
func WriteSchemaFile(dir string) (string, error) {
	data, err := GenerateSchema()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, schemaName)
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return path, nil
}
