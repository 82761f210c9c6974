package tabular

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a tabular schema file (YAML or JSON) from the given path.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tabular schema %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML or JSON data into a Schema.
func Parse(data []byte) (*Schema, error) {
	var s Schema

	err := yaml.Unmarshal(data, &s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tabular schema: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(s.Fields)

	return &s, nil
}

// applyDefaults normalizes modes at every depth.
func applyDefaults(fields []Field) {
	for i := range fields {
		f := &fields[i]
		f.Mode = f.Mode.Normalize()
		applyDefaults(f.Fields)
	}
}

// Marshal serializes a Schema to YAML.
func Marshal(s *Schema) ([]byte, error) {
	return yaml.Marshal(s)
}

// MarshalJSON serializes a Schema to indented BigQuery-style JSON.
func MarshalJSON(s *Schema) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// WriteFile writes a Schema to the given path, as JSON for a .json extension
// and YAML otherwise.
func WriteFile(s *Schema, path string) error {
	var (
		data []byte
		err  error
	)

	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = MarshalJSON(s)
	} else {
		data, err = Marshal(s)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal tabular schema: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write tabular schema %s: %w", path, err)
	}

	return nil
}
