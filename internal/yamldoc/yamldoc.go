// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package yamldoc reads and writes the canonical YAML form of the quality
// model.
package yamldoc

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/qmconvert/pkg/types"
)

// Load reads and parses a quality-model YAML document.
func Load(path string) (*types.QualityModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var m types.QualityModel
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &m, nil
}

// Save writes the model as a YAML document.
func Save(path string, m *types.QualityModel) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
