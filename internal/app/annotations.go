package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"vn-ohlcv/internal/model"
)

// LoadAnnotations reads the risk profile and market context from a YAML file.
// An empty path yields empty annotations.
func LoadAnnotations(path string) (model.Annotations, error) {
	var ann model.Annotations
	if path == "" {
		return ann, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ann, fmt.Errorf("read annotations: %w", err)
	}
	if err := yaml.Unmarshal(data, &ann); err != nil {
		return ann, fmt.Errorf("parse annotations %s: %w", path, err)
	}
	return ann, nil
}
