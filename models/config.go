package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BatchConfig holds runtime configuration for batch check operations.
// Values come from CLI flags or an optional YAML config file.
type BatchConfig struct {
	URLs        []string `yaml:"urls"`
	Concurrency int      `yaml:"concurrency"`
	Timeout     string   `yaml:"timeout"`
	SchemaURL   string   `yaml:"schemaUrl"`
}

// LoadBatchConfig reads a BatchConfig from a YAML file.
func LoadBatchConfig(path string) (*BatchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config BatchConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &config, nil
}
