package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadBatchConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.yaml")
	content := []byte("urls:\n  - https://a.example.com\n  - https://b.example.com\nconcurrency: 3\ntimeout: 5s\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	config, err := LoadBatchConfig(path)
	if err != nil {
		t.Fatalf("LoadBatchConfig() error = %v", err)
	}

	if len(config.URLs) != 2 {
		t.Errorf("len(config.URLs) = %d, want 2", len(config.URLs))
	}
	if config.Concurrency != 3 {
		t.Errorf("config.Concurrency = %d, want 3", config.Concurrency)
	}
	if config.Timeout != "5s" {
		t.Errorf("config.Timeout = %q, want %q", config.Timeout, "5s")
	}
}

func TestLoadBatchConfig_MissingFile(t *testing.T) {
	if _, err := LoadBatchConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadBatchConfig() error = nil, want read error")
	}
}

func TestLoadBatchConfig_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("urls: [unclosed"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadBatchConfig(path); err == nil {
		t.Error("LoadBatchConfig() error = nil, want parse error")
	}
}
