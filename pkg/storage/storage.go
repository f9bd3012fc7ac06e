// Package storage handles reading and writing manifest files on disk.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// WellKnownDir is the directory the init command writes manifests under,
// relative to the chosen output root.
const WellKnownDir = ".well-known"

// ManifestFileName is the on-disk manifest file name.
const ManifestFileName = "ai-manifest.json"

type Storage struct{}

// SaveManifest writes manifest content to
// <outputDir>/.well-known/ai-manifest.json, creating directories as needed,
// and returns the written path.
func (s *Storage) SaveManifest(outputDir string, content []byte) (string, error) {
	dir := filepath.Join(outputDir, WellKnownDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, ManifestFileName)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}
	return path, nil
}

// ReadFile loads a manifest document from disk.
func (s *Storage) ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return data, nil
}

// HasFile reports whether a file exists at the path.
func (s *Storage) HasFile(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil || !os.IsNotExist(err)
}
