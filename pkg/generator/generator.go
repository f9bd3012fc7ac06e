// Package generator builds starter manifests from the template catalog.
package generator

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aimanifest/aimanifest/models"
)

// Options customizes a generated manifest.
type Options struct {
	SiteName    string
	Description string
	// BaseURL, when set, fills template URL placeholders (tip jar, feeds,
	// login pages) relative to the site.
	BaseURL string
}

// Generate fills the named template with the caller's options and stamps it
// with the current time. The returned manifest validates cleanly against the
// structural pass.
func Generate(template string, opts Options) (*models.Manifest, error) {
	build, ok := templates[template]
	if !ok {
		return nil, fmt.Errorf("unknown template %q (available: %s)", template, strings.Join(TemplateNames(), ", "))
	}

	manifest := build(opts)
	manifest.LastModified = time.Now().UTC().Format(time.RFC3339)
	if opts.SiteName != "" {
		manifest.SiteName = opts.SiteName
	}
	if opts.Description != "" {
		manifest.Description = opts.Description
	}
	return manifest, nil
}

// Marshal renders a manifest as indented JSON ready to be written to
// /.well-known/ai-manifest.json.
func Marshal(manifest *models.Manifest) ([]byte, error) {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	return append(data, '\n'), nil
}

// TemplateNames lists the available templates in stable order.
func TemplateNames() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
