// Package validator checks manifest documents: JSON parse, schema
// conformance against the remote (or fallback) schema, a hand-written
// structural pass, cross-field consistency warnings, and advisory
// suggestions.
package validator

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/aimanifest/aimanifest/internal/common"
	"github.com/aimanifest/aimanifest/models"
	"github.com/aimanifest/aimanifest/pkg/fetcher"
	"github.com/aimanifest/aimanifest/pkg/schema"
)

// WellKnownPath is the fixed manifest location relative to a site origin.
const WellKnownPath = "/.well-known/ai-manifest.json"

// Options configures a Validator.
type Options struct {
	// SchemaURL overrides the default schema endpoint for every call on
	// this validator. A per-call override still takes precedence.
	SchemaURL string
	// Timeout bounds schema and manifest fetches. Zero means the default.
	Timeout time.Duration
	// Cache is an optional shared schema cache. Nil gets a private one.
	Cache *schema.Cache
}

type Validator struct {
	fetcher   *fetcher.Fetcher
	loader    *schema.Loader
	schemaURL string
}

// New creates a Validator with default options.
func New() *Validator {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a Validator with explicit options.
func NewWithOptions(opts Options) *Validator {
	f := fetcher.NewFetcherWithTimeout(opts.Timeout)
	return &Validator{
		fetcher:   f,
		loader:    schema.NewLoader(f, opts.Cache),
		schemaURL: opts.SchemaURL,
	}
}

// Validate checks a manifest document. It never fails: every problem is
// captured in the returned result. schemaOverride, when non-empty, takes
// precedence over the validator's configured schema URL, which takes
// precedence over the default endpoint.
func (v *Validator) Validate(documentText string, schemaOverride string) *models.ValidationResult {
	result := &models.ValidationResult{
		Errors:      []string{},
		Warnings:    []string{},
		Suggestions: []string{},
	}

	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(documentText), &doc); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("invalid JSON: %v", err))
		return result
	}
	result.Document = doc

	// Best-effort typed decode for callers that want struct access. Shape
	// mismatches leave it nil; the raw document is still inspectable.
	var manifest models.Manifest
	if err := json.Unmarshal([]byte(documentText), &manifest); err == nil {
		result.Manifest = &manifest
	}

	sourceURL := schemaOverride
	if sourceURL == "" {
		sourceURL = v.schemaURL
	}
	entry := v.loader.Load(sourceURL)
	if entry.Fallback {
		result.Warnings = append(result.Warnings,
			"validated against built-in fallback schema; the authoritative schema could not be fetched")
	}
	if err := entry.Schema.Validate(doc); err != nil {
		result.Errors = append(result.Errors, schemaErrors(err)...)
	}

	checkStructure(doc, result)
	checkConsistency(doc, result)
	addSuggestions(doc, result)

	result.Valid = len(result.Errors) == 0
	return result
}

// ValidateURL fetches the well-known manifest for a site and validates it.
// The input may be a bare hostname; https:// is assumed when no scheme is
// present.
func (v *Validator) ValidateURL(rawURL string) *models.ValidationResult {
	result := &models.ValidationResult{
		Errors:      []string{},
		Warnings:    []string{},
		Suggestions: []string{},
	}

	origin, err := common.Origin(rawURL)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("invalid URL: %v", err))
		return result
	}

	manifestURL := origin + WellKnownPath
	resp, err := v.fetcher.Get(manifestURL, "application/json")
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("failed to fetch %s: %v", manifestURL, err))
		return result
	}
	if !resp.OK() {
		result.Errors = append(result.Errors, fmt.Sprintf("failed to fetch %s: HTTP %d", manifestURL, resp.StatusCode))
		return result
	}

	return v.Validate(string(resp.Body), "")
}
