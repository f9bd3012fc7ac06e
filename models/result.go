package models

// DiscoveryMethod identifies which strategy located a manifest.
type DiscoveryMethod string

const (
	MethodWellKnown  DiscoveryMethod = "well-known"
	MethodHTMLLink   DiscoveryMethod = "html-link"
	MethodHTTPHeader DiscoveryMethod = "http-header"
)

// ValidationResult is the outcome of validating one manifest document.
// It is constructed fresh per validation call and not mutated afterwards.
type ValidationResult struct {
	Valid       bool     `json:"valid" yaml:"valid"`
	Errors      []string `json:"errors" yaml:"errors"`
	Warnings    []string `json:"warnings" yaml:"warnings"`
	Suggestions []string `json:"suggestions" yaml:"suggestions"`

	// Manifest is the typed decode of the document. It is nil when the
	// document could not be parsed at all or its shape defeats strict
	// decoding (e.g. a string where an object belongs).
	Manifest *Manifest `json:"manifest,omitempty" yaml:"manifest,omitempty"`

	// Document is the raw parsed JSON, kept even for invalid manifests so
	// callers can inspect partially correct documents.
	Document map[string]interface{} `json:"-" yaml:"-"`
}

// CheckResult is the outcome of running the discovery pipeline against one
// website.
type CheckResult struct {
	URL         string            `json:"url" yaml:"url"`
	Found       bool              `json:"found" yaml:"found"`
	Method      DiscoveryMethod   `json:"method,omitempty" yaml:"method,omitempty"`
	ManifestURL string            `json:"manifestUrl,omitempty" yaml:"manifestUrl,omitempty"`
	StatusCode  int               `json:"statusCode,omitempty" yaml:"statusCode,omitempty"`
	Validation  *ValidationResult `json:"validation,omitempty" yaml:"validation,omitempty"`

	// Errors aggregates network-level failures from individual strategies.
	// Schema errors never appear here; those live in Validation.
	Errors []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}
