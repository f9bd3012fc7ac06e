package common

import (
	"fmt"
	"net/url"
	"strings"
)

// SanitizeURL performs basic cleanup on URLs to handle common copy-paste issues.
// Removes whitespace, trailing punctuation, and wrapping characters.
func SanitizeURL(rawURL string) string {
	cleaned := strings.TrimSpace(rawURL)

	// Remove common trailing punctuation from copy-paste errors
	// Example: "https://example.com," -> "https://example.com"
	trailingChars := []string{",", ".", ")", "}", "]", "\"", "'", ">", ";"}
	for _, char := range trailingChars {
		cleaned = strings.TrimSuffix(cleaned, char)
	}

	leadingChars := []string{"(", "[", "<", "\"", "'"}
	for _, char := range leadingChars {
		cleaned = strings.TrimPrefix(cleaned, char)
	}

	return strings.TrimSpace(cleaned)
}

// NormalizeURL prepends https:// when the input carries no scheme, so bare
// hostnames like "example.com" become fetchable URLs.
func NormalizeURL(rawURL string) string {
	cleaned := SanitizeURL(rawURL)
	if cleaned == "" {
		return cleaned
	}
	if !strings.HasPrefix(cleaned, "http://") && !strings.HasPrefix(cleaned, "https://") {
		cleaned = "https://" + cleaned
	}
	return cleaned
}

// Origin normalizes the input and reduces it to scheme://host.
func Origin(rawURL string) (string, error) {
	normalized := NormalizeURL(rawURL)
	parsed, err := url.Parse(normalized)
	if err != nil {
		return "", fmt.Errorf("failed to parse URL %q: %w", rawURL, err)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("URL %q has no host", rawURL)
	}
	return fmt.Sprintf("%s://%s", parsed.Scheme, parsed.Host), nil
}

// IsAbsoluteURL reports whether s is a syntactically valid absolute http(s)
// URL with a non-empty host.
func IsAbsoluteURL(s string) bool {
	if strings.Contains(s, " ") {
		return false
	}
	parsed, err := url.Parse(s)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	if parsed.Host == "" {
		return false
	}
	// Catch malformed hosts like "example.com{}" that net/url tolerates.
	if strings.ContainsAny(parsed.Host, "{}[]<>\"'") {
		return false
	}
	return true
}

// ResolveReference resolves a possibly relative reference against a base URL.
func ResolveReference(base, ref string) (string, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("failed to parse base URL: %w", err)
	}
	refURL, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return "", fmt.Errorf("failed to parse reference %q: %w", ref, err)
	}
	return baseURL.ResolveReference(refURL).String(), nil
}
