package common

import "testing"

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare hostname", "example.com", "https://example.com"},
		{"already https", "https://example.com", "https://example.com"},
		{"already http", "http://example.com", "http://example.com"},
		{"with path", "example.com/about", "https://example.com/about"},
		{"whitespace", "  example.com  ", "https://example.com"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeURL(tt.in); got != tt.want {
				t.Errorf("NormalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestOrigin(t *testing.T) {
	got, err := Origin("example.com/deep/path?q=1")
	if err != nil {
		t.Fatalf("Origin() error = %v", err)
	}
	if want := "https://example.com"; got != want {
		t.Errorf("Origin() = %q, want %q", got, want)
	}

	if _, err := Origin(""); err == nil {
		t.Error("Origin(\"\") expected error, got nil")
	}
}

func TestIsAbsoluteURL(t *testing.T) {
	valid := []string{
		"https://example.com",
		"http://example.com/path",
		"https://example.com/a?b=c#d",
	}
	for _, u := range valid {
		if !IsAbsoluteURL(u) {
			t.Errorf("IsAbsoluteURL(%q) = false, want true", u)
		}
	}

	invalid := []string{
		"",
		"not a url",
		"/relative/path",
		"ftp://example.com/file",
		"example.com",
		"https://",
		"https://example.com{}/x",
	}
	for _, u := range invalid {
		if IsAbsoluteURL(u) {
			t.Errorf("IsAbsoluteURL(%q) = true, want false", u)
		}
	}
}

func TestResolveReference(t *testing.T) {
	got, err := ResolveReference("https://example.com/", "/.well-known/ai-manifest.json")
	if err != nil {
		t.Fatalf("ResolveReference() error = %v", err)
	}
	if want := "https://example.com/.well-known/ai-manifest.json"; got != want {
		t.Errorf("ResolveReference() = %q, want %q", got, want)
	}

	got, err = ResolveReference("https://example.com/", "https://cdn.example.com/manifest.json")
	if err != nil {
		t.Fatalf("ResolveReference() error = %v", err)
	}
	if want := "https://cdn.example.com/manifest.json"; got != want {
		t.Errorf("ResolveReference() absolute = %q, want %q", got, want)
	}
}
