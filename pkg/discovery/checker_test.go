package discovery

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aimanifest/aimanifest/models"
	"github.com/aimanifest/aimanifest/pkg/validator"
)

const validManifest = `{
  "version": "1.0.0",
  "siteName": "Test Site",
  "lastModified": "2025-07-22T15:30:00Z",
  "defaultUsagePolicy": {
    "canSummarize": true,
    "canTrain": false,
    "canQuote": true,
    "mustAttribute": false
  }
}`

const testSchema = `{
  "type": "object",
  "required": ["version", "siteName", "lastModified", "defaultUsagePolicy"]
}`

// newTestChecker wires the checker's validator to a local schema server so
// tests never touch the network.
func newTestChecker(t *testing.T) *Checker {
	t.Helper()
	schemaSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, testSchema)
	}))
	t.Cleanup(schemaSrv.Close)

	return NewCheckerWithOptions(Options{
		Validator: validator.NewWithOptions(validator.Options{SchemaURL: schemaSrv.URL}),
	})
}

func TestCheckWebsite_WellKnownPriority(t *testing.T) {
	// The site exposes a well-known manifest AND an HTML link; the
	// well-known strategy must win.
	site := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case validator.WellKnownPath:
			io.WriteString(w, validManifest)
		case "/":
			io.WriteString(w, `<html><head><link rel="ai-manifest" href="/alt.json"></head></html>`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer site.Close()

	result := newTestChecker(t).CheckWebsite(site.URL)

	if !result.Found {
		t.Fatalf("result.Found = false; errors = %v", result.Errors)
	}
	if result.Method != models.MethodWellKnown {
		t.Errorf("result.Method = %q, want %q", result.Method, models.MethodWellKnown)
	}
	if !strings.HasSuffix(result.ManifestURL, validator.WellKnownPath) {
		t.Errorf("result.ManifestURL = %q, want well-known path", result.ManifestURL)
	}
	if result.Validation == nil || !result.Validation.Valid {
		t.Errorf("result.Validation = %+v, want valid", result.Validation)
	}
}

func TestCheckWebsite_HTMLLinkFallback(t *testing.T) {
	site := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			io.WriteString(w, `<html><head><link rel="ai-manifest" href="/policies/manifest.json"></head><body>hi</body></html>`)
		case "/policies/manifest.json":
			io.WriteString(w, validManifest)
		default:
			http.NotFound(w, r)
		}
	}))
	defer site.Close()

	result := newTestChecker(t).CheckWebsite(site.URL)

	if !result.Found {
		t.Fatalf("result.Found = false; errors = %v", result.Errors)
	}
	if result.Method != models.MethodHTMLLink {
		t.Errorf("result.Method = %q, want %q", result.Method, models.MethodHTMLLink)
	}
	if !strings.HasSuffix(result.ManifestURL, "/policies/manifest.json") {
		t.Errorf("result.ManifestURL = %q, want resolved link target", result.ManifestURL)
	}
	if result.Validation == nil || !result.Validation.Valid {
		t.Errorf("result.Validation = %+v, want valid", result.Validation)
	}
}

func TestCheckWebsite_HTMLLinkSkipsBrokenTarget(t *testing.T) {
	site := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			io.WriteString(w, `<html><head>
				<link rel="ai-manifest" href="/missing.json">
				<link rel="ai-manifest" href="/real.json">
			</head></html>`)
		case "/real.json":
			io.WriteString(w, validManifest)
		default:
			http.NotFound(w, r)
		}
	}))
	defer site.Close()

	result := newTestChecker(t).CheckWebsite(site.URL)

	if !result.Found {
		t.Fatalf("result.Found = false; errors = %v", result.Errors)
	}
	if !strings.HasSuffix(result.ManifestURL, "/real.json") {
		t.Errorf("result.ManifestURL = %q, want the second link target", result.ManifestURL)
	}
}

func TestCheckWebsite_LinkHeaderFallback(t *testing.T) {
	site := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			w.Header().Set("Link", `</hdr-manifest.json>; rel="ai-manifest"`)
			io.WriteString(w, `<html><head><title>no links here</title></head></html>`)
		case "/hdr-manifest.json":
			io.WriteString(w, validManifest)
		default:
			http.NotFound(w, r)
		}
	}))
	defer site.Close()

	result := newTestChecker(t).CheckWebsite(site.URL)

	if !result.Found {
		t.Fatalf("result.Found = false; errors = %v", result.Errors)
	}
	if result.Method != models.MethodHTTPHeader {
		t.Errorf("result.Method = %q, want %q", result.Method, models.MethodHTTPHeader)
	}
	if !strings.HasSuffix(result.ManifestURL, "/hdr-manifest.json") {
		t.Errorf("result.ManifestURL = %q, want resolved header target", result.ManifestURL)
	}
}

func TestCheckWebsite_NothingFound(t *testing.T) {
	site := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			io.WriteString(w, `<html><head></head><body>plain site</body></html>`)
			return
		}
		http.NotFound(w, r)
	}))
	defer site.Close()

	result := newTestChecker(t).CheckWebsite(site.URL)

	if result.Found {
		t.Errorf("result.Found = true, want false")
	}
	if result.Validation != nil {
		t.Errorf("result.Validation = %+v, want nil", result.Validation)
	}
	if result.Method != "" {
		t.Errorf("result.Method = %q, want empty", result.Method)
	}
}

func TestCheckWebsite_WellKnownServerError(t *testing.T) {
	// A non-404 error at the well-known location means the location exists
	// but is broken: found, invalid, validator never consulted.
	site := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == validator.WellKnownPath {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		t.Errorf("unexpected request to %s after terminal well-known result", r.URL.Path)
	}))
	defer site.Close()

	result := newTestChecker(t).CheckWebsite(site.URL)

	if !result.Found {
		t.Fatal("result.Found = false, want true")
	}
	if result.StatusCode != http.StatusInternalServerError {
		t.Errorf("result.StatusCode = %d, want 500", result.StatusCode)
	}
	if result.Validation == nil || result.Validation.Valid {
		t.Fatalf("result.Validation = %+v, want invalid", result.Validation)
	}
	if len(result.Validation.Errors) != 1 || !strings.Contains(result.Validation.Errors[0], "HTTP 500") {
		t.Errorf("validation errors = %v, want single HTTP 500 entry", result.Validation.Errors)
	}
}

func TestCheckWebsite_FoundButInvalid(t *testing.T) {
	site := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == validator.WellKnownPath {
			io.WriteString(w, `{"version":"1.0"}`)
			return
		}
		http.NotFound(w, r)
	}))
	defer site.Close()

	result := newTestChecker(t).CheckWebsite(site.URL)

	if !result.Found {
		t.Fatal("result.Found = false, want true")
	}
	if result.Validation == nil {
		t.Fatal("result.Validation = nil")
	}
	if result.Validation.Valid {
		t.Errorf("result.Validation.Valid = true, want false; errors = %v", result.Validation.Errors)
	}
}

func TestCheckWebsite_UnreachableHost(t *testing.T) {
	result := newTestChecker(t).CheckWebsite("http://127.0.0.1:1")

	if result.Found {
		t.Error("result.Found = true, want false")
	}
	if len(result.Errors) == 0 {
		t.Error("result.Errors is empty, want recorded network errors")
	}
}

func TestAnalyzeManifest(t *testing.T) {
	manifest := fmt.Sprintf(`{
	  "version": "2.1.0",
	  "siteName": "Analyzed",
	  "description": "A site with everything declared",
	  "lastModified": "2025-07-22T15:30:00Z",
	  "defaultUsagePolicy": {
	    "canSummarize": true, "canTrain": false, "canQuote": true,
	    "mustAttribute": true, "attributionTemplate": "From {siteName}"
	  },
	  "monetization": {
	    "tipjar": "https://tips.example.com",
	    "services": [{"name": "consulting", "url": "https://example.com/hire"}]
	  },
	  "visibility": {
	    "aiDiscovery": "enhanced",
	    "boostScore": 0.9,
	    "preferredQueries": ["%s"]
	  }
	}`, "best example site")

	site := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == validator.WellKnownPath {
			io.WriteString(w, manifest)
			return
		}
		http.NotFound(w, r)
	}))
	defer site.Close()

	summary, err := newTestChecker(t).AnalyzeManifest(site.URL)
	if err != nil {
		t.Fatalf("AnalyzeManifest() error = %v", err)
	}

	if summary.Basic.SiteName != "Analyzed" {
		t.Errorf("summary.Basic.SiteName = %q, want %q", summary.Basic.SiteName, "Analyzed")
	}
	if !summary.UsagePolicy.MustAttribute {
		t.Error("summary.UsagePolicy.MustAttribute = false, want true")
	}
	if !summary.Monetization.HasMonetization {
		t.Error("summary.Monetization.HasMonetization = false, want true")
	}
	if summary.Monetization.ServiceCount != 1 {
		t.Errorf("summary.Monetization.ServiceCount = %d, want 1", summary.Monetization.ServiceCount)
	}
	if !summary.Visibility.HasVisibility {
		t.Error("summary.Visibility.HasVisibility = false, want true")
	}
	if summary.Visibility.AIDiscovery != "enhanced" {
		t.Errorf("summary.Visibility.AIDiscovery = %q, want %q", summary.Visibility.AIDiscovery, "enhanced")
	}
}

func TestAnalyzeManifest_NotFound(t *testing.T) {
	site := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			io.WriteString(w, "<html></html>")
			return
		}
		http.NotFound(w, r)
	}))
	defer site.Close()

	if _, err := newTestChecker(t).AnalyzeManifest(site.URL); err == nil {
		t.Error("AnalyzeManifest() error = nil, want not-found error")
	}
}
