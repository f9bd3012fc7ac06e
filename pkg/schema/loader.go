package schema

import (
	"bytes"
	"strings"

	"github.com/aimanifest/aimanifest/pkg/fetcher"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// DefaultSchemaURL is the protocol-maintained schema endpoint.
const DefaultSchemaURL = "https://schema.aimanifest.org/v1/manifest.schema.json"

// fallbackSchema covers only the four mandatory top-level fields and the
// four mandatory policy booleans. It is substituted whenever the remote
// schema cannot be fetched or compiled.
const fallbackSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["version", "siteName", "lastModified", "defaultUsagePolicy"],
  "properties": {
    "version": {"type": "string"},
    "siteName": {"type": "string"},
    "lastModified": {"type": "string"},
    "defaultUsagePolicy": {
      "type": "object",
      "required": ["canSummarize", "canTrain", "canQuote", "mustAttribute"],
      "properties": {
        "canSummarize": {"type": "boolean"},
        "canTrain": {"type": "boolean"},
        "canQuote": {"type": "boolean"},
        "mustAttribute": {"type": "boolean"}
      }
    }
  }
}`

// Loader fetches and compiles schemas, consulting a shared Cache first.
type Loader struct {
	fetcher *fetcher.Fetcher
	cache   *Cache
}

// NewLoader creates a Loader. A nil cache gets a private one.
func NewLoader(f *fetcher.Fetcher, cache *Cache) *Loader {
	if cache == nil {
		cache = NewCache()
	}
	return &Loader{fetcher: f, cache: cache}
}

// Load resolves the schema for sourceURL. Fetch or compile failures degrade
// silently to the built-in fallback; the resolved entry (fallback or not) is
// cached under the requested URL so later calls skip network I/O.
func (l *Loader) Load(sourceURL string) Entry {
	if sourceURL == "" {
		sourceURL = DefaultSchemaURL
	}

	if entry, ok := l.cache.Get(sourceURL); ok {
		return entry
	}

	entry := l.resolve(sourceURL)
	l.cache.Set(sourceURL, entry)
	return entry
}

func (l *Loader) resolve(sourceURL string) Entry {
	resp, err := l.fetcher.Get(sourceURL, "application/json")
	if err != nil || !resp.OK() {
		return Entry{Schema: compileFallback(), Fallback: true}
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(sourceURL, bytes.NewReader(resp.Body)); err != nil {
		return Entry{Schema: compileFallback(), Fallback: true}
	}
	compiled, err := compiler.Compile(sourceURL)
	if err != nil {
		return Entry{Schema: compileFallback(), Fallback: true}
	}
	return Entry{Schema: compiled}
}

func compileFallback() *jsonschema.Schema {
	// The fallback is a compile-time constant; failure here is a programming
	// error, so MustCompile semantics are safe.
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("fallback.schema.json", strings.NewReader(fallbackSchema)); err != nil {
		panic(err)
	}
	return compiler.MustCompile("fallback.schema.json")
}
