package schema

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/aimanifest/aimanifest/pkg/fetcher"
)

const minimalSchema = `{"type": "object", "required": ["version"]}`

func TestLoad_CachesFetchedSchema(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		io.WriteString(w, minimalSchema)
	}))
	defer srv.Close()

	cache := NewCache()
	loader := NewLoader(fetcher.NewFetcher(), cache)

	first := loader.Load(srv.URL)
	if first.Fallback {
		t.Fatal("first.Fallback = true, want fetched schema")
	}
	if first.Schema == nil {
		t.Fatal("first.Schema = nil")
	}

	second := loader.Load(srv.URL)
	if second.Schema != first.Schema {
		t.Error("second load did not return the cached schema")
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Errorf("schema endpoint fetched %d times, want 1", got)
	}
	if cache.Len() != 1 {
		t.Errorf("cache.Len() = %d, want 1", cache.Len())
	}
}

func TestLoad_FallbackOnFetchFailure(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	loader := NewLoader(fetcher.NewFetcher(), nil)
	entry := loader.Load(srv.URL)

	if !entry.Fallback {
		t.Error("entry.Fallback = false, want true")
	}
	if entry.Schema == nil {
		t.Fatal("entry.Schema = nil, want built-in fallback")
	}

	// The fallback still enforces the mandatory fields.
	if err := entry.Schema.Validate(map[string]interface{}{}); err == nil {
		t.Error("fallback schema accepted an empty document")
	}

	// The fallback is cached too; the unreachable endpoint is not retried.
	loader.Load(srv.URL)
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Errorf("endpoint fetched %d times, want 1", got)
	}
}

func TestLoad_FallbackOnInvalidSchema(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"type": ["not", 42, "a schema"`)
	}))
	defer srv.Close()

	loader := NewLoader(fetcher.NewFetcher(), nil)
	entry := loader.Load(srv.URL)

	if !entry.Fallback {
		t.Error("entry.Fallback = false, want true for uncompilable schema")
	}
}

func TestLoad_SharedCacheAcrossLoaders(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		io.WriteString(w, minimalSchema)
	}))
	defer srv.Close()

	cache := NewCache()
	first := NewLoader(fetcher.NewFetcher(), cache)
	second := NewLoader(fetcher.NewFetcher(), cache)

	first.Load(srv.URL)
	second.Load(srv.URL)

	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Errorf("shared cache: endpoint fetched %d times, want 1", got)
	}
}
