// Package schema resolves the manifest JSON Schema: remote fetch with an
// in-memory cache, degrading to a built-in minimal schema when the source
// is unreachable.
package schema

import (
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Entry is a resolved schema plus whether it is the built-in fallback rather
// than the authoritative remote document.
type Entry struct {
	Schema   *jsonschema.Schema
	Fallback bool
}

// Cache maps schema source URLs to resolved schemas for the lifetime of the
// process. It is shared by reference across validators that opt in; a race
// between two loaders at worst repeats one fetch.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewCache creates an empty schema cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]Entry)}
}

// Get retrieves the cached entry for a source URL.
func (c *Cache) Get(sourceURL string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[sourceURL]
	return entry, ok
}

// Set stores a resolved schema under its source URL.
func (c *Cache) Set(sourceURL string, entry Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[sourceURL] = entry
}

// Len returns the number of cached schemas.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
