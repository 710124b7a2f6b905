package pointer

import (
	"fmt"
	"sync"

	"github.com/instancekit/jsonv"
)

// Fetcher retrieves and parses the document identified by an absolute,
// fragment-stripped URI. Implementations typically wrap an HTTP client
// or a filesystem/map-backed loader for tests.
type Fetcher func(documentURI string) (*jsonv.Value, error)

// Cache memoizes documents by absolute URI so a $ref to a
// previously-seen document does not refetch or reparse it.
type Cache struct {
	mu      sync.RWMutex
	fetch   Fetcher
	entries map[string]*jsonv.Value
}

// NewCache builds a Cache that delegates misses to fetch.
func NewCache(fetch Fetcher) *Cache {
	return &Cache{fetch: fetch, entries: map[string]*jsonv.Value{}}
}

// Get returns the parsed document for the given absolute URI (fragment
// stripped internally), fetching and caching it on first use.
func (c *Cache) Get(uri string) (*jsonv.Value, error) {
	key := DocumentURI(uri)

	c.mu.RLock()
	doc, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return doc, nil
	}

	if c.fetch == nil {
		return nil, fmt.Errorf("%w: no fetcher configured for %q", ErrFetchFailed, key)
	}
	doc, err := c.fetch(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	c.mu.Lock()
	c.entries[key] = doc
	c.mu.Unlock()
	return doc, nil
}

// Put preloads a document into the cache, useful for tests or for
// registering the root document under its own URI before expansion.
func (c *Cache) Put(uri string, doc *jsonv.Value) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[DocumentURI(uri)] = doc
}
