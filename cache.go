package md2html

import "sync"

// NameCache memoizes extension name canonicalization. Extension
// availability is static for the lifetime of a process, so entries are
// never invalidated; misses are cached too, so a misspelled name probes the
// registry only once.
//
// The zero value is not usable; create instances with NewNameCache.
type NameCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	canonical string
	found     bool
}

// NewNameCache creates an empty cache.
func NewNameCache() *NameCache {
	return &NameCache{entries: map[string]cacheEntry{}}
}

// Lookup returns the cached canonicalization of rawName, computing it with
// resolve on a miss. resolve runs outside the lock, so concurrent callers
// may probe the same name twice; that is benign and the first completed
// write wins.
func (c *NameCache) Lookup(rawName string, resolve func(string) (string, bool)) (string, bool) {
	c.mu.Lock()
	if e, ok := c.entries[rawName]; ok {
		c.mu.Unlock()
		return e.canonical, e.found
	}
	c.mu.Unlock()

	canonical, found := resolve(rawName)

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[rawName]; ok {
		return e.canonical, e.found
	}
	c.entries[rawName] = cacheEntry{canonical: canonical, found: found}
	return canonical, found
}

// Reset drops all entries. Intended for tests that register extensions
// between cases.
func (c *NameCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = map[string]cacheEntry{}
}

// Len returns the number of cached names; hits and misses both count.
func (c *NameCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// defaultNameCache is shared by all Markup instances unless one is
// injected via WithNameCache.
var defaultNameCache = NewNameCache()
