package assets

import (
	"sync"

	"go.trai.ch/postpub/internal/core/domain"
	"go.trai.ch/postpub/internal/core/ports"
)

var _ ports.BundleCache = (*Cache)(nil)

// Cache is the in-memory bundle cache of one build.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]string)}
}

// CacheKey identifies a bundle within a build.
func CacheKey(staticPath string, kind domain.AssetKind, name string) string {
	return staticPath + "|" + kind.String() + "|" + name
}

// Lookup returns the recorded output path for key.
func (c *Cache) Lookup(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out, ok := c.entries[key]
	return out, ok
}

// Record stores the output path for key.
func (c *Cache) Record(key, outputPath string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = outputPath
}

// Reset drops every entry.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]string)
}

// Len returns the number of recorded bundles.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
