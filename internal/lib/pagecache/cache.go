// Package pagecache keeps decoded catalog pages for the lifetime of the
// process. Entries are never evicted.
package pagecache

import (
	"sync"

	"catalog_tgbot/internal/model"
)

type entry struct {
	page     model.Page
	resolved bool
}

type Cache struct {
	mu      sync.RWMutex
	entries map[int]entry
}

func New() *Cache {
	return &Cache{entries: make(map[int]entry)}
}

// MarkExists records that page n is known to exist without holding its data.
// It never downgrades a resolved entry.
func (c *Cache) MarkExists(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[n]; ok {
		return
	}
	c.entries[n] = entry{}
}

func (c *Cache) Set(page model.Page) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[page.Number] = entry{page: page, resolved: true}
}

// Get returns page n only when its data has been loaded.
func (c *Cache) Get(n int) (model.Page, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[n]
	if !ok || !e.resolved {
		return model.Page{}, false
	}
	return e.page, true
}

// Has reports whether page n is known, loaded or not.
func (c *Cache) Has(n int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.entries[n]
	return ok
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
