package remote

import (
	"sync"
	"time"

	"github.com/vmunix/vmanager/internal/catalog"
)

// categoryCache holds the category list until ttl passes. A zero ttl turns it
// off.
type categoryCache struct {
	mu         sync.RWMutex
	categories []catalog.Category
	expires    time.Time
	ttl        time.Duration
	now        func() time.Time
}

func newCategoryCache(ttl time.Duration) *categoryCache {
	return &categoryCache{ttl: ttl, now: time.Now}
}

func (c *categoryCache) get() ([]catalog.Category, bool) {
	if c == nil || c.ttl <= 0 {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.categories == nil || c.now().After(c.expires) {
		return nil, false
	}
	out := make([]catalog.Category, len(c.categories))
	copy(out, c.categories)
	return out, true
}

func (c *categoryCache) set(categories []catalog.Category) {
	if c == nil || c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.categories = make([]catalog.Category, len(categories))
	copy(c.categories, categories)
	c.expires = c.now().Add(c.ttl)
}
