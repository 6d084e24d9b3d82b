package memory

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache keys are "<resource>:<id>" so mutations can invalidate a whole
// resource family without tracking individual entries.
const (
	KeyLibrary           = "library"
	KeyConversationList  = "conversation-list"
	PrefixConversation   = "conversation:"
	PrefixDocAnnotations = "doc-annotations:"
)

// ViewCache is a TTL read-through cache for page-level fetches. Entries
// are invalidated explicitly by mutating operations; expiry only covers
// staleness from the backend changing underneath us.
type ViewCache struct {
	cache *gocache.Cache
}

func NewViewCache(ttl, cleanupInterval time.Duration) *ViewCache {
	return &ViewCache{
		cache: gocache.New(ttl, cleanupInterval),
	}
}

func (c *ViewCache) Get(key string) (interface{}, bool) {
	return c.cache.Get(key)
}

func (c *ViewCache) Set(key string, value interface{}) {
	c.cache.Set(key, value, gocache.DefaultExpiration)
}

func (c *ViewCache) Invalidate(keys ...string) {
	for _, key := range keys {
		c.cache.Delete(key)
	}
}

// Flush drops every cached view. Used after bulk imports, where any
// listing may have changed.
func (c *ViewCache) Flush() {
	c.cache.Flush()
}
