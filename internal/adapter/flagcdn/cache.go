package flagcdn

import (
	"context"
	"image"
	"strings"
	"sync"

	"github.com/couchcryptid/gdacs-event-viewer/internal/domain"
)

// CachedSource wraps a FlagSource with an in-memory LRU cache. Navigation in
// the viewer revisits the same handful of countries, so even a small cache
// eliminates most repeat fetches.
type CachedSource struct {
	inner domain.FlagSource
	cache *lruCache
}

// NewCachedSource creates a cache decorator around a flag source.
func NewCachedSource(inner domain.FlagSource, maxEntries int) *CachedSource {
	return &CachedSource{
		inner: inner,
		cache: newLRUCache(maxEntries),
	}
}

func (c *CachedSource) Flag(ctx context.Context, code string) (image.Image, error) {
	key := strings.ToLower(strings.TrimSpace(code))
	if img, ok := c.cache.get(key); ok {
		return img, nil
	}
	img, err := c.inner.Flag(ctx, code)
	if err != nil {
		// Failures are not cached so transient errors can be retried on
		// the next navigation step.
		return nil, err
	}
	c.cache.put(key, img)
	return img, nil
}

// lruCache is a simple thread-safe LRU cache for decoded flag images.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value image.Image
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) (image.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
