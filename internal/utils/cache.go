package utils

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheItem wraps a cached value with its expiry.
type CacheItem[T any] struct {
	Value     T
	ExpiredAt time.Time
}

// ListCache is a bounded LRU cache with per-entry TTL, keyed by the
// normalized query parameters of a listing. lru.Cache is thread safe.
type ListCache[T any] struct {
	storage *lru.Cache[string, CacheItem[T]]
	ttl     time.Duration
}

// NewListCache creates a cache holding at most size entries, each valid for ttl.
func NewListCache[T any](size int, ttl time.Duration) *ListCache[T] {
	c, _ := lru.New[string, CacheItem[T]](size)
	return &ListCache[T]{
		storage: c,
		ttl:     ttl,
	}
}

// Set stores a value. Add handles updates of existing keys.
func (c *ListCache[T]) Set(key string, value T) {
	c.storage.Add(key, CacheItem[T]{
		Value:     value,
		ExpiredAt: time.Now().Add(c.ttl),
	})
}

// Get returns a value if present and not expired.
func (c *ListCache[T]) Get(key string) (T, bool) {
	var zero T
	item, ok := c.storage.Get(key)
	if !ok {
		return zero, false
	}
	if time.Now().After(item.ExpiredAt) {
		c.storage.Remove(key)
		return zero, false
	}
	return item.Value, true
}

// Clear drops every entry.
func (c *ListCache[T]) Clear() {
	c.storage.Purge()
}

// Len reports the current number of entries.
func (c *ListCache[T]) Len() int {
	return c.storage.Len()
}
