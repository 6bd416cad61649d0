package utils

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheItem wraps a value with its expiry.
type CacheItem[T any] struct {
	Value     T
	ExpiredAt time.Time
}

// LRUCache is a bounded cache with per-entry TTL, used for catalog
// search and listing pages where the key space is unbounded.
type LRUCache[T any] struct {
	storage *lru.Cache[string, CacheItem[T]]
	ttl     time.Duration
}

// NewLRUCache creates a cache holding at most size entries, each valid
// for ttl.
func NewLRUCache[T any](size int, ttl time.Duration) *LRUCache[T] {
	// lru.New is thread-safe
	c, _ := lru.New[string, CacheItem[T]](size)
	return &LRUCache[T]{
		storage: c,
		ttl:     ttl,
	}
}

// Set adds or updates an entry.
func (c *LRUCache[T]) Set(key string, value T) {
	item := CacheItem[T]{
		Value:     value,
		ExpiredAt: time.Now().Add(c.ttl),
	}
	c.storage.Add(key, item)
}

// Get returns an entry, dropping it when expired.
func (c *LRUCache[T]) Get(key string) (T, bool) {
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

// Delete removes one entry.
func (c *LRUCache[T]) Delete(key string) {
	c.storage.Remove(key)
}

// Clear removes everything.
func (c *LRUCache[T]) Clear() {
	c.storage.Purge()
}

// Len reports the current entry count.
func (c *LRUCache[T]) Len() int {
	return c.storage.Len()
}
