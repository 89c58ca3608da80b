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

// TTLCache is a bounded LRU with per-entry expiry, used for catalog page
// and search responses.
type TTLCache[T any] struct {
	storage *lru.Cache[string, CacheItem[T]]
	ttl     time.Duration
}

// NewTTLCache creates a cache holding at most size entries, each valid
// for ttl.
func NewTTLCache[T any](size int, ttl time.Duration) *TTLCache[T] {
	// lru.New is thread safe
	c, _ := lru.New[string, CacheItem[T]](size)
	return &TTLCache[T]{
		storage: c,
		ttl:     ttl,
	}
}

func (c *TTLCache[T]) Set(key string, value T) {
	c.storage.Add(key, CacheItem[T]{
		Value:     value,
		ExpiredAt: time.Now().Add(c.ttl),
	})
}

func (c *TTLCache[T]) Get(key string) (T, bool) {
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

func (c *TTLCache[T]) Delete(key string) {
	c.storage.Remove(key)
}

func (c *TTLCache[T]) Clear() {
	c.storage.Purge()
}

func (c *TTLCache[T]) Len() int {
	return c.storage.Len()
}
