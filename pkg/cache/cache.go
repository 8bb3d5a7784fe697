// Package cache provides a TTL cache with bounded size and deduplicated loads.
//
// Each Cache is an explicit object: configuration and clock are injected,
// so tests can advance time without sleeping.
package cache

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultTTL is used when Config.DefaultTTL is zero
	DefaultTTL = 5 * time.Minute

	// DefaultMaxSize is used when Config.MaxSize is zero
	DefaultMaxSize = 100
)

// Config controls cache behavior
type Config struct {
	// DefaultTTL applies to entries stored with Set
	DefaultTTL time.Duration

	// MaxSize bounds the number of entries; the least recently used
	// entry is evicted when it is exceeded
	MaxSize int

	// Prefix namespaces keys so several caches can share a key space
	Prefix string
}

// Option customizes a Cache
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces time.Now as the source of the current time
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

type entry[T any] struct {
	value   T
	expires time.Time
}

// Cache stores values of type T until they expire.
// It is safe for concurrent use.
type Cache[T any] struct {
	config  Config
	now     func() time.Time
	entries *lru.Cache[string, entry[T]]
	loads   singleflight.Group
}

// New creates a cache. Zero config fields take their defaults.
func New[T any](config Config, opts ...Option) (*Cache[T], error) {
	if config.DefaultTTL <= 0 {
		config.DefaultTTL = DefaultTTL
	}
	if config.MaxSize <= 0 {
		config.MaxSize = DefaultMaxSize
	}

	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	entries, err := lru.New[string, entry[T]](config.MaxSize)
	if err != nil {
		return nil, fmt.Errorf("creating cache: %w", err)
	}

	return &Cache[T]{
		config:  config,
		now:     o.now,
		entries: entries,
	}, nil
}

// Config returns the effective configuration
func (c *Cache[T]) Config() Config {
	return c.config
}

// Get returns the value for key if present and not expired
func (c *Cache[T]) Get(key string) (T, bool) {
	k := c.key(key)
	e, ok := c.entries.Get(k)
	if !ok {
		var zero T
		return zero, false
	}
	if !c.now().Before(e.expires) {
		c.entries.Remove(k)
		var zero T
		return zero, false
	}
	return e.value, true
}

// Set stores value under key with the default TTL
func (c *Cache[T]) Set(key string, value T) {
	c.SetWithTTL(key, value, c.config.DefaultTTL)
}

// SetWithTTL stores value under key for ttl
func (c *Cache[T]) SetWithTTL(key string, value T, ttl time.Duration) {
	c.entries.Add(c.key(key), entry[T]{value: value, expires: c.now().Add(ttl)})
}

// Has reports whether key holds an unexpired value
func (c *Cache[T]) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Delete removes key
func (c *Cache[T]) Delete(key string) {
	c.entries.Remove(c.key(key))
}

// Clear removes every entry
func (c *Cache[T]) Clear() {
	c.entries.Purge()
}

// Cleanup removes expired entries and returns how many were dropped
func (c *Cache[T]) Cleanup() int {
	now := c.now()
	removed := 0
	for _, k := range c.entries.Keys() {
		e, ok := c.entries.Peek(k)
		if ok && !now.Before(e.expires) {
			c.entries.Remove(k)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored entries, including expired ones not
// yet cleaned up
func (c *Cache[T]) Len() int {
	return c.entries.Len()
}

// GetOrLoad returns the cached value for key or calls load to produce it.
// Concurrent calls for the same key share a single load. Errors are not cached.
func (c *Cache[T]) GetOrLoad(key string, load func() (T, error)) (T, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	v, err, _ := c.loads.Do(c.key(key), func() (interface{}, error) {
		if v, ok := c.Get(key); ok {
			return v, nil
		}
		v, err := load()
		if err != nil {
			return v, err
		}
		c.Set(key, v)
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

func (c *Cache[T]) key(k string) string {
	return c.config.Prefix + k
}
