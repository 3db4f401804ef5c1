package tenancy

import (
	"context"
	"sync"
	"time"
)

// Cache stores directory lookup results keyed by lowercased company name.
type Cache interface {
	Get(ctx context.Context, key string) (*Company, bool)
	Set(ctx context.Context, key string, company *Company, ttl time.Duration)
	Delete(ctx context.Context, key string)

	// Close releases any resources held by the cache.
	Close() error
}

// DefaultCacheSize bounds the default in-memory cache.
const DefaultCacheSize = 1000

type memoryEntry struct {
	company   *Company
	expiresAt time.Time
}

// memoryCache is the default in-process cache with TTL expiry and LRU
// eviction. A background goroutine sweeps expired entries.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	order   []string
	maxSize int
	stop    chan struct{}
	done    chan struct{}
	closed  bool
}

// NewInMemoryCache creates an in-memory cache with the default size limit.
func NewInMemoryCache() Cache {
	return NewInMemoryCacheWithSize(DefaultCacheSize)
}

// NewInMemoryCacheWithSize creates an in-memory cache holding at most
// maxSize companies.
func NewInMemoryCacheWithSize(maxSize int) Cache {
	if maxSize <= 0 {
		maxSize = DefaultCacheSize
	}

	c := &memoryCache{
		entries: make(map[string]memoryEntry),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go c.sweep()
	return c
}

func (c *memoryCache) Get(ctx context.Context, key string) (*Company, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.entries, key)
		c.forget(key)
		return nil, false
	}

	c.touch(key)
	return entry.company, true
}

func (c *memoryCache) Set(ctx context.Context, key string, company *Company, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxSize {
		if len(c.order) > 0 {
			delete(c.entries, c.order[0])
			c.order = c.order[1:]
		}
	}

	c.entries[key] = memoryEntry{company: company, expiresAt: time.Now().Add(ttl)}
	c.touch(key)
}

func (c *memoryCache) Delete(ctx context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	c.forget(key)
}

func (c *memoryCache) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	close(c.stop)
	<-c.done
	return nil
}

func (c *memoryCache) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	defer close(c.done)

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			now := time.Now()
			for key, entry := range c.entries {
				if now.After(entry.expiresAt) {
					delete(c.entries, key)
					c.forget(key)
				}
			}
			c.mu.Unlock()
		case <-c.stop:
			return
		}
	}
}

// touch moves the key to the most-recently-used position. Callers hold c.mu.
func (c *memoryCache) touch(key string) {
	c.forget(key)
	c.order = append(c.order, key)
}

// forget removes the key from the eviction order. Callers hold c.mu.
func (c *memoryCache) forget(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// noopCache disables caching; every lookup goes to the directory.
type noopCache struct{}

// NewNoopCache creates a cache that never stores anything. Useful in tests
// and for deployments where directory reads are cheap.
func NewNoopCache() Cache { return noopCache{} }

func (noopCache) Get(ctx context.Context, key string) (*Company, bool) { return nil, false }
func (noopCache) Set(ctx context.Context, key string, company *Company, ttl time.Duration) {
}
func (noopCache) Delete(ctx context.Context, key string) {}
func (noopCache) Close() error                           { return nil }
