package tenancy

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisCache shares directory lookups across instances through Redis.
// Failures degrade to cache misses; the directory remains the source of
// truth.
type redisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache creates a Redis-backed company cache. The client's lifecycle
// stays with the caller; Close on the cache is a no-op. An empty prefix
// defaults to "tenancy:company:".
func NewRedisCache(client *redis.Client, prefix string) Cache {
	if prefix == "" {
		prefix = "tenancy:company:"
	}
	return &redisCache{client: client, prefix: prefix}
}

func (c *redisCache) Get(ctx context.Context, key string) (*Company, bool) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		return nil, false
	}

	var company Company
	if err := json.Unmarshal(data, &company); err != nil {
		// Stale or foreign payload; drop it so the next lookup repopulates.
		c.client.Del(ctx, c.prefix+key)
		return nil, false
	}
	return &company, true
}

func (c *redisCache) Set(ctx context.Context, key string, company *Company, ttl time.Duration) {
	data, err := json.Marshal(company)
	if err != nil {
		return
	}
	c.client.Set(ctx, c.prefix+key, data, ttl)
}

func (c *redisCache) Delete(ctx context.Context, key string) {
	c.client.Del(ctx, c.prefix+key)
}

func (c *redisCache) Close() error { return nil }
