package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ReferenceCache implements ports.ReferenceCache using Redis. It stores the
// serialized result of a committed operation under its wallet-scoped
// reference key so replayed submissions can be answered without touching the
// ledger again.
type ReferenceCache struct {
	client *goredis.Client
	prefix string
}

// NewReferenceCache creates a new Redis-backed reference-result cache.
func NewReferenceCache(client *goredis.Client) *ReferenceCache {
	return &ReferenceCache{
		client: client,
		prefix: "opresult:",
	}
}

// Get retrieves a cached operation result by reference key.
// Returns nil, nil if the key does not exist.
func (c *ReferenceCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis reference get: %w", err)
	}
	return val, nil
}

// Set stores an operation result with TTL.
func (c *ReferenceCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis reference set: %w", err)
	}
	return nil
}
