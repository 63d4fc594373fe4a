package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const credentialKeyPrefix = "qr:credential:"

// CredentialCache keeps the signed credential for a date in Redis so repeated
// issuance calls within a day skip the store round trip. Entries expire at
// the next local midnight; the cache is best effort and every miss falls
// through to the store.
type CredentialCache struct {
	client *redis.Client
}

// NewCredentialCache builds the cache. A nil client yields a cache that
// always misses.
func NewCredentialCache(client *redis.Client) *CredentialCache {
	return &CredentialCache{client: client}
}

// Get returns the cached credential for date, or "" on miss or error.
func (c *CredentialCache) Get(ctx context.Context, date string) (string, error) {
	if c == nil || c.client == nil {
		return "", nil
	}
	val, err := c.client.Get(ctx, credentialKeyPrefix+date).Result()
	if err != nil {
		return "", err
	}
	return val, nil
}

// Set stores the credential for date with the given TTL. Errors are dropped;
// a cold cache only costs a store read.
func (c *CredentialCache) Set(ctx context.Context, date, credential string, ttl time.Duration) {
	if c == nil || c.client == nil || ttl <= 0 {
		return
	}
	_ = c.client.Set(ctx, credentialKeyPrefix+date, credential, ttl).Err()
}

// Invalidate removes the cached credential for date.
func (c *CredentialCache) Invalidate(ctx context.Context, date string) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Del(ctx, credentialKeyPrefix+date).Err()
}
