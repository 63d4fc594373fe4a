package service

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCacheForTest(t *testing.T) (*miniredis.Miniredis, *CredentialCache) {
	t.Helper()
	m := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})
	return m, NewCredentialCache(client)
}

func TestCredentialCache_SetGet(t *testing.T) {
	_, cache := newCacheForTest(t)
	ctx := context.Background()

	cache.Set(ctx, "2024-06-01", "signed-credential", time.Hour)

	got, err := cache.Get(ctx, "2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, "signed-credential", got)
}

func TestCredentialCache_ExpiresAtTTL(t *testing.T) {
	m, cache := newCacheForTest(t)
	ctx := context.Background()

	cache.Set(ctx, "2024-06-01", "signed-credential", time.Minute)
	m.FastForward(2 * time.Minute)

	got, err := cache.Get(ctx, "2024-06-01")
	assert.Error(t, err)
	assert.Empty(t, got)
}

func TestCredentialCache_Invalidate(t *testing.T) {
	_, cache := newCacheForTest(t)
	ctx := context.Background()

	cache.Set(ctx, "2024-06-01", "signed-credential", time.Hour)
	cache.Invalidate(ctx, "2024-06-01")

	got, _ := cache.Get(ctx, "2024-06-01")
	assert.Empty(t, got)
}

func TestCredentialCache_NilClientMisses(t *testing.T) {
	cache := NewCredentialCache(nil)
	ctx := context.Background()

	cache.Set(ctx, "2024-06-01", "signed-credential", time.Hour)
	got, err := cache.Get(ctx, "2024-06-01")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCredentialCache_NonPositiveTTLNotStored(t *testing.T) {
	_, cache := newCacheForTest(t)
	ctx := context.Background()

	cache.Set(ctx, "2024-06-01", "signed-credential", 0)
	got, _ := cache.Get(ctx, "2024-06-01")
	assert.Empty(t, got)
}
