package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *ReferenceCache {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewReferenceCache(client)
}

func TestReferenceCache_SetAndGet(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	key := "9f2c1f6e-0000-0000-0000-000000000001:ORDER-001"
	value := []byte(`{"transaction":{"id":42,"operation_type":"DEPOSIT"}}`)

	// Get before set => nil
	result, err := cache.Get(ctx, key)
	assert.NoError(t, err)
	assert.Nil(t, result)

	// Set
	err = cache.Set(ctx, key, value, 24*time.Hour)
	require.NoError(t, err)

	// Get after set
	result, err = cache.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, value, result)
}

func TestReferenceCache_TTLExpiry(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	defer client.Close()
	cache := NewReferenceCache(client)
	ctx := context.Background()

	key := "wallet-1:REF-002"
	require.NoError(t, cache.Set(ctx, key, []byte(`{"x":1}`), time.Second))

	// Fast-forward time in miniredis
	s.FastForward(2 * time.Second)

	result, err := cache.Get(ctx, key)
	assert.NoError(t, err)
	assert.Nil(t, result, "expired key should return nil")
}

func TestReferenceCache_KeyPrefixIsolation(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	defer client.Close()
	cache := NewReferenceCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "wallet-1:REF", []byte("a"), time.Minute))

	// Raw key without prefix should not exist.
	_, err := client.Get(ctx, "wallet-1:REF").Result()
	assert.Equal(t, goredis.Nil, err)

	// Prefixed key should.
	val, err := client.Get(ctx, "opresult:wallet-1:REF").Result()
	require.NoError(t, err)
	assert.Equal(t, "a", val)
}

func TestHealthCheck_Ping(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	defer client.Close()

	h := NewHealthCheck(client)
	assert.NoError(t, h.Ping(context.Background()))
	assert.Equal(t, "redis", h.Name())

	s.Close()
	assert.Error(t, h.Ping(context.Background()))
}
