package redis_test

import (
	"context"
	"testing"
	"time"

	"bitbuddy/internal/adapter/storage/redis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventCache_SeenAfterMark(t *testing.T) {
	mr, client := newTestClient(t)
	cache := redis.NewEventCache(client)
	ctx := context.Background()
	key := "gift:bc1qalice|tx-1"

	seen, err := cache.Seen(ctx, key)
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, cache.MarkProcessed(ctx, key, time.Hour))

	seen, err = cache.Seen(ctx, key)
	require.NoError(t, err)
	assert.True(t, seen)
	assert.True(t, mr.Exists("processed:"+key))
}

func TestEventCache_MarkTwiceKeepsFirstExpiry(t *testing.T) {
	mr, client := newTestClient(t)
	cache := redis.NewEventCache(client)
	ctx := context.Background()
	key := "gift:bc1qalice|tx-2"

	require.NoError(t, cache.MarkProcessed(ctx, key, time.Minute))
	require.NoError(t, cache.MarkProcessed(ctx, key, time.Hour))

	assert.Equal(t, time.Minute, mr.TTL("processed:"+key))
}

func TestEventCache_Expires(t *testing.T) {
	mr, client := newTestClient(t)
	cache := redis.NewEventCache(client)
	ctx := context.Background()
	key := "gift:bc1qalice|tx-3"

	require.NoError(t, cache.MarkProcessed(ctx, key, time.Minute))
	mr.FastForward(2 * time.Minute)

	seen, err := cache.Seen(ctx, key)
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestEventCache_RedisDown(t *testing.T) {
	cache := redis.NewEventCache(newDownClient(t))

	_, err := cache.Seen(context.Background(), "gift:x")
	assert.Error(t, err)
	assert.Error(t, cache.MarkProcessed(context.Background(), "gift:x", time.Minute))
}
