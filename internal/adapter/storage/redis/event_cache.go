package redis

import (
	"context"
	"fmt"
	"time"

	"bitbuddy/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// EventCache implements ports.ProcessedEventCache using Redis keys with TTL.
type EventCache struct {
	client *goredis.Client
	prefix string
}

var _ ports.ProcessedEventCache = (*EventCache)(nil)

// NewEventCache creates a new Redis-backed processed-event cache.
func NewEventCache(client *goredis.Client) *EventCache {
	return &EventCache{
		client: client,
		prefix: "processed:",
	}
}

// Seen reports whether key was marked processed and has not expired.
func (c *EventCache) Seen(ctx context.Context, key string) (bool, error) {
	n, err := c.client.Exists(ctx, c.prefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("redis processed-event exists: %w", err)
	}
	return n > 0, nil
}

// MarkProcessed records key for ttl. An existing mark keeps its original expiry.
func (c *EventCache) MarkProcessed(ctx context.Context, key string, ttl time.Duration) error {
	err := c.client.SetArgs(ctx, c.prefix+key, time.Now().UTC().Unix(), goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Err()
	if err != nil && err != goredis.Nil {
		return fmt.Errorf("redis processed-event set: %w", err)
	}
	return nil
}
