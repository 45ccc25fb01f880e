package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// HealthCheck implements ports.HealthChecker for Redis. Beyond connectivity it
// fails when the feed key holds something other than a stream, which happens
// when the DB is shared with another application.
type HealthCheck struct {
	client  *goredis.Client
	feedKey string
}

// NewHealthCheck creates a Redis health checker.
func NewHealthCheck(client *goredis.Client) *HealthCheck {
	return &HealthCheck{client: client, feedKey: feedStreamKey}
}

// Ping checks connectivity and the feed key type.
func (h *HealthCheck) Ping(ctx context.Context) error {
	if err := h.client.Ping(ctx).Err(); err != nil {
		return err
	}
	kind, err := h.client.Type(ctx, h.feedKey).Result()
	if err != nil {
		return fmt.Errorf("inspect %s: %w", h.feedKey, err)
	}
	if kind != "none" && kind != "stream" {
		return fmt.Errorf("%s holds a %s, want a stream", h.feedKey, kind)
	}
	return nil
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "redis"
}
