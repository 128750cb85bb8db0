package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCooldown = 30 * time.Second

// Cooldown throttles verification sends per phone number, backed by Redis.
// Key format: verify_cooldown:<normalized_phone>
type Cooldown struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCooldown creates a Cooldown wrapping the given Redis client. A ttl of
// zero selects the default.
func NewCooldown(client *redis.Client, ttl time.Duration) *Cooldown {
	if ttl <= 0 {
		ttl = defaultCooldown
	}
	return &Cooldown{client: client, ttl: ttl}
}

// InCooldown reports whether a verification was sent to this phone recently.
func (c *Cooldown) InCooldown(ctx context.Context, phone string) (bool, error) {
	n, err := c.client.Exists(ctx, c.key(phone)).Result()
	if err != nil {
		return false, fmt.Errorf("cooldown check: %w", err)
	}
	return n > 0, nil
}

// Mark records a send for this phone (expires after the configured ttl).
func (c *Cooldown) Mark(ctx context.Context, phone string) error {
	return c.client.Set(ctx, c.key(phone), "1", c.ttl).Err()
}

func (c *Cooldown) key(phone string) string {
	return "verify_cooldown:" + phone
}
