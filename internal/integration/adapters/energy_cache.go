// Package adapters implements service interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/body-recomp/backend/internal/application/adapter"
)

// defaultEnergyTTL bounds how long a BMR/TDEE pair stays cached. Keys encode
// the formula inputs, so a profile change produces a new key rather than a
// stale hit; the TTL only caps memory growth.
const defaultEnergyTTL = 24 * time.Hour

// redisEnergyCache implements the adapter.EnergyCache interface on Redis.
// Every failure degrades to a miss or a no-op so a cache outage never blocks
// goal creation.
type redisEnergyCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisEnergyCache creates a new Redis-backed energy cache instance.
func NewRedisEnergyCache(client *redis.Client) adapter.EnergyCache {
	return &redisEnergyCache{
		client: client,
		ttl:    defaultEnergyTTL,
	}
}

// Get retrieves a cached estimate, reporting whether the key was present.
func (c *redisEnergyCache) Get(ctx context.Context, key string) (*adapter.EnergyEstimate, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("energy cache read failed", "key", key, "error", err)
		}
		return nil, false
	}

	var estimate adapter.EnergyEstimate
	if err := json.Unmarshal(data, &estimate); err != nil {
		slog.Warn("energy cache entry corrupt", "key", key, "error", err)
		return nil, false
	}
	return &estimate, true
}

// Set stores an estimate under the key.
func (c *redisEnergyCache) Set(ctx context.Context, key string, estimate *adapter.EnergyEstimate) {
	data, err := json.Marshal(estimate)
	if err != nil {
		slog.Warn("energy cache marshal failed", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		slog.Warn("energy cache write failed", "key", key, "error", err)
	}
}

// Invalidate removes any estimate stored under the key.
func (c *redisEnergyCache) Invalidate(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		slog.Warn("energy cache delete failed", "key", key, "error", err)
	}
}
