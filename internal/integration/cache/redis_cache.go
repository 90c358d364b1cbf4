// Package cache implements the list cache on Redis.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/budget-tracker/backend/internal/application/adapter"
)

// redisListCache implements adapter.ListCache on Redis. Entries are grouped
// by a per-(kind, family) version counter baked into every key: bumping the
// counter orphans the whole group at once, and the TTL reaps the orphans.
// Every Redis failure degrades to a miss or a no-op.
type redisListCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisListCache creates a new Redis-backed list cache.
func NewRedisListCache(client *redis.Client, ttl time.Duration) adapter.ListCache {
	return &redisListCache{
		client: client,
		ttl:    ttl,
	}
}

// Get retrieves a cached payload.
func (c *redisListCache) Get(ctx context.Context, kind string, familyID uuid.UUID, filterKey string) ([]byte, bool) {
	key, err := c.entryKey(ctx, kind, familyID, filterKey)
	if err != nil {
		return nil, false
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Debug("list cache read failed", "key", key, "error", err)
		}
		return nil, false
	}
	return payload, true
}

// Set stores a payload with the configured TTL.
func (c *redisListCache) Set(ctx context.Context, kind string, familyID uuid.UUID, filterKey string, payload []byte) {
	key, err := c.entryKey(ctx, kind, familyID, filterKey)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		slog.Debug("list cache write failed", "key", key, "error", err)
	}
}

// Invalidate drops every cached list of the given kind for the family by
// bumping the group's version counter.
func (c *redisListCache) Invalidate(ctx context.Context, kind string, familyID uuid.UUID) {
	if err := c.client.Incr(ctx, versionKey(kind, familyID)).Err(); err != nil {
		slog.Debug("list cache invalidation failed", "kind", kind, "family_id", familyID, "error", err)
	}
}

func (c *redisListCache) entryKey(ctx context.Context, kind string, familyID uuid.UUID, filterKey string) (string, error) {
	version, err := c.client.Get(ctx, versionKey(kind, familyID)).Result()
	if err == redis.Nil {
		version = "0"
	} else if err != nil {
		slog.Debug("list cache version read failed", "kind", kind, "error", err)
		return "", err
	}
	return fmt.Sprintf("listcache:%s:%s:v%s:%s", kind, familyID, version, filterKey), nil
}

func versionKey(kind string, familyID uuid.UUID) string {
	return fmt.Sprintf("listcache:%s:%s:version", kind, familyID)
}
