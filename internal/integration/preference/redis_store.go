// Package preference implements the per-user active-family store on Redis.
package preference

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/budget-tracker/backend/internal/application/adapter"
)

const keyPrefix = "active-family:"

// redisPreferenceStore implements adapter.PreferenceStore on Redis. The
// stored preference is best-effort durable state: every failure is swallowed
// and logged, and resolution degrades to the in-session selection.
type redisPreferenceStore struct {
	client *redis.Client
}

// NewRedisPreferenceStore creates a new Redis-backed preference store.
func NewRedisPreferenceStore(client *redis.Client) adapter.PreferenceStore {
	return &redisPreferenceStore{
		client: client,
	}
}

// GetActiveFamily reads the user's stored active-family selection.
func (s *redisPreferenceStore) GetActiveFamily(ctx context.Context, userID uuid.UUID) (uuid.UUID, bool) {
	raw, err := s.client.Get(ctx, keyPrefix+userID.String()).Result()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("failed to read active-family preference", "user_id", userID, "error", err)
		}
		return uuid.Nil, false
	}

	familyID, err := uuid.Parse(raw)
	if err != nil {
		slog.Warn("stored active-family preference is not a uuid", "user_id", userID, "value", raw)
		return uuid.Nil, false
	}
	return familyID, true
}

// SetActiveFamily persists the user's explicit selection. No expiry: the
// preference survives until replaced or removed.
func (s *redisPreferenceStore) SetActiveFamily(ctx context.Context, userID, familyID uuid.UUID) {
	if err := s.client.Set(ctx, keyPrefix+userID.String(), familyID.String(), 0).Err(); err != nil {
		slog.Warn("failed to store active-family preference", "user_id", userID, "error", err)
	}
}

// RemoveActiveFamily drops the user's stored selection.
func (s *redisPreferenceStore) RemoveActiveFamily(ctx context.Context, userID uuid.UUID) {
	if err := s.client.Del(ctx, keyPrefix+userID.String()).Err(); err != nil {
		slog.Warn("failed to remove active-family preference", "user_id", userID, "error", err)
	}
}
