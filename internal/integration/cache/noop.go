package cache

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
)

// NoopListCache is used when list caching is disabled. Every read is a miss
// and writes are dropped.
type NoopListCache struct{}

// NewNoopListCache creates a new no-op list cache.
func NewNoopListCache() adapter.ListCache {
	return &NoopListCache{}
}

// Get always reports a miss.
func (c *NoopListCache) Get(ctx context.Context, kind string, familyID uuid.UUID, filterKey string) ([]byte, bool) {
	return nil, false
}

// Set drops the payload.
func (c *NoopListCache) Set(ctx context.Context, kind string, familyID uuid.UUID, filterKey string, payload []byte) {
}

// Invalidate does nothing.
func (c *NoopListCache) Invalidate(ctx context.Context, kind string, familyID uuid.UUID) {}

var _ adapter.ListCache = (*NoopListCache)(nil)
