// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// ListCache caches list query results keyed by (entity kind, family id,
// filter fingerprint). Entries expire after a fixed window; any mutation of
// an entity invalidates every cached list of that kind for the family.
//
// Cache failures are non-fatal: Get reports a miss and the caller falls back
// to the repository.
type ListCache interface {
	// Get retrieves a cached payload. The second return is false on miss,
	// expiry, or cache failure.
	Get(ctx context.Context, kind string, familyID uuid.UUID, filterKey string) ([]byte, bool)

	// Set stores a payload under the given key.
	Set(ctx context.Context, kind string, familyID uuid.UUID, filterKey string, payload []byte)

	// Invalidate drops every cached list of the given kind for the family.
	Invalidate(ctx context.Context, kind string, familyID uuid.UUID)
}
