// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// PreferenceStore persists each user's last explicitly selected family.
//
// Implementations must degrade gracefully: when the backing store is
// unavailable, Get reports "absent" and Set/Remove become no-ops. Callers
// never see a hard failure; selection falls back to in-memory state for the
// session.
type PreferenceStore interface {
	// GetActiveFamily returns the stored family id for the user, or
	// (uuid.Nil, false) when no preference is stored or the store is
	// unreadable.
	GetActiveFamily(ctx context.Context, userID uuid.UUID) (uuid.UUID, bool)

	// SetActiveFamily stores the family id for the user.
	SetActiveFamily(ctx context.Context, userID, familyID uuid.UUID)

	// RemoveActiveFamily deletes the stored preference for the user.
	RemoveActiveFamily(ctx context.Context, userID uuid.UUID)
}
