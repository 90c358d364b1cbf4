// Package family contains family-related use cases.
package family

import (
	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// GuardState is the presentation state gating family-scoped views.
type GuardState string

const (
	// GuardStateLoading: an underlying query has not resolved yet.
	GuardStateLoading GuardState = "loading"
	// GuardStateNoFamily: the user has no accessible families.
	GuardStateNoFamily GuardState = "no_family"
	// GuardStateNoSelection: families exist but none is selected. Transient;
	// resolution auto-selects the first accessible family.
	GuardStateNoSelection GuardState = "no_selection"
	// GuardStateReady: an active family is resolved.
	GuardStateReady GuardState = "ready"
)

// Guard derives the gate state from the resolution output. The checks are
/// ordered: loading wins over everything, then the empty set, then the
// missing selection.
func Guard(isLoading bool, families []*entity.Family, activeFamilyID uuid.UUID) GuardState {
	if isLoading {
		return GuardStateLoading
	}
	if len(families) == 0 {
		return GuardStateNoFamily
	}
	if activeFamilyID == uuid.Nil {
		return GuardStateNoSelection
	}
	return GuardStateReady
}
