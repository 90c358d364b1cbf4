// Package family contains family-related use cases.
package family

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// ResolveActiveFamily computes which family a user's data operations apply
// to. currentID is the caller's in-session selection (uuid.Nil when none);
// storedPreference is the persisted last-explicit selection (uuid.Nil when
// absent or unreadable).
//
// Precedence: an in-session selection that is still accessible wins; next the
// stored preference, if still accessible; otherwise the first accessible
// family (owned families first). A stale stored preference is silently
// overridden, never an error. With no accessible families the result is
// uuid.Nil.
func ResolveActiveFamily(currentID uuid.UUID, accessible []*entity.Family, storedPreference uuid.UUID) uuid.UUID {
	if len(accessible) == 0 {
		return uuid.Nil
	}

	contains := func(id uuid.UUID) bool {
		if id == uuid.Nil {
			return false
		}
		for _, f := range accessible {
			if f.ID == id {
				return true
			}
		}
		return false
	}

	if contains(currentID) {
		return currentID
	}
	if contains(storedPreference) {
		return storedPreference
	}
	return accessible[0].ID
}

// ResolvedContext is the family context derived for a user.
type ResolvedContext struct {
	UserID                uuid.UUID
	Families              []*entity.Family
	Memberships           []*entity.MembershipWithFamily
	ActiveFamilyID        uuid.UUID // uuid.Nil when unresolved
	ActiveFamily          *entity.Family
	IsOwnerOfActiveFamily bool
}

// ResolveContextInput represents the input for family-context resolution.
type ResolveContextInput struct {
	UserID uuid.UUID
	// CurrentFamilyID carries an in-session selection the caller wants kept
	// if still valid, e.g. from a request header. uuid.Nil when absent.
	CurrentFamilyID uuid.UUID
}

// ResolveContextOutput represents the output of family-context resolution.
type ResolveContextOutput struct {
	Context *ResolvedContext
}

// ResolveContextUseCase derives the user's accessible families and active
// family. The owned-families and membership queries run concurrently; the
// context is derived only after both settle.
type ResolveContextUseCase struct {
	familyRepo  adapter.FamilyRepository
	preferences adapter.PreferenceStore
}

// NewResolveContextUseCase creates a new ResolveContextUseCase instance.
func NewResolveContextUseCase(familyRepo adapter.FamilyRepository, preferences adapter.PreferenceStore) *ResolveContextUseCase {
	return &ResolveContextUseCase{
		familyRepo:  familyRepo,
		preferences: preferences,
	}
}

// Execute performs the family-context resolution.
func (uc *ResolveContextUseCase) Execute(ctx context.Context, input ResolveContextInput) (*ResolveContextOutput, error) {
	var (
		owned       []*entity.Family
		memberships []*entity.MembershipWithFamily
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		owned, err = uc.familyRepo.FindOwnedFamilies(gctx, input.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		memberships, err = uc.familyRepo.FindMembershipsWithFamilies(gctx, input.UserID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load families: %w", err)
	}

	accessible := entity.AccessibleFamilies(owned, memberships)

	stored, ok := uc.preferences.GetActiveFamily(ctx, input.UserID)
	if !ok {
		stored = uuid.Nil
	}

	activeID := ResolveActiveFamily(input.CurrentFamilyID, accessible, stored)

	resolved := &ResolvedContext{
		UserID:         input.UserID,
		Families:       accessible,
		Memberships:    memberships,
		ActiveFamilyID: activeID,
	}
	for _, f := range accessible {
		if f.ID == activeID {
			resolved.ActiveFamily = f
			break
		}
	}
	resolved.IsOwnerOfActiveFamily = resolved.ActiveFamily != nil &&
		resolved.ActiveFamily.OwnerID == input.UserID

	return &ResolveContextOutput{Context: resolved}, nil
}
