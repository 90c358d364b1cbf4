// Package family contains family-related use cases.
package family

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// DeleteFamilyInput represents the input for family deletion.
type DeleteFamilyInput struct {
	FamilyID uuid.UUID
	UserID   uuid.UUID
}

// DeleteFamilyOutput represents the output of family deletion.
type DeleteFamilyOutput struct{}

// DeleteFamilyUseCase handles family deletion. Only the owner may delete;
// the stored preference of other members is left alone and resolution falls
// back to their first remaining family.
type DeleteFamilyUseCase struct {
	familyRepo  adapter.FamilyRepository
	preferences adapter.PreferenceStore
}

// NewDeleteFamilyUseCase creates a new DeleteFamilyUseCase instance.
func NewDeleteFamilyUseCase(familyRepo adapter.FamilyRepository, preferences adapter.PreferenceStore) *DeleteFamilyUseCase {
	return &DeleteFamilyUseCase{
		familyRepo:  familyRepo,
		preferences: preferences,
	}
}

// Execute performs the family deletion.
func (uc *DeleteFamilyUseCase) Execute(ctx context.Context, input DeleteFamilyInput) (*DeleteFamilyOutput, error) {
	family, err := uc.familyRepo.FindFamilyByID(ctx, input.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get family: %w", err)
	}
	if family == nil {
		return nil, domainerror.NewFamilyError(
			domainerror.ErrCodeFamilyNotFound,
			"family not found",
			domainerror.ErrFamilyNotFound,
		)
	}
	if family.OwnerID != input.UserID {
		return nil, domainerror.NewFamilyError(
			domainerror.ErrCodeNotFamilyOwner,
			"only the family owner can delete the family",
			domainerror.ErrNotFamilyOwner,
		)
	}

	if err := uc.familyRepo.DeleteFamily(ctx, input.FamilyID); err != nil {
		return nil, fmt.Errorf("failed to delete family: %w", err)
	}

	// The deleter's own stored preference is cleared eagerly; everyone
	// else's goes stale and is overridden on their next resolution.
	if stored, ok := uc.preferences.GetActiveFamily(ctx, input.UserID); ok && stored == input.FamilyID {
		uc.preferences.RemoveActiveFamily(ctx, input.UserID)
	}

	return &DeleteFamilyOutput{}, nil
}
