// Package family contains family-related use cases.
package family

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// UpdateFamilyInput represents the input for family update. Nil fields are
// left unchanged.
type UpdateFamilyInput struct {
	FamilyID uuid.UUID
	UserID   uuid.UUID
	Name     *string
	Currency *string
}

// UpdateFamilyOutput represents the output of family update.
type UpdateFamilyOutput struct {
	Family *entity.Family
}

// UpdateFamilyUseCase handles family updates. Only the owner may update.
type UpdateFamilyUseCase struct {
	familyRepo adapter.FamilyRepository
}

// NewUpdateFamilyUseCase creates a new UpdateFamilyUseCase instance.
func NewUpdateFamilyUseCase(familyRepo adapter.FamilyRepository) *UpdateFamilyUseCase {
	return &UpdateFamilyUseCase{
		familyRepo: familyRepo,
	}
}

// Execute performs the family update.
func (uc *UpdateFamilyUseCase) Execute(ctx context.Context, input UpdateFamilyInput) (*UpdateFamilyOutput, error) {
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
			"only the family owner can update the family",
			domainerror.ErrNotFamilyOwner,
		)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewFamilyError(
				domainerror.ErrCodeFamilyNameRequired,
				"family name is required",
				domainerror.ErrFamilyNameRequired,
			)
		}
		if len(*input.Name) > MaxFamilyNameLength {
			return nil, domainerror.NewFamilyError(
				domainerror.ErrCodeFamilyNameTooLong,
				fmt.Sprintf("family name must not exceed %d characters", MaxFamilyNameLength),
				domainerror.ErrFamilyNameTooLong,
			)
		}
		family.Name = *input.Name
	}
	if input.Currency != nil {
		family.Currency = *input.Currency
	}
	family.UpdatedAt = time.Now().UTC()

	if err := uc.familyRepo.UpdateFamily(ctx, family); err != nil {
		return nil, fmt.Errorf("failed to update family: %w", err)
	}

	return &UpdateFamilyOutput{Family: family}, nil
}
