// Package family contains family-related use cases.
package family

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

const (
	// MaxFamilyNameLength is the maximum allowed length for family names.
	MaxFamilyNameLength = 100
)

// CreateFamilyInput represents the input for family creation.
type CreateFamilyInput struct {
	Name     string
	Currency string
	UserID   uuid.UUID
}

// CreateFamilyOutput represents the output of family creation.
type CreateFamilyOutput struct {
	Family *entity.Family
	Owner  *entity.FamilyMember
}

// CreateFamilyUseCase handles family creation. The family row and the
// creator's owner membership are written in one transaction; a failure of
// either leaves no orphaned family behind.
type CreateFamilyUseCase struct {
	familyRepo adapter.FamilyRepository
	userRepo   adapter.UserRepository
}

// NewCreateFamilyUseCase creates a new CreateFamilyUseCase instance.
func NewCreateFamilyUseCase(familyRepo adapter.FamilyRepository, userRepo adapter.UserRepository) *CreateFamilyUseCase {
	return &CreateFamilyUseCase{
		familyRepo: familyRepo,
		userRepo:   userRepo,
	}
}

// Execute performs the family creation.
func (uc *CreateFamilyUseCase) Execute(ctx context.Context, input CreateFamilyInput) (*CreateFamilyOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewFamilyError(
			domainerror.ErrCodeFamilyNameRequired,
			"family name is required",
			domainerror.ErrFamilyNameRequired,
		)
	}
	if len(input.Name) > MaxFamilyNameLength {
		return nil, domainerror.NewFamilyError(
			domainerror.ErrCodeFamilyNameTooLong,
			fmt.Sprintf("family name must not exceed %d characters", MaxFamilyNameLength),
			domainerror.ErrFamilyNameTooLong,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	family := entity.NewFamily(input.Name, input.Currency, input.UserID)

	owner := entity.NewFamilyMember(family.ID, input.UserID, entity.MemberRoleOwner)
	owner.UserName = user.Name
	owner.UserEmail = user.Email

	if err := uc.familyRepo.CreateFamilyWithOwner(ctx, family, owner); err != nil {
		return nil, fmt.Errorf("failed to create family: %w", err)
	}

	return &CreateFamilyOutput{
		Family: family,
		Owner:  owner,
	}, nil
}
