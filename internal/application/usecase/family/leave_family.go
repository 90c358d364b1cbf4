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

// LeaveFamilyInput represents the input for leaving a family.
type LeaveFamilyInput struct {
	FamilyID uuid.UUID
	UserID   uuid.UUID
}

// LeaveFamilyOutput represents the output of leaving a family.
type LeaveFamilyOutput struct{}

// LeaveFamilyUseCase handles a member leaving a family. The owner cannot
// leave their own family; they must delete it instead.
type LeaveFamilyUseCase struct {
	familyRepo adapter.FamilyRepository
}

// NewLeaveFamilyUseCase creates a new LeaveFamilyUseCase instance.
func NewLeaveFamilyUseCase(familyRepo adapter.FamilyRepository) *LeaveFamilyUseCase {
	return &LeaveFamilyUseCase{
		familyRepo: familyRepo,
	}
}

// Execute performs the leave.
func (uc *LeaveFamilyUseCase) Execute(ctx context.Context, input LeaveFamilyInput) (*LeaveFamilyOutput, error) {
	member, err := uc.familyRepo.FindMemberByFamilyAndUser(ctx, input.FamilyID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	if member == nil {
		return nil, domainerror.NewFamilyError(
			domainerror.ErrCodeNotFamilyMember,
			"you are not part of this family",
			domainerror.ErrNotFamilyMember,
		)
	}
	if member.Role == entity.MemberRoleOwner {
		return nil, domainerror.NewFamilyError(
			domainerror.ErrCodeOwnerCannotLeave,
			"the owner cannot leave the family",
			domainerror.ErrOwnerCannotLeave,
		)
	}

	if err := uc.familyRepo.DeleteMember(ctx, member.ID); err != nil {
		return nil, fmt.Errorf("failed to leave family: %w", err)
	}

	return &LeaveFamilyOutput{}, nil
}
