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

// RemoveMemberInput represents the input for removing a member.
type RemoveMemberInput struct {
	FamilyID uuid.UUID
	MemberID uuid.UUID
	UserID   uuid.UUID
}

// RemoveMemberOutput represents the output of removing a member.
type RemoveMemberOutput struct{}

// RemoveMemberUseCase handles removing a member from a family. Only the
// owner may remove members; the owner's own membership cannot be removed.
type RemoveMemberUseCase struct {
	familyRepo adapter.FamilyRepository
}

// NewRemoveMemberUseCase creates a new RemoveMemberUseCase instance.
func NewRemoveMemberUseCase(familyRepo adapter.FamilyRepository) *RemoveMemberUseCase {
	return &RemoveMemberUseCase{
		familyRepo: familyRepo,
	}
}

// Execute performs the member removal.
func (uc *RemoveMemberUseCase) Execute(ctx context.Context, input RemoveMemberInput) (*RemoveMemberOutput, error) {
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
			"only the family owner can remove members",
			domainerror.ErrNotFamilyOwner,
		)
	}

	member, err := uc.familyRepo.FindMemberByID(ctx, input.MemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil || member.FamilyID != input.FamilyID {
		return nil, domainerror.NewFamilyError(
			domainerror.ErrCodeMemberNotFound,
			"member not found",
			domainerror.ErrMemberNotFound,
		)
	}
	if member.Role == entity.MemberRoleOwner {
		return nil, domainerror.NewFamilyError(
			domainerror.ErrCodeOwnerCannotLeave,
			"the owner cannot be removed from the family",
			domainerror.ErrOwnerCannotLeave,
		)
	}

	if err := uc.familyRepo.DeleteMember(ctx, input.MemberID); err != nil {
		return nil, fmt.Errorf("failed to remove member: %w", err)
	}

	// The removed user's stored preference may now name this family; it is
	// left untouched and overridden on their next resolution.
	return &RemoveMemberOutput{}, nil
}
