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

// GetFamilyInput represents the input for fetching a family.
type GetFamilyInput struct {
	FamilyID uuid.UUID
	UserID   uuid.UUID
}

// GetFamilyOutput represents the output of fetching a family.
type GetFamilyOutput struct {
	Family  *entity.FamilyWithMembers
	IsOwner bool
}

// GetFamilyUseCase fetches a family with its members and pending invites.
type GetFamilyUseCase struct {
	familyRepo adapter.FamilyRepository
}

// NewGetFamilyUseCase creates a new GetFamilyUseCase instance.
func NewGetFamilyUseCase(familyRepo adapter.FamilyRepository) *GetFamilyUseCase {
	return &GetFamilyUseCase{
		familyRepo: familyRepo,
	}
}

// Execute performs the family fetch.
func (uc *GetFamilyUseCase) Execute(ctx context.Context, input GetFamilyInput) (*GetFamilyOutput, error) {
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

	inFamily, err := uc.familyRepo.IsUserInFamily(ctx, input.FamilyID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if !inFamily {
		return nil, domainerror.NewFamilyError(
			domainerror.ErrCodeNotFamilyMember,
			"you are not part of this family",
			domainerror.ErrNotFamilyMember,
		)
	}

	members, err := uc.familyRepo.FindMembersByFamilyID(ctx, input.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	isOwner := family.OwnerID == input.UserID

	result := &entity.FamilyWithMembers{
		Family:      family,
		Members:     members,
		MemberCount: len(members),
		UserRole:    entity.MemberRoleMember,
	}
	if isOwner {
		result.UserRole = entity.MemberRoleOwner

		// Pending invites are owner-only information.
		invites, err := uc.familyRepo.FindPendingInvitesByFamilyID(ctx, input.FamilyID)
		if err != nil {
			return nil, fmt.Errorf("failed to list pending invites: %w", err)
		}
		result.PendingInvites = invites
	}

	return &GetFamilyOutput{
		Family:  result,
		IsOwner: isOwner,
	}, nil
}
