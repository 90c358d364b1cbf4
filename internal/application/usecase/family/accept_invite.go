// Package family contains family-related use cases.
package family

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// AcceptInviteInput represents the input for accepting an invitation.
type AcceptInviteInput struct {
	Token  string
	UserID uuid.UUID
}

// AcceptInviteOutput represents the output of accepting an invitation.
type AcceptInviteOutput struct {
	Family *entity.Family
	Member *entity.FamilyMember
}

// AcceptInviteUseCase handles family invitation acceptance.
type AcceptInviteUseCase struct {
	familyRepo adapter.FamilyRepository
	userRepo   adapter.UserRepository
}

// NewAcceptInviteUseCase creates a new AcceptInviteUseCase instance.
func NewAcceptInviteUseCase(familyRepo adapter.FamilyRepository, userRepo adapter.UserRepository) *AcceptInviteUseCase {
	return &AcceptInviteUseCase{
		familyRepo: familyRepo,
		userRepo:   userRepo,
	}
}

// Execute performs the invitation acceptance.
func (uc *AcceptInviteUseCase) Execute(ctx context.Context, input AcceptInviteInput) (*AcceptInviteOutput, error) {
	invite, err := uc.familyRepo.FindInviteByToken(ctx, input.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to find invite: %w", err)
	}
	if invite == nil || invite.Status != entity.InviteStatusPending {
		return nil, domainerror.NewFamilyError(
			domainerror.ErrCodeInviteNotFound,
			"invite not found",
			domainerror.ErrInviteNotFound,
		)
	}
	if invite.IsExpired() {
		invite.Status = entity.InviteStatusExpired
		_ = uc.familyRepo.UpdateInvite(ctx, invite)
		return nil, domainerror.NewFamilyError(
			domainerror.ErrCodeInviteExpired,
			"invite has expired",
			domainerror.ErrInviteExpired,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil || !strings.EqualFold(user.Email, invite.Email) {
		return nil, domainerror.NewFamilyError(
			domainerror.ErrCodeInviteNotFound,
			"invite was issued to a different email address",
			domainerror.ErrInviteNotFound,
		)
	}

	family, err := uc.familyRepo.FindFamilyByID(ctx, invite.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get family: %w", err)
	}
	if family == nil {
		return nil, domainerror.NewFamilyError(
			domainerror.ErrCodeFamilyNotFound,
			"family no longer exists",
			domainerror.ErrFamilyNotFound,
		)
	}

	inFamily, err := uc.familyRepo.IsUserInFamily(ctx, invite.FamilyID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if inFamily {
		return nil, domainerror.NewFamilyError(
			domainerror.ErrCodeUserAlreadyMember,
			"you are already a member of this family",
			domainerror.ErrUserAlreadyMember,
		)
	}

	member := entity.NewFamilyMember(invite.FamilyID, input.UserID, entity.MemberRoleMember)
	member.UserName = user.Name
	member.UserEmail = user.Email

	if err := uc.familyRepo.CreateMember(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	invite.Status = entity.InviteStatusAccepted
	if err := uc.familyRepo.UpdateInvite(ctx, invite); err != nil {
		return nil, fmt.Errorf("failed to update invite: %w", err)
	}

	return &AcceptInviteOutput{
		Family: family,
		Member: member,
	}, nil
}
