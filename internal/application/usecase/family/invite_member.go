// Package family contains family-related use cases.
package family

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

const (
	// InviteTokenLength is the length of the invite token in bytes.
	InviteTokenLength = 32
	// InviteExpirationDays is the number of days until an invite expires.
	InviteExpirationDays = 7
)

// emailRegex is compiled once at package level for performance.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// InviteMemberInput represents the input for inviting a member.
type InviteMemberInput struct {
	FamilyID  uuid.UUID
	Email     string
	InviterID uuid.UUID
	// BaseURL is the application URL the invite link is built on.
	BaseURL string
}

// InviteMemberOutput represents the output of inviting a member.
type InviteMemberOutput struct {
	Invite *entity.FamilyInvite
}

// InviteMemberUseCase handles inviting members to a family. Only the owner
// may invite.
type InviteMemberUseCase struct {
	familyRepo   adapter.FamilyRepository
	userRepo     adapter.UserRepository
	emailService adapter.EmailService
}

// NewInviteMemberUseCase creates a new InviteMemberUseCase instance.
func NewInviteMemberUseCase(
	familyRepo adapter.FamilyRepository,
	userRepo adapter.UserRepository,
	emailService adapter.EmailService,
) *InviteMemberUseCase {
	return &InviteMemberUseCase{
		familyRepo:   familyRepo,
		userRepo:     userRepo,
		emailService: emailService,
	}
}

// Execute performs the member invitation.
func (uc *InviteMemberUseCase) Execute(ctx context.Context, input InviteMemberInput) (*InviteMemberOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if !emailRegex.MatchString(email) {
		return nil, domainerror.NewFamilyError(
			domainerror.ErrCodeInvalidFamilyEmail,
			"invalid email address",
			domainerror.ErrInvalidFamilyEmail,
		)
	}

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
	if family.OwnerID != input.InviterID {
		return nil, domainerror.NewFamilyError(
			domainerror.ErrCodeNotFamilyOwner,
			"only the family owner can invite members",
			domainerror.ErrNotFamilyOwner,
		)
	}

	inviter, err := uc.userRepo.FindByID(ctx, input.InviterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inviter info: %w", err)
	}
	if strings.EqualFold(inviter.Email, email) {
		return nil, domainerror.NewFamilyError(
			domainerror.ErrCodeCannotInviteSelf,
			"you cannot invite yourself",
			domainerror.ErrCannotInviteSelf,
		)
	}

	// Already a member?
	existingUser, err := uc.userRepo.FindByEmail(ctx, email)
	if err == nil && existingUser != nil {
		inFamily, err := uc.familyRepo.IsUserInFamily(ctx, input.FamilyID, existingUser.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing membership: %w", err)
		}
		if inFamily {
			return nil, domainerror.NewFamilyError(
				domainerror.ErrCodeUserAlreadyMember,
				"user is already a member of this family",
				domainerror.ErrUserAlreadyMember,
			)
		}
	}

	existingInvite, err := uc.familyRepo.FindPendingInviteByFamilyAndEmail(ctx, input.FamilyID, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing invites: %w", err)
	}
	if existingInvite != nil {
		return nil, domainerror.NewFamilyError(
			domainerror.ErrCodeInviteAlreadyExists,
			"an invite already exists for this email",
			domainerror.ErrInviteAlreadyExists,
		)
	}

	token, err := generateInviteToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invite token: %w", err)
	}

	expiresAt := time.Now().UTC().AddDate(0, 0, InviteExpirationDays)
	invite := entity.NewFamilyInvite(input.FamilyID, email, token, input.InviterID, expiresAt)

	if err := uc.familyRepo.CreateInvite(ctx, invite); err != nil {
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}

	if uc.emailService != nil {
		queueErr := uc.emailService.QueueFamilyInvitationEmail(ctx, adapter.QueueFamilyInvitationInput{
			InviterName:  inviter.Name,
			InviterEmail: inviter.Email,
			FamilyName:   family.Name,
			InviteEmail:  email,
			InviteURL:    fmt.Sprintf("%s/invites/%s", strings.TrimRight(input.BaseURL, "/"), token),
			ExpiresIn:    fmt.Sprintf("%d days", InviteExpirationDays),
		})
		if queueErr != nil {
			// The invite row exists; the owner can still share the link.
			slog.Warn("Failed to queue invitation email", "error", queueErr, "family_id", input.FamilyID)
		}
	}

	return &InviteMemberOutput{Invite: invite}, nil
}

// generateInviteToken generates a secure random token for invites.
func generateInviteToken() (string, error) {
	bytes := make([]byte, InviteTokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
