// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// FamilyRepository defines the interface for family persistence operations.
type FamilyRepository interface {
	// CreateFamilyWithOwner creates a family and the creator's owner
	// membership in a single transaction.
	CreateFamilyWithOwner(ctx context.Context, family *entity.Family, owner *entity.FamilyMember) error

	// FindFamilyByID retrieves a family by its ID. Returns nil when absent.
	FindFamilyByID(ctx context.Context, id uuid.UUID) (*entity.Family, error)

	// FindOwnedFamilies retrieves the families owned by a user, ordered by name.
	FindOwnedFamilies(ctx context.Context, ownerID uuid.UUID) ([]*entity.Family, error)

	// FindMembershipsWithFamilies retrieves a user's membership records, each
	// joined with its family. Memberships whose family no longer exists are
	// omitted.
	FindMembershipsWithFamilies(ctx context.Context, userID uuid.UUID) ([]*entity.MembershipWithFamily, error)

	// UpdateFamily updates an existing family.
	UpdateFamily(ctx context.Context, family *entity.Family) error

	// DeleteFamily removes a family and its memberships.
	DeleteFamily(ctx context.Context, id uuid.UUID) error

	// CreateMember adds a new member to a family.
	CreateMember(ctx context.Context, member *entity.FamilyMember) error

	// FindMemberByID retrieves a family member by their record ID.
	FindMemberByID(ctx context.Context, id uuid.UUID) (*entity.FamilyMember, error)

	// FindMemberByFamilyAndUser retrieves a member by family and user ID.
	FindMemberByFamilyAndUser(ctx context.Context, familyID, userID uuid.UUID) (*entity.FamilyMember, error)

	// FindMembersByFamilyID retrieves all members of a family.
	FindMembersByFamilyID(ctx context.Context, familyID uuid.UUID) ([]*entity.FamilyMember, error)

	// DeleteMember removes a member from a family.
	DeleteMember(ctx context.Context, id uuid.UUID) error

	// IsUserInFamily checks whether a user owns or is a member of a family.
	IsUserInFamily(ctx context.Context, familyID, userID uuid.UUID) (bool, error)

	// CreateInvite creates a new family invitation.
	CreateInvite(ctx context.Context, invite *entity.FamilyInvite) error

	// FindInviteByToken retrieves an invitation by its token.
	FindInviteByToken(ctx context.Context, token string) (*entity.FamilyInvite, error)

	// FindPendingInviteByFamilyAndEmail retrieves a pending invite by family and email.
	FindPendingInviteByFamilyAndEmail(ctx context.Context, familyID uuid.UUID, email string) (*entity.FamilyInvite, error)

	// FindPendingInvitesByFamilyID retrieves all pending invites for a family.
	FindPendingInvitesByFamilyID(ctx context.Context, familyID uuid.UUID) ([]*entity.FamilyInvite, error)

	// UpdateInvite updates an invitation.
	UpdateInvite(ctx context.Context, invite *entity.FamilyInvite) error
}
