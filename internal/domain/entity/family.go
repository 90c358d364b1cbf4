// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MemberRole represents the role of a member in a family.
type MemberRole string

const (
	MemberRoleOwner  MemberRole = "owner"
	MemberRoleMember MemberRole = "member"
)

// InviteStatus represents the status of a family invitation.
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusDeclined InviteStatus = "declined"
	InviteStatusExpired  InviteStatus = "expired"
)

// Family represents a shared workspace grouping users who jointly track
// finances. Every category, tag, transaction, and budget belongs to exactly
// one family.
type Family struct {
	ID        uuid.UUID
	Name      string
	Currency  string // optional ISO 4217 code, empty when unset
	OwnerID   uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewFamily creates a new Family entity.
func NewFamily(name, currency string, ownerID uuid.UUID) *Family {
	now := time.Now().UTC()

	return &Family{
		ID:        uuid.New(),
		Name:      name,
		Currency:  currency,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// FamilyMember represents the relation granting a user access to a family.
type FamilyMember struct {
	ID       uuid.UUID
	FamilyID uuid.UUID
	UserID   uuid.UUID
	Role     MemberRole
	JoinedAt time.Time
	// User information (populated when needed)
	UserName  string
	UserEmail string
}

// NewFamilyMember creates a new FamilyMember entity.
func NewFamilyMember(familyID, userID uuid.UUID, role MemberRole) *FamilyMember {
	return &FamilyMember{
		ID:       uuid.New(),
		FamilyID: familyID,
		UserID:   userID,
		Role:     role,
		JoinedAt: time.Now().UTC(),
	}
}

// MembershipWithFamily is a membership record joined with its family.
type MembershipWithFamily struct {
	Member *FamilyMember
	Family *Family
}

// FamilyInvite represents an invitation to join a family.
type FamilyInvite struct {
	ID        uuid.UUID
	FamilyID  uuid.UUID
	Email     string
	Token     string
	InvitedBy uuid.UUID
	Status    InviteStatus
	ExpiresAt time.Time
	CreatedAt time.Time
}

// NewFamilyInvite creates a new FamilyInvite entity.
func NewFamilyInvite(familyID uuid.UUID, email, token string, invitedBy uuid.UUID, expiresAt time.Time) *FamilyInvite {
	return &FamilyInvite{
		ID:        uuid.New(),
		FamilyID:  familyID,
		Email:     email,
		Token:     token,
		InvitedBy: invitedBy,
		Status:    InviteStatusPending,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
}

// IsExpired checks if the invitation has expired.
func (i *FamilyInvite) IsExpired() bool {
	return time.Now().UTC().After(i.ExpiresAt)
}

// FamilyWithMembers represents a family with its members.
type FamilyWithMembers struct {
	Family         *Family
	Members        []*FamilyMember
	PendingInvites []*FamilyInvite
	MemberCount    int
	UserRole       MemberRole
}

// AccessibleFamilies merges owned families with the families referenced by
// the user's memberships. A family present in both sets appears once,
// attributed to ownership. Owned families come first in their query order,
// followed by member-only families in membership order.
func AccessibleFamilies(owned []*Family, memberships []*MembershipWithFamily) []*Family {
	ownedIDs := make(map[uuid.UUID]struct{}, len(owned))
	for _, f := range owned {
		ownedIDs[f.ID] = struct{}{}
	}

	accessible := make([]*Family, 0, len(owned)+len(memberships))
	accessible = append(accessible, owned...)
	for _, m := range memberships {
		if m.Family == nil {
			continue
		}
		if _, ok := ownedIDs[m.Family.ID]; ok {
			continue
		}
		accessible = append(accessible, m.Family)
		ownedIDs[m.Family.ID] = struct{}{}
	}

	return accessible
}
