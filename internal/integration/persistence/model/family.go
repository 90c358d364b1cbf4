// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// FamilyModel represents the families table in the database.
type FamilyModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Currency  string    `gorm:"type:varchar(3)"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the FamilyModel.
func (FamilyModel) TableName() string {
	return "families"
}

// ToEntity converts a FamilyModel to a domain Family entity.
func (m *FamilyModel) ToEntity() *entity.Family {
	return &entity.Family{
		ID:        m.ID,
		Name:      m.Name,
		Currency:  m.Currency,
		OwnerID:   m.OwnerID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FamilyFromEntity creates a FamilyModel from a domain Family entity.
func FamilyFromEntity(family *entity.Family) *FamilyModel {
	return &FamilyModel{
		ID:        family.ID,
		Name:      family.Name,
		Currency:  family.Currency,
		OwnerID:   family.OwnerID,
		CreatedAt: family.CreatedAt,
		UpdatedAt: family.UpdatedAt,
	}
}

// FamilyMemberModel represents the family_members table in the database.
// The (family_id, user_id) pair is unique: a user joins a family at most
// once.
type FamilyMemberModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FamilyID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_family_user"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_family_user"`
	Role     string    `gorm:"type:varchar(20);not null"`
	JoinedAt time.Time `gorm:"not null"`
	// User information (joined from users table)
	UserName  string `gorm:"-"`
	UserEmail string `gorm:"-"`
}

// TableName returns the table name for the FamilyMemberModel.
func (FamilyMemberModel) TableName() string {
	return "family_members"
}

// ToEntity converts a FamilyMemberModel to a domain FamilyMember entity.
func (m *FamilyMemberModel) ToEntity() *entity.FamilyMember {
	return &entity.FamilyMember{
		ID:        m.ID,
		FamilyID:  m.FamilyID,
		UserID:    m.UserID,
		Role:      entity.MemberRole(m.Role),
		JoinedAt:  m.JoinedAt,
		UserName:  m.UserName,
		UserEmail: m.UserEmail,
	}
}

// FamilyMemberFromEntity creates a FamilyMemberModel from a domain FamilyMember entity.
func FamilyMemberFromEntity(member *entity.FamilyMember) *FamilyMemberModel {
	return &FamilyMemberModel{
		ID:       member.ID,
		FamilyID: member.FamilyID,
		UserID:   member.UserID,
		Role:     string(member.Role),
		JoinedAt: member.JoinedAt,
	}
}

// FamilyInviteModel represents the family_invites table in the database.
type FamilyInviteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FamilyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Token     string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	InvitedBy uuid.UUID `gorm:"type:uuid;not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending'"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the FamilyInviteModel.
func (FamilyInviteModel) TableName() string {
	return "family_invites"
}

// ToEntity converts a FamilyInviteModel to a domain FamilyInvite entity.
func (m *FamilyInviteModel) ToEntity() *entity.FamilyInvite {
	return &entity.FamilyInvite{
		ID:        m.ID,
		FamilyID:  m.FamilyID,
		Email:     m.Email,
		Token:     m.Token,
		InvitedBy: m.InvitedBy,
		Status:    entity.InviteStatus(m.Status),
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}

// FamilyInviteFromEntity creates a FamilyInviteModel from a domain FamilyInvite entity.
func FamilyInviteFromEntity(invite *entity.FamilyInvite) *FamilyInviteModel {
	return &FamilyInviteModel{
		ID:        invite.ID,
		FamilyID:  invite.FamilyID,
		Email:     invite.Email,
		Token:     invite.Token,
		InvitedBy: invite.InvitedBy,
		Status:    string(invite.Status),
		ExpiresAt: invite.ExpiresAt,
		CreatedAt: invite.CreatedAt,
	}
}
