// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tag represents a free-form label owned by a family. Transactions may
// reference any number of tags.
type Tag struct {
	ID        uuid.UUID
	Name      string
	FamilyID  uuid.UUID
	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTag creates a new Tag entity.
func NewTag(name string, familyID, createdBy uuid.UUID) *Tag {
	now := time.Now().UTC()

	return &Tag{
		ID:        uuid.New(),
		Name:      name,
		FamilyID:  familyID,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
