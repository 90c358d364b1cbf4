// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType represents the direction of money movement.
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// DefaultCategoryIcon is the default icon for categories.
const DefaultCategoryIcon = "tag"

// Category represents a transaction category owned by a family. Name holds
// either a plain string or a JSON language map (see valueobject.LocalizedName).
type Category struct {
	ID        uuid.UUID
	Name      string
	Type      TransactionType
	Icon      string
	FamilyID  uuid.UUID
	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewCategory creates a new Category entity.
// Defaulting logic for the icon is applied in the application layer before
// calling this constructor.
func NewCategory(name string, categoryType TransactionType, icon string, familyID, createdBy uuid.UUID) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Type:      categoryType,
		Icon:      icon,
		FamilyID:  familyID,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
