// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type        string          `gorm:"type:varchar(10);not null;index"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	TagIDs      pq.StringArray  `gorm:"type:text[]"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Description string          `gorm:"type:varchar(255)"`
	FamilyID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedBy   uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
// Tag ids that fail to parse are dropped.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	tagIDs := make([]uuid.UUID, 0, len(m.TagIDs))
	for _, raw := range m.TagIDs {
		if id, err := uuid.Parse(raw); err == nil {
			tagIDs = append(tagIDs, id)
		}
	}

	return &entity.Transaction{
		ID:          m.ID,
		Amount:      m.Amount,
		Type:        entity.TransactionType(m.Type),
		CategoryID:  m.CategoryID,
		TagIDs:      tagIDs,
		Date:        m.Date,
		Description: m.Description,
		FamilyID:    m.FamilyID,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	tagIDs := make(pq.StringArray, len(transaction.TagIDs))
	for i, id := range transaction.TagIDs {
		tagIDs[i] = id.String()
	}

	model := &TransactionModel{
		ID:          transaction.ID,
		Amount:      transaction.Amount,
		Type:        string(transaction.Type),
		CategoryID:  transaction.CategoryID,
		TagIDs:      tagIDs,
		Date:        transaction.Date,
		Description: transaction.Description,
		FamilyID:    transaction.FamilyID,
		CreatedBy:   transaction.CreatedBy,
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}
	if transaction.DeletedAt != nil {
		model.DeletedAt = gorm.DeletedAt{Time: *transaction.DeletedAt, Valid: true}
	}
	return model
}
