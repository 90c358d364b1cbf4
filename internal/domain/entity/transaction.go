// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents a single income or expense record owned by a family.
// Amount is a non-negative magnitude; the sign is implied by Type.
type Transaction struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Type        TransactionType
	CategoryID  uuid.UUID
	TagIDs      []uuid.UUID
	Date        time.Time
	Description string
	FamilyID    uuid.UUID
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	amount decimal.Decimal,
	transactionType TransactionType,
	categoryID uuid.UUID,
	tagIDs []uuid.UUID,
	date time.Time,
	description string,
	familyID, createdBy uuid.UUID,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		Amount:      amount,
		Type:        transactionType,
		CategoryID:  categoryID,
		TagIDs:      tagIDs,
		Date:        date,
		Description: description,
		FamilyID:    familyID,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// SignedAmount returns the amount negated for expenses.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TransactionWithCategory represents a transaction joined with its category.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}

// TransactionTotals represents aggregated totals for a set of transactions.
type TransactionTotals struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	NetTotal     decimal.Decimal
}
