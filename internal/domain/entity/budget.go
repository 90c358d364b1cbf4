// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod represents the recurring window a budget limit applies to.
type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// IsValid reports whether the period is one of the supported values.
func (p BudgetPeriod) IsValid() bool {
	switch p {
	case BudgetPeriodWeekly, BudgetPeriodMonthly, BudgetPeriodYearly:
		return true
	}
	return false
}

// Budget represents a per-category spending limit owned by a family.
type Budget struct {
	ID         uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Period     BudgetPeriod
	FamilyID   uuid.UUID
	CreatedBy  uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(categoryID uuid.UUID, amount decimal.Decimal, period BudgetPeriod, familyID, createdBy uuid.UUID) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:         uuid.New(),
		CategoryID: categoryID,
		Amount:     amount,
		Period:     period,
		FamilyID:   familyID,
		CreatedBy:  createdBy,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// BudgetProgress represents a budget's consumption within its current period.
type BudgetProgress struct {
	Budget     *Budget
	Spent      decimal.Decimal
	Percentage decimal.Decimal // capped at 100
	OverBudget decimal.Decimal // zero when within the limit
}
