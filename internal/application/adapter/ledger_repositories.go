// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create saves a new category.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID. Returns nil when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByFamilyID retrieves a family's categories, optionally filtered by type.
	FindByFamilyID(ctx context.Context, familyID uuid.UUID, categoryType *entity.TransactionType) ([]*entity.Category, error)

	// Update saves changes to a category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete soft-deletes a category.
	Delete(ctx context.Context, id uuid.UUID) error
}

// TagRepository defines the interface for tag persistence operations.
type TagRepository interface {
	// Create saves a new tag.
	Create(ctx context.Context, tag *entity.Tag) error

	// FindByID retrieves a tag by its ID. Returns nil when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tag, error)

	// FindByFamilyID retrieves a family's tags ordered by name.
	FindByFamilyID(ctx context.Context, familyID uuid.UUID) ([]*entity.Tag, error)

	// Update saves changes to a tag.
	Update(ctx context.Context, tag *entity.Tag) error

	// Delete removes a tag.
	Delete(ctx context.Context, id uuid.UUID) error
}

// TransactionFilter narrows a transaction listing. Zero values mean
// "no constraint".
type TransactionFilter struct {
	Type       *entity.TransactionType
	CategoryID *uuid.UUID
	TagIDs     []uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Limit      int
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create saves a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID. Returns nil when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByFamilyID retrieves a family's transactions matching the filter,
	// ordered by date descending, then creation time descending.
	FindByFamilyID(ctx context.Context, familyID uuid.UUID, filter TransactionFilter) ([]*entity.Transaction, error)

	// SumByCategoryAndRange sums amounts of the given type for a category
	// within [start, end).
	SumByCategoryAndRange(ctx context.Context, familyID, categoryID uuid.UUID, transactionType entity.TransactionType, start, end time.Time) (decimal.Decimal, error)

	// Update saves changes to a transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete soft-deletes a transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create saves a new budget.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID. Returns nil when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindByFamilyID retrieves a family's budgets.
	FindByFamilyID(ctx context.Context, familyID uuid.UUID) ([]*entity.Budget, error)

	// Update saves changes to a budget.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget.
	Delete(ctx context.Context, id uuid.UUID) error
}
