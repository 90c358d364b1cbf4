// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// cacheKind is the list-cache namespace for budgets.
const cacheKind = "budgets"

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	FamilyID   uuid.UUID
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Period     entity.BudgetPeriod
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
	listCache    adapter.ListCache
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
	listCache adapter.ListCache,
) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		listCache:    listCache,
	}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if input.Amount.IsNegative() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeNegativeAmount,
			"amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}
	if !input.Period.IsValid() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"period must be weekly, monthly or yearly",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}

	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if category == nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}
	if category.FamilyID != input.FamilyID {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeCrossFamilyReference,
			"category belongs to another family",
			domainerror.ErrCrossFamilyReference,
		)
	}

	budget := entity.NewBudget(input.CategoryID, input.Amount, input.Period, input.FamilyID, input.UserID)
	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	uc.listCache.Invalidate(ctx, cacheKind, input.FamilyID)

	return &CreateBudgetOutput{Budget: budget}, nil
}
