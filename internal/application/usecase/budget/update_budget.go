// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// UpdateBudgetInput represents the input for budget update. Nil pointer
// fields are left unchanged.
type UpdateBudgetInput struct {
	FamilyID uuid.UUID
	BudgetID uuid.UUID
	Amount   *decimal.Decimal
	Period   *entity.BudgetPeriod
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	listCache  adapter.ListCache
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository, listCache adapter.ListCache) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
		listCache:  listCache,
	}
}

// Execute performs the budget update.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}
	if budget == nil || budget.FamilyID != input.FamilyID {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}

	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeNegativeAmount,
				"amount must not be negative",
				domainerror.ErrNegativeAmount,
			)
		}
		budget.Amount = *input.Amount
	}
	if input.Period != nil {
		if !input.Period.IsValid() {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeInvalidBudgetPeriod,
				"period must be weekly, monthly or yearly",
				domainerror.ErrInvalidBudgetPeriod,
			)
		}
		budget.Period = *input.Period
	}
	budget.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	uc.listCache.Invalidate(ctx, cacheKind, input.FamilyID)

	return &UpdateBudgetOutput{Budget: budget}, nil
}
