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
	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

var hundred = decimal.NewFromInt(100)

// Progress derives a budget's consumption from the expense total spent
// against its category inside the current period window. The percentage is
// capped at 100; the over-budget amount is zero while within the limit.
func Progress(budget *entity.Budget, spent decimal.Decimal) *entity.BudgetProgress {
	progress := &entity.BudgetProgress{
		Budget:     budget,
		Spent:      spent,
		Percentage: hundred,
		OverBudget: decimal.Zero,
	}

	if budget.Amount.IsPositive() {
		pct := spent.Div(budget.Amount).Mul(hundred)
		if pct.LessThan(hundred) {
			progress.Percentage = pct
		}
	} else if spent.IsZero() {
		// A zero limit with no spending is 0% consumed, not 100%.
		progress.Percentage = decimal.Zero
	}

	if over := spent.Sub(budget.Amount); over.IsPositive() {
		progress.OverBudget = over
	}

	return progress
}

// GetBudgetProgressInput represents the input for budget progress reporting.
type GetBudgetProgressInput struct {
	FamilyID uuid.UUID
	// At anchors the period windows; zero means now.
	At time.Time
}

// GetBudgetProgressOutput represents the output of budget progress reporting.
type GetBudgetProgressOutput struct {
	Progress []*entity.BudgetProgress
}

// GetBudgetProgressUseCase reports every family budget with its spent total
// for the period window containing the anchor instant.
type GetBudgetProgressUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetBudgetProgressUseCase creates a new GetBudgetProgressUseCase instance.
func NewGetBudgetProgressUseCase(
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
) *GetBudgetProgressUseCase {
	return &GetBudgetProgressUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute computes the progress of every budget in the family.
func (uc *GetBudgetProgressUseCase) Execute(ctx context.Context, input GetBudgetProgressInput) (*GetBudgetProgressOutput, error) {
	at := input.At
	if at.IsZero() {
		at = time.Now().UTC()
	}

	budgets, err := uc.budgetRepo.FindByFamilyID(ctx, input.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	output := &GetBudgetProgressOutput{
		Progress: make([]*entity.BudgetProgress, len(budgets)),
	}
	for i, b := range budgets {
		start, end := valueobject.PeriodBounds(at, b.Period)
		spent, err := uc.transactionRepo.SumByCategoryAndRange(
			ctx, input.FamilyID, b.CategoryID, entity.TransactionTypeExpense, start, end,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to sum spending: %w", err)
		}
		output.Progress[i] = Progress(b, spent)
	}

	return output, nil
}
