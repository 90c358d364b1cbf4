// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	FamilyID uuid.UUID
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []*entity.Budget
}

// ListBudgetsUseCase handles listing a family's budgets, cache-first.
type ListBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
	listCache  adapter.ListCache
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository, listCache adapter.ListCache) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo: budgetRepo,
		listCache:  listCache,
	}
}

// Execute performs the budget listing.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	const filterKey = "all"

	if payload, ok := uc.listCache.Get(ctx, cacheKind, input.FamilyID, filterKey); ok {
		var cached []*entity.Budget
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &ListBudgetsOutput{Budgets: cached}, nil
		}
	}

	budgets, err := uc.budgetRepo.FindByFamilyID(ctx, input.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	if payload, err := json.Marshal(budgets); err == nil {
		uc.listCache.Set(ctx, cacheKind, input.FamilyID, filterKey, payload)
	}

	return &ListBudgetsOutput{Budgets: budgets}, nil
}
