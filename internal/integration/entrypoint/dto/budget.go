// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	CategoryID string  `json:"category_id" binding:"required,uuid"`
	Amount     float64 `json:"amount" binding:"required"`
	Period     string  `json:"period" binding:"required,oneof=weekly monthly yearly"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Amount *float64 `json:"amount,omitempty"`
	Period *string  `json:"period,omitempty" binding:"omitempty,oneof=weekly monthly yearly"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"category_id"`
	Amount     string    `json:"amount"`
	Period     string    `json:"period"`
	FamilyID   string    `json:"family_id"`
	CreatedBy  string    `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// BudgetProgressResponse represents budget progress in API responses.
type BudgetProgressResponse struct {
	Budget     BudgetResponse `json:"budget"`
	Spent      string         `json:"spent"`
	Percentage string         `json:"percentage"`
	OverBudget string         `json:"over_budget"`
}

// BudgetProgressListResponse represents the response for budget progress.
type BudgetProgressListResponse struct {
	Progress []BudgetProgressResponse `json:"progress"`
}

// ToBudgetResponse converts a domain Budget entity to a response DTO.
func ToBudgetResponse(budget *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:         budget.ID.String(),
		CategoryID: budget.CategoryID.String(),
		Amount:     budget.Amount.String(),
		Period:     string(budget.Period),
		FamilyID:   budget.FamilyID.String(),
		CreatedBy:  budget.CreatedBy.String(),
		CreatedAt:  budget.CreatedAt,
		UpdatedAt:  budget.UpdatedAt,
	}
}

// ToBudgetListResponse converts a list of budgets to a response DTO.
func ToBudgetListResponse(budgets []*entity.Budget) BudgetListResponse {
	items := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		items[i] = ToBudgetResponse(b)
	}
	return BudgetListResponse{
		Budgets: items,
	}
}

// ToBudgetProgressListResponse converts budget progress data to a response DTO.
func ToBudgetProgressListResponse(progress []*entity.BudgetProgress) BudgetProgressListResponse {
	items := make([]BudgetProgressResponse, len(progress))
	for i, p := range progress {
		items[i] = BudgetProgressResponse{
			Budget:     ToBudgetResponse(p.Budget),
			Spent:      p.Spent.String(),
			Percentage: p.Percentage.String(),
			OverBudget: p.OverBudget.String(),
		}
	}
	return BudgetProgressListResponse{
		Progress: items,
	}
}
