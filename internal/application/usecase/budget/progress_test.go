// Package budget contains budget-related use cases.
package budget

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

func TestProgress(t *testing.T) {
	newBudget := func(limit int64) *entity.Budget {
		return entity.NewBudget(uuid.New(), decimal.NewFromInt(limit), entity.BudgetPeriodMonthly, uuid.New(), uuid.New())
	}

	tests := []struct {
		name           string
		limit          int64
		spent          int64
		wantSpent      string
		wantPercentage string
		wantOver       string
	}{
		{
			name:           "overspent budget caps the percentage",
			limit:          100,
			spent:          120,
			wantSpent:      "120",
			wantPercentage: "100",
			wantOver:       "20",
		},
		{
			name:           "within limit",
			limit:          200,
			spent:          50,
			wantSpent:      "50",
			wantPercentage: "25",
			wantOver:       "0",
		},
		{
			name:           "exactly at limit",
			limit:          100,
			spent:          100,
			wantSpent:      "100",
			wantPercentage: "100",
			wantOver:       "0",
		},
		{
			name:           "nothing spent",
			limit:          100,
			spent:          0,
			wantSpent:      "0",
			wantPercentage: "0",
			wantOver:       "0",
		},
		{
			name:           "zero limit with spending",
			limit:          0,
			spent:          10,
			wantSpent:      "10",
			wantPercentage: "100",
			wantOver:       "10",
		},
		{
			name:           "zero limit without spending",
			limit:          0,
			spent:          0,
			wantSpent:      "0",
			wantPercentage: "0",
			wantOver:       "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Progress(newBudget(tt.limit), decimal.NewFromInt(tt.spent))

			if got.Spent.String() != tt.wantSpent {
				t.Errorf("Spent = %s, want %s", got.Spent, tt.wantSpent)
			}
			if got.Percentage.String() != tt.wantPercentage {
				t.Errorf("Percentage = %s, want %s", got.Percentage, tt.wantPercentage)
			}
			if got.OverBudget.String() != tt.wantOver {
				t.Errorf("OverBudget = %s, want %s", got.OverBudget, tt.wantOver)
			}
		})
	}
}
