// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/budget-tracker/backend/internal/application/usecase/summary"
)

// SummaryTotalsResponse represents aggregated totals in API responses.
type SummaryTotalsResponse struct {
	IncomeTotal  string `json:"income_total"`
	ExpenseTotal string `json:"expense_total"`
	NetTotal     string `json:"net_total"`
}

// CategoryBreakdownResponse represents per-category expense totals.
type CategoryBreakdownResponse struct {
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	Total        string `json:"total"`
}

// MonthlySummaryResponse represents the response for the monthly summary.
type MonthlySummaryResponse struct {
	Totals    SummaryTotalsResponse       `json:"totals"`
	Breakdown []CategoryBreakdownResponse `json:"breakdown"`
}

// ToMonthlySummaryResponse converts summary output to a response DTO.
func ToMonthlySummaryResponse(output *summary.MonthlySummaryOutput) MonthlySummaryResponse {
	breakdown := make([]CategoryBreakdownResponse, len(output.Breakdown))
	for i, b := range output.Breakdown {
		breakdown[i] = CategoryBreakdownResponse{
			CategoryID:   b.CategoryID.String(),
			CategoryName: b.CategoryName,
			Total:        b.Total.String(),
		}
	}

	return MonthlySummaryResponse{
		Totals: SummaryTotalsResponse{
			IncomeTotal:  output.Totals.IncomeTotal.String(),
			ExpenseTotal: output.Totals.ExpenseTotal.String(),
			NetTotal:     output.Totals.NetTotal.String(),
		},
		Breakdown: breakdown,
	}
}
