// Package summary contains reporting use cases over a family's ledger.
package summary

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

// MonthlySummaryInput represents the input for the monthly summary.
type MonthlySummaryInput struct {
	FamilyID uuid.UUID
	Year     int
	Month    time.Month
	Language string // Display language for category names
}

// CategoryBreakdown represents one category's expense total within the month.
type CategoryBreakdown struct {
	CategoryID   uuid.UUID
	CategoryName string
	Total        decimal.Decimal
}

// MonthlySummaryOutput represents the output of the monthly summary.
type MonthlySummaryOutput struct {
	Totals    entity.TransactionTotals
	Breakdown []*CategoryBreakdown
}

// MonthlySummaryUseCase aggregates a family's transactions for one calendar
// month: income and expense totals, net, and a per-category expense
// breakdown ordered from largest to smallest.
type MonthlySummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewMonthlySummaryUseCase creates a new MonthlySummaryUseCase instance.
func NewMonthlySummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *MonthlySummaryUseCase {
	return &MonthlySummaryUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute computes the summary.
func (uc *MonthlySummaryUseCase) Execute(ctx context.Context, input MonthlySummaryInput) (*MonthlySummaryOutput, error) {
	if input.Month < time.January || input.Month > time.December {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidDate,
			"month must be between 1 and 12",
			domainerror.ErrInvalidDate,
		)
	}

	start := time.Date(input.Year, input.Month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	transactions, err := uc.transactionRepo.FindByFamilyID(ctx, input.FamilyID, adapter.TransactionFilter{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	output := &MonthlySummaryOutput{
		Totals: entity.TransactionTotals{
			IncomeTotal:  decimal.Zero,
			ExpenseTotal: decimal.Zero,
			NetTotal:     decimal.Zero,
		},
	}

	expenseByCategory := make(map[uuid.UUID]decimal.Decimal)
	var order []uuid.UUID
	for _, txn := range transactions {
		switch txn.Type {
		case entity.TransactionTypeIncome:
			output.Totals.IncomeTotal = output.Totals.IncomeTotal.Add(txn.Amount)
		case entity.TransactionTypeExpense:
			output.Totals.ExpenseTotal = output.Totals.ExpenseTotal.Add(txn.Amount)
			if _, ok := expenseByCategory[txn.CategoryID]; !ok {
				order = append(order, txn.CategoryID)
			}
			expenseByCategory[txn.CategoryID] = expenseByCategory[txn.CategoryID].Add(txn.Amount)
		}
	}
	output.Totals.NetTotal = output.Totals.IncomeTotal.Sub(output.Totals.ExpenseTotal)

	for _, categoryID := range order {
		name := ""
		if category, err := uc.categoryRepo.FindByID(ctx, categoryID); err == nil && category != nil {
			name = valueobject.LocalizedName(category.Name).Resolve(input.Language)
		}
		output.Breakdown = append(output.Breakdown, &CategoryBreakdown{
			CategoryID:   categoryID,
			CategoryName: name,
			Total:        expenseByCategory[categoryID],
		})
	}
	// Largest expense first; category id breaks ties deterministically.
	sort.Slice(output.Breakdown, func(i, j int) bool {
		a, b := output.Breakdown[i], output.Breakdown[j]
		if !a.Total.Equal(b.Total) {
			return a.Total.GreaterThan(b.Total)
		}
		return a.CategoryID.String() < b.CategoryID.String()
	})

	return output, nil
}
