// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// MaxListLimit caps how many transactions one listing returns.
const MaxListLimit = 1000

// ListTransactionsInput represents the input for listing transactions.
// Ordering is fixed: date descending, then creation time descending.
type ListTransactionsInput struct {
	FamilyID   uuid.UUID
	Type       *entity.TransactionType
	CategoryID *uuid.UUID
	TagIDs     []uuid.UUID
	StartDate  string // Optional ISO date, inclusive
	EndDate    string // Optional ISO date, inclusive
	Limit      int    // 0 means MaxListLimit
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
}

// ListTransactionsUseCase handles listing transactions, cache-first.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	listCache       adapter.ListCache
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository, listCache adapter.ListCache) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		listCache:       listCache,
	}
}

// Execute performs the transaction listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	filter, err := uc.buildFilter(input)
	if err != nil {
		return nil, err
	}
	filterKey := transactionFilterKey(input, filter.Limit)

	if payload, ok := uc.listCache.Get(ctx, cacheKind, input.FamilyID, filterKey); ok {
		var cached []*entity.Transaction
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &ListTransactionsOutput{Transactions: cached}, nil
		}
	}

	transactions, err := uc.transactionRepo.FindByFamilyID(ctx, input.FamilyID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	if payload, err := json.Marshal(transactions); err == nil {
		uc.listCache.Set(ctx, cacheKind, input.FamilyID, filterKey, payload)
	}

	return &ListTransactionsOutput{Transactions: transactions}, nil
}

func (uc *ListTransactionsUseCase) buildFilter(input ListTransactionsInput) (adapter.TransactionFilter, error) {
	filter := adapter.TransactionFilter{
		Type:       input.Type,
		CategoryID: input.CategoryID,
		TagIDs:     input.TagIDs,
		Limit:      input.Limit,
	}
	if filter.Limit <= 0 || filter.Limit > MaxListLimit {
		filter.Limit = MaxListLimit
	}

	if input.StartDate != "" {
		start, err := parseDate(input.StartDate)
		if err != nil {
			return adapter.TransactionFilter{}, err
		}
		filter.StartDate = &start
	}
	if input.EndDate != "" {
		end, err := parseDate(input.EndDate)
		if err != nil {
			return adapter.TransactionFilter{}, err
		}
		// Inclusive on the wire, exclusive in the query.
		end = end.AddDate(0, 0, 1)
		filter.EndDate = &end
	}

	return filter, nil
}

// transactionFilterKey fingerprints the filter so equal queries share a
// cache entry. Tag order is irrelevant to the query, so tags are sorted.
func transactionFilterKey(input ListTransactionsInput, limit int) string {
	var b strings.Builder
	if input.Type != nil {
		b.WriteString(string(*input.Type))
	}
	b.WriteByte(':')
	if input.CategoryID != nil {
		b.WriteString(input.CategoryID.String())
	}
	b.WriteByte(':')
	tags := make([]string, len(input.TagIDs))
	for i, id := range input.TagIDs {
		tags[i] = id.String()
	}
	sort.Strings(tags)
	b.WriteString(strings.Join(tags, ","))
	fmt.Fprintf(&b, ":%s:%s:%d", input.StartDate, input.EndDate, limit)
	return b.String()
}
