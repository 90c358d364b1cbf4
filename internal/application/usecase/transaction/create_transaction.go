// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// cacheKind is the list-cache namespace for transactions.
const cacheKind = "transactions"

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	FamilyID    uuid.UUID
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Type        entity.TransactionType
	CategoryID  uuid.UUID
	TagIDs      []uuid.UUID
	Date        string // ISO date, e.g. "2026-08-31"
	Description string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic. The category
// and every tag must belong to the caller's family.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	tagRepo         adapter.TagRepository
	listCache       adapter.ListCache
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	tagRepo adapter.TagRepository,
	listCache adapter.ListCache,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		tagRepo:         tagRepo,
		listCache:       listCache,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if input.Amount.IsNegative() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeNegativeAmount,
			"amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}
	if input.Type != entity.TransactionTypeIncome && input.Type != entity.TransactionTypeExpense {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be income or expense",
			domainerror.ErrInvalidTransactionType,
		)
	}

	date, err := parseDate(input.Date)
	if err != nil {
		return nil, err
	}

	if err := checkReferences(ctx, uc.categoryRepo, uc.tagRepo, input.FamilyID, input.CategoryID, input.TagIDs); err != nil {
		return nil, err
	}

	txn := entity.NewTransaction(
		input.Amount,
		input.Type,
		input.CategoryID,
		input.TagIDs,
		date,
		input.Description,
		input.FamilyID,
		input.UserID,
	)
	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	uc.listCache.Invalidate(ctx, cacheKind, input.FamilyID)

	return &CreateTransactionOutput{Transaction: txn}, nil
}

// checkReferences verifies the category and tags exist and belong to the
// family.
func checkReferences(
	ctx context.Context,
	categoryRepo adapter.CategoryRepository,
	tagRepo adapter.TagRepository,
	familyID, categoryID uuid.UUID,
	tagIDs []uuid.UUID,
) error {
	category, err := categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to find category: %w", err)
	}
	if category == nil {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}
	if category.FamilyID != familyID {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeCrossFamilyReference,
			"category belongs to another family",
			domainerror.ErrCrossFamilyReference,
		)
	}

	for _, tagID := range tagIDs {
		tag, err := tagRepo.FindByID(ctx, tagID)
		if err != nil {
			return fmt.Errorf("failed to find tag: %w", err)
		}
		if tag == nil {
			return domainerror.NewLedgerError(
				domainerror.ErrCodeTagNotFound,
				"tag not found",
				domainerror.ErrTagNotFound,
			)
		}
		if tag.FamilyID != familyID {
			return domainerror.NewLedgerError(
				domainerror.ErrCodeCrossFamilyReference,
				"tag belongs to another family",
				domainerror.ErrCrossFamilyReference,
			)
		}
	}

	return nil
}
