// Package transaction contains transaction-related use cases.
package transaction

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

// UpdateTransactionInput represents the input for transaction update. Nil
// pointer fields are left unchanged; TagIDs nil means unchanged, empty slice
// clears the tags.
type UpdateTransactionInput struct {
	FamilyID      uuid.UUID
	TransactionID uuid.UUID
	Amount        *decimal.Decimal
	Type          *entity.TransactionType
	CategoryID    *uuid.UUID
	TagIDs        []uuid.UUID
	Date          *string
	Description   *string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	tagRepo         adapter.TagRepository
	listCache       adapter.ListCache
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	tagRepo adapter.TagRepository,
	listCache adapter.ListCache,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		tagRepo:         tagRepo,
		listCache:       listCache,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	txn, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	if txn == nil || txn.FamilyID != input.FamilyID {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
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
		txn.Amount = *input.Amount
	}
	if input.Type != nil {
		if *input.Type != entity.TransactionTypeIncome && *input.Type != entity.TransactionTypeExpense {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeInvalidTransactionType,
				"type must be income or expense",
				domainerror.ErrInvalidTransactionType,
			)
		}
		txn.Type = *input.Type
	}
	if input.CategoryID != nil {
		txn.CategoryID = *input.CategoryID
	}
	if input.TagIDs != nil {
		txn.TagIDs = input.TagIDs
	}
	if input.Date != nil {
		date, err := parseDate(*input.Date)
		if err != nil {
			return nil, err
		}
		txn.Date = date
	}
	if input.Description != nil {
		txn.Description = *input.Description
	}

	if err := checkReferences(ctx, uc.categoryRepo, uc.tagRepo, input.FamilyID, txn.CategoryID, txn.TagIDs); err != nil {
		return nil, err
	}

	txn.UpdatedAt = time.Now().UTC()
	if err := uc.transactionRepo.Update(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	uc.listCache.Invalidate(ctx, cacheKind, input.FamilyID)

	return &UpdateTransactionOutput{Transaction: txn}, nil
}
