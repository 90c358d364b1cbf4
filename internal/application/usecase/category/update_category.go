// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for category update. Nil pointer
// fields are left unchanged.
type UpdateCategoryInput struct {
	FamilyID       uuid.UUID
	CategoryID     uuid.UUID
	Name           *string
	LocalizedNames map[string]string
	Type           *entity.TransactionType
	Icon           *string
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	listCache    adapter.ListCache
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository, listCache adapter.ListCache) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
		listCache:    listCache,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if category == nil || category.FamilyID != input.FamilyID {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	if len(input.LocalizedNames) > 0 || (input.Name != nil && *input.Name != "") {
		var plain string
		if input.Name != nil {
			plain = *input.Name
		}
		name, err := storedName(plain, input.LocalizedNames)
		if err != nil {
			return nil, err
		}
		category.Name = name
	}
	if input.Type != nil {
		if *input.Type != entity.TransactionTypeIncome && *input.Type != entity.TransactionTypeExpense {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeInvalidTransactionType,
				"type must be income or expense",
				domainerror.ErrInvalidTransactionType,
			)
		}
		category.Type = *input.Type
	}
	if input.Icon != nil {
		category.Icon = *input.Icon
		if category.Icon == "" {
			category.Icon = entity.DefaultCategoryIcon
		}
	}
	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	uc.listCache.Invalidate(ctx, cacheKind, input.FamilyID)

	return &UpdateCategoryOutput{Category: category}, nil
}
