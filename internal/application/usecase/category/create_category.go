// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

// cacheKind is the list-cache namespace for categories.
const cacheKind = "categories"

// CreateCategoryInput represents the input for category creation. Name is a
// plain display name; LocalizedNames, when present, takes precedence and is
// encoded as a language map.
type CreateCategoryInput struct {
	FamilyID       uuid.UUID
	UserID         uuid.UUID
	Name           string
	LocalizedNames map[string]string
	Type           entity.TransactionType
	Icon           string
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	listCache    adapter.ListCache
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository, listCache adapter.ListCache) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		listCache:    listCache,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name, err := storedName(input.Name, input.LocalizedNames)
	if err != nil {
		return nil, err
	}

	if input.Type != entity.TransactionTypeIncome && input.Type != entity.TransactionTypeExpense {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be income or expense",
			domainerror.ErrInvalidTransactionType,
		)
	}

	icon := input.Icon
	if icon == "" {
		icon = entity.DefaultCategoryIcon
	}

	category := entity.NewCategory(name, input.Type, icon, input.FamilyID, input.UserID)
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	uc.listCache.Invalidate(ctx, cacheKind, input.FamilyID)

	return &CreateCategoryOutput{Category: category}, nil
}

// storedName resolves the text stored in the name column: an encoded
// language map when localized values were supplied, the plain name otherwise.
func storedName(plain string, localized map[string]string) (string, error) {
	if len(localized) > 0 {
		encoded, err := valueobject.NewLocalizedName(localized)
		if err != nil {
			return "", fmt.Errorf("failed to encode localized name: %w", err)
		}
		return string(encoded), nil
	}
	if plain == "" {
		return "", domainerror.NewLedgerError(
			domainerror.ErrCodeNameRequired,
			"name is required",
			domainerror.ErrNameRequired,
		)
	}
	return plain, nil
}
