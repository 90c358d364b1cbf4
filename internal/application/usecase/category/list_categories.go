// Package category contains category-related use cases.
package category

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	FamilyID uuid.UUID
	Type     *entity.TransactionType // Optional filter by category type
	Language string                  // Display language for localized names
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*CategoryOutput
}

// CategoryOutput represents a single category in the output.
type CategoryOutput struct {
	ID          uuid.UUID               `json:"id"`
	Name        string                  `json:"name"`
	DisplayName string                  `json:"display_name"`
	Type        entity.TransactionType  `json:"type"`
	Icon        string                  `json:"icon"`
	FamilyID    uuid.UUID               `json:"family_id"`
	CreatedBy   uuid.UUID               `json:"created_by"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

// ListCategoriesUseCase handles listing categories. Results are served from
// the list cache when a fresh entry exists for the same family and filter.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
	listCache    adapter.ListCache
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository, listCache adapter.ListCache) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		listCache:    listCache,
	}
}

// Execute performs the category listing.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	filterKey := listFilterKey(input)

	if payload, ok := uc.listCache.Get(ctx, cacheKind, input.FamilyID, filterKey); ok {
		var cached []*CategoryOutput
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &ListCategoriesOutput{Categories: cached}, nil
		}
		// Corrupt entry; fall through to the repository.
	}

	categories, err := uc.categoryRepo.FindByFamilyID(ctx, input.FamilyID, input.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	output := &ListCategoriesOutput{
		Categories: make([]*CategoryOutput, len(categories)),
	}
	for i, cat := range categories {
		output.Categories[i] = &CategoryOutput{
			ID:          cat.ID,
			Name:        cat.Name,
			DisplayName: valueobject.LocalizedName(cat.Name).Resolve(input.Language),
			Type:        cat.Type,
			Icon:        cat.Icon,
			FamilyID:    cat.FamilyID,
			CreatedBy:   cat.CreatedBy,
			CreatedAt:   cat.CreatedAt,
			UpdatedAt:   cat.UpdatedAt,
		}
	}

	if payload, err := json.Marshal(output.Categories); err == nil {
		uc.listCache.Set(ctx, cacheKind, input.FamilyID, filterKey, payload)
	}

	return output, nil
}

func listFilterKey(input ListCategoriesInput) string {
	typeKey := "all"
	if input.Type != nil {
		typeKey = string(*input.Type)
	}
	return typeKey + ":" + input.Language
}
