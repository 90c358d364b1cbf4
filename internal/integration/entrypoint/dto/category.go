// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budget-tracker/backend/internal/application/usecase/category"
	"github.com/budget-tracker/backend/internal/domain/entity"
	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

// CreateCategoryRequest represents the request body for category creation.
// Name and LocalizedNames are alternatives; when both are present the
// language map wins.
type CreateCategoryRequest struct {
	Name           string            `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	LocalizedNames map[string]string `json:"localized_names,omitempty"`
	Type           string            `json:"type" binding:"required,oneof=expense income"`
	Icon           string            `json:"icon,omitempty"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name           *string           `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	LocalizedNames map[string]string `json:"localized_names,omitempty"`
	Type           *string           `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	Icon           *string           `json:"icon,omitempty"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	Type        string    `json:"type"`
	Icon        string    `json:"icon"`
	FamilyID    string    `json:"family_id"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse
// DTO, resolving the display name for the given language.
func ToCategoryResponse(cat *entity.Category, language string) CategoryResponse {
	return CategoryResponse{
		ID:          cat.ID.String(),
		Name:        cat.Name,
		DisplayName: valueobject.LocalizedName(cat.Name).Resolve(language),
		Type:        string(cat.Type),
		Icon:        cat.Icon,
		FamilyID:    cat.FamilyID.String(),
		CreatedBy:   cat.CreatedBy.String(),
		CreatedAt:   cat.CreatedAt,
		UpdatedAt:   cat.UpdatedAt,
	}
}

// ToCategoryResponseFromOutput converts a CategoryOutput to a CategoryResponse DTO.
func ToCategoryResponseFromOutput(output *category.CategoryOutput) CategoryResponse {
	return CategoryResponse{
		ID:          output.ID.String(),
		Name:        output.Name,
		DisplayName: output.DisplayName,
		Type:        string(output.Type),
		Icon:        output.Icon,
		FamilyID:    output.FamilyID.String(),
		CreatedBy:   output.CreatedBy.String(),
		CreatedAt:   output.CreatedAt,
		UpdatedAt:   output.UpdatedAt,
	}
}

// ToCategoryListResponse converts a list of CategoryOutput to CategoryListResponse.
func ToCategoryListResponse(outputs []*category.CategoryOutput) CategoryListResponse {
	categories := make([]CategoryResponse, len(outputs))
	for i, output := range outputs {
		categories[i] = ToCategoryResponseFromOutput(output)
	}
	return CategoryListResponse{
		Categories: categories,
	}
}
