// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// CreateTagRequest represents the request body for tag creation.
type CreateTagRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// UpdateTagRequest represents the request body for tag update.
type UpdateTagRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// TagResponse represents a single tag in API responses.
type TagResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	FamilyID  string    `json:"family_id"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TagListResponse represents the response for listing tags.
type TagListResponse struct {
	Tags []TagResponse `json:"tags"`
}

// ToTagResponse converts a domain Tag entity to a TagResponse DTO.
func ToTagResponse(tag *entity.Tag) TagResponse {
	return TagResponse{
		ID:        tag.ID.String(),
		Name:      tag.Name,
		FamilyID:  tag.FamilyID.String(),
		CreatedBy: tag.CreatedBy.String(),
		CreatedAt: tag.CreatedAt,
		UpdatedAt: tag.UpdatedAt,
	}
}

// ToTagListResponse converts a list of tags to TagListResponse.
func ToTagListResponse(tags []*entity.Tag) TagListResponse {
	items := make([]TagResponse, len(tags))
	for i, t := range tags {
		items[i] = ToTagResponse(t)
	}
	return TagListResponse{
		Tags: items,
	}
}
