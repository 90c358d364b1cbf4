// Package tag contains tag-related use cases.
package tag

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// ListTagsInput represents the input for listing tags.
type ListTagsInput struct {
	FamilyID uuid.UUID
}

// ListTagsOutput represents the output of listing tags.
type ListTagsOutput struct {
	Tags []*entity.Tag
}

// ListTagsUseCase handles listing a family's tags, cache-first.
type ListTagsUseCase struct {
	tagRepo   adapter.TagRepository
	listCache adapter.ListCache
}

// NewListTagsUseCase creates a new ListTagsUseCase instance.
func NewListTagsUseCase(tagRepo adapter.TagRepository, listCache adapter.ListCache) *ListTagsUseCase {
	return &ListTagsUseCase{
		tagRepo:   tagRepo,
		listCache: listCache,
	}
}

// Execute performs the tag listing.
func (uc *ListTagsUseCase) Execute(ctx context.Context, input ListTagsInput) (*ListTagsOutput, error) {
	const filterKey = "all"

	if payload, ok := uc.listCache.Get(ctx, cacheKind, input.FamilyID, filterKey); ok {
		var cached []*entity.Tag
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &ListTagsOutput{Tags: cached}, nil
		}
	}

	tags, err := uc.tagRepo.FindByFamilyID(ctx, input.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	if payload, err := json.Marshal(tags); err == nil {
		uc.listCache.Set(ctx, cacheKind, input.FamilyID, filterKey, payload)
	}

	return &ListTagsOutput{Tags: tags}, nil
}
