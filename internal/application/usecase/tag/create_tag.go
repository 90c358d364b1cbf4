// Package tag contains tag-related use cases.
package tag

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// cacheKind is the list-cache namespace for tags.
const cacheKind = "tags"

// CreateTagInput represents the input for tag creation.
type CreateTagInput struct {
	FamilyID uuid.UUID
	UserID   uuid.UUID
	Name     string
}

// CreateTagOutput represents the output of tag creation.
type CreateTagOutput struct {
	Tag *entity.Tag
}

// CreateTagUseCase handles tag creation logic.
type CreateTagUseCase struct {
	tagRepo   adapter.TagRepository
	listCache adapter.ListCache
}

// NewCreateTagUseCase creates a new CreateTagUseCase instance.
func NewCreateTagUseCase(tagRepo adapter.TagRepository, listCache adapter.ListCache) *CreateTagUseCase {
	return &CreateTagUseCase{
		tagRepo:   tagRepo,
		listCache: listCache,
	}
}

// Execute performs the tag creation.
func (uc *CreateTagUseCase) Execute(ctx context.Context, input CreateTagInput) (*CreateTagOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeNameRequired,
			"name is required",
			domainerror.ErrNameRequired,
		)
	}

	tag := entity.NewTag(name, input.FamilyID, input.UserID)
	if err := uc.tagRepo.Create(ctx, tag); err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	uc.listCache.Invalidate(ctx, cacheKind, input.FamilyID)

	return &CreateTagOutput{Tag: tag}, nil
}
