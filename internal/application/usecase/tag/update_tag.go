// Package tag contains tag-related use cases.
package tag

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// UpdateTagInput represents the input for tag update.
type UpdateTagInput struct {
	FamilyID uuid.UUID
	TagID    uuid.UUID
	Name     string
}

// UpdateTagOutput represents the output of tag update.
type UpdateTagOutput struct {
	Tag *entity.Tag
}

// UpdateTagUseCase handles tag update logic.
type UpdateTagUseCase struct {
	tagRepo   adapter.TagRepository
	listCache adapter.ListCache
}

// NewUpdateTagUseCase creates a new UpdateTagUseCase instance.
func NewUpdateTagUseCase(tagRepo adapter.TagRepository, listCache adapter.ListCache) *UpdateTagUseCase {
	return &UpdateTagUseCase{
		tagRepo:   tagRepo,
		listCache: listCache,
	}
}

// Execute performs the tag update.
func (uc *UpdateTagUseCase) Execute(ctx context.Context, input UpdateTagInput) (*UpdateTagOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeNameRequired,
			"name is required",
			domainerror.ErrNameRequired,
		)
	}

	tag, err := uc.tagRepo.FindByID(ctx, input.TagID)
	if err != nil {
		return nil, fmt.Errorf("failed to find tag: %w", err)
	}
	if tag == nil || tag.FamilyID != input.FamilyID {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeTagNotFound,
			"tag not found",
			domainerror.ErrTagNotFound,
		)
	}

	tag.Name = name
	tag.UpdatedAt = time.Now().UTC()
	if err := uc.tagRepo.Update(ctx, tag); err != nil {
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}

	uc.listCache.Invalidate(ctx, cacheKind, input.FamilyID)

	return &UpdateTagOutput{Tag: tag}, nil
}
