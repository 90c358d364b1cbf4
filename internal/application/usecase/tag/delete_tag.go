// Package tag contains tag-related use cases.
package tag

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// DeleteTagInput represents the input for tag deletion.
type DeleteTagInput struct {
	FamilyID uuid.UUID
	TagID    uuid.UUID
}

// DeleteTagOutput represents the output of tag deletion.
type DeleteTagOutput struct {
	Message string
}

// DeleteTagUseCase handles tag deletion. Transactions keep their recorded
// tag ids; a missing tag simply stops resolving to a name.
type DeleteTagUseCase struct {
	tagRepo   adapter.TagRepository
	listCache adapter.ListCache
}

// NewDeleteTagUseCase creates a new DeleteTagUseCase instance.
func NewDeleteTagUseCase(tagRepo adapter.TagRepository, listCache adapter.ListCache) *DeleteTagUseCase {
	return &DeleteTagUseCase{
		tagRepo:   tagRepo,
		listCache: listCache,
	}
}

// Execute performs the tag deletion.
func (uc *DeleteTagUseCase) Execute(ctx context.Context, input DeleteTagInput) (*DeleteTagOutput, error) {
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

	if err := uc.tagRepo.Delete(ctx, tag.ID); err != nil {
		return nil, fmt.Errorf("failed to delete tag: %w", err)
	}

	uc.listCache.Invalidate(ctx, cacheKind, input.FamilyID)

	return &DeleteTagOutput{Message: "Tag deleted"}, nil
}
