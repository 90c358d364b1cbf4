// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	"github.com/budget-tracker/backend/internal/integration/persistence/model"
)

// tagRepository implements the adapter.TagRepository interface.
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new tag repository instance.
func NewTagRepository(db *gorm.DB) adapter.TagRepository {
	return &tagRepository{
		db: db,
	}
}

// Create creates a new tag in the database.
func (r *tagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	if result := r.db.WithContext(ctx).Create(model.TagFromEntity(tag)); result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a tag by its ID.
func (r *tagRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tag, error) {
	var tagModel model.TagModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&tagModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return tagModel.ToEntity(), nil
}

// FindByFamilyID retrieves a family's tags ordered by name.
func (r *tagRepository) FindByFamilyID(ctx context.Context, familyID uuid.UUID) ([]*entity.Tag, error) {
	var tagModels []model.TagModel
	result := r.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Order("name asc").
		Find(&tagModels)
	if result.Error != nil {
		return nil, result.Error
	}

	tags := make([]*entity.Tag, len(tagModels))
	for i := range tagModels {
		tags[i] = tagModels[i].ToEntity()
	}
	return tags, nil
}

// Update updates an existing tag.
func (r *tagRepository) Update(ctx context.Context, tag *entity.Tag) error {
	if result := r.db.WithContext(ctx).Save(model.TagFromEntity(tag)); result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a tag.
func (r *tagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if result := r.db.WithContext(ctx).Delete(&model.TagModel{}, "id = ?", id); result.Error != nil {
		return result.Error
	}
	return nil
}
