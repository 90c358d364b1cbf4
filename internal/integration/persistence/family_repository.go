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

// familyRepository implements the adapter.FamilyRepository interface.
type familyRepository struct {
	db *gorm.DB
}

// NewFamilyRepository creates a new family repository instance.
func NewFamilyRepository(db *gorm.DB) adapter.FamilyRepository {
	return &familyRepository{
		db: db,
	}
}

// CreateFamilyWithOwner creates the family row and the creator's owner
// membership atomically. Either both rows exist afterwards or neither does.
func (r *familyRepository) CreateFamilyWithOwner(ctx context.Context, family *entity.Family, owner *entity.FamilyMember) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.FamilyFromEntity(family)).Error; err != nil {
			return err
		}
		return tx.Create(model.FamilyMemberFromEntity(owner)).Error
	})
}

// FindFamilyByID retrieves a family by its ID.
func (r *familyRepository) FindFamilyByID(ctx context.Context, id uuid.UUID) (*entity.Family, error) {
	var familyModel model.FamilyModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&familyModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return familyModel.ToEntity(), nil
}

// FindOwnedFamilies retrieves the families owned by a user, ordered by name.
func (r *familyRepository) FindOwnedFamilies(ctx context.Context, ownerID uuid.UUID) ([]*entity.Family, error) {
	var familyModels []model.FamilyModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("name asc").
		Find(&familyModels)
	if result.Error != nil {
		return nil, result.Error
	}

	families := make([]*entity.Family, len(familyModels))
	for i := range familyModels {
		families[i] = familyModels[i].ToEntity()
	}
	return families, nil
}

// FindMembershipsWithFamilies retrieves a user's memberships joined with
// their families. Memberships whose family row is gone are omitted.
func (r *familyRepository) FindMembershipsWithFamilies(ctx context.Context, userID uuid.UUID) ([]*entity.MembershipWithFamily, error) {
	var memberModels []model.FamilyMemberModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("joined_at asc").
		Find(&memberModels)
	if result.Error != nil {
		return nil, result.Error
	}

	memberships := make([]*entity.MembershipWithFamily, 0, len(memberModels))
	for i := range memberModels {
		var familyModel model.FamilyModel
		err := r.db.WithContext(ctx).Where("id = ?", memberModels[i].FamilyID).First(&familyModel).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		memberships = append(memberships, &entity.MembershipWithFamily{
			Member: memberModels[i].ToEntity(),
			Family: familyModel.ToEntity(),
		})
	}
	return memberships, nil
}

// UpdateFamily updates an existing family.
func (r *familyRepository) UpdateFamily(ctx context.Context, family *entity.Family) error {
	if result := r.db.WithContext(ctx).Save(model.FamilyFromEntity(family)); result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteFamily removes a family, its memberships and its pending invites.
func (r *familyRepository) DeleteFamily(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.FamilyMemberModel{}, "family_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.FamilyInviteModel{}, "family_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.FamilyModel{}, "id = ?", id).Error
	})
}

// CreateMember adds a new member to a family.
func (r *familyRepository) CreateMember(ctx context.Context, member *entity.FamilyMember) error {
	if result := r.db.WithContext(ctx).Create(model.FamilyMemberFromEntity(member)); result.Error != nil {
		return result.Error
	}
	return nil
}

// FindMemberByID retrieves a family member by their record ID.
func (r *familyRepository) FindMemberByID(ctx context.Context, id uuid.UUID) (*entity.FamilyMember, error) {
	var memberModel model.FamilyMemberModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&memberModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return memberModel.ToEntity(), nil
}

// FindMemberByFamilyAndUser retrieves a member by family and user ID.
func (r *familyRepository) FindMemberByFamilyAndUser(ctx context.Context, familyID, userID uuid.UUID) (*entity.FamilyMember, error) {
	var memberModel model.FamilyMemberModel
	result := r.db.WithContext(ctx).
		Where("family_id = ? AND user_id = ?", familyID, userID).
		First(&memberModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return memberModel.ToEntity(), nil
}

// FindMembersByFamilyID retrieves all members of a family with their user
// name and email filled in.
func (r *familyRepository) FindMembersByFamilyID(ctx context.Context, familyID uuid.UUID) ([]*entity.FamilyMember, error) {
	var memberModels []model.FamilyMemberModel
	result := r.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Order("joined_at asc").
		Find(&memberModels)
	if result.Error != nil {
		return nil, result.Error
	}

	members := make([]*entity.FamilyMember, len(memberModels))
	for i := range memberModels {
		var userModel model.UserModel
		err := r.db.WithContext(ctx).Where("id = ?", memberModels[i].UserID).First(&userModel).Error
		if err == nil {
			memberModels[i].UserName = userModel.Name
			memberModels[i].UserEmail = userModel.Email
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		members[i] = memberModels[i].ToEntity()
	}
	return members, nil
}

// DeleteMember removes a member from a family.
func (r *familyRepository) DeleteMember(ctx context.Context, id uuid.UUID) error {
	if result := r.db.WithContext(ctx).Delete(&model.FamilyMemberModel{}, "id = ?", id); result.Error != nil {
		return result.Error
	}
	return nil
}

// IsUserInFamily checks whether a user owns or is a member of a family.
func (r *familyRepository) IsUserInFamily(ctx context.Context, familyID, userID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.FamilyModel{}).
		Where("id = ? AND owner_id = ?", familyID, userID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	if count > 0 {
		return true, nil
	}

	result = r.db.WithContext(ctx).Model(&model.FamilyMemberModel{}).
		Where("family_id = ? AND user_id = ?", familyID, userID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// CreateInvite creates a new family invitation.
func (r *familyRepository) CreateInvite(ctx context.Context, invite *entity.FamilyInvite) error {
	if result := r.db.WithContext(ctx).Create(model.FamilyInviteFromEntity(invite)); result.Error != nil {
		return result.Error
	}
	return nil
}

// FindInviteByToken retrieves an invitation by its token.
func (r *familyRepository) FindInviteByToken(ctx context.Context, token string) (*entity.FamilyInvite, error) {
	var inviteModel model.FamilyInviteModel
	result := r.db.WithContext(ctx).Where("token = ?", token).First(&inviteModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return inviteModel.ToEntity(), nil
}

// FindPendingInviteByFamilyAndEmail retrieves a pending invite by family and email.
func (r *familyRepository) FindPendingInviteByFamilyAndEmail(ctx context.Context, familyID uuid.UUID, email string) (*entity.FamilyInvite, error) {
	var inviteModel model.FamilyInviteModel
	result := r.db.WithContext(ctx).
		Where("family_id = ? AND LOWER(email) = LOWER(?) AND status = ?", familyID, email, string(entity.InviteStatusPending)).
		First(&inviteModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return inviteModel.ToEntity(), nil
}

// FindPendingInvitesByFamilyID retrieves all pending invites for a family.
func (r *familyRepository) FindPendingInvitesByFamilyID(ctx context.Context, familyID uuid.UUID) ([]*entity.FamilyInvite, error) {
	var inviteModels []model.FamilyInviteModel
	result := r.db.WithContext(ctx).
		Where("family_id = ? AND status = ?", familyID, string(entity.InviteStatusPending)).
		Order("created_at asc").
		Find(&inviteModels)
	if result.Error != nil {
		return nil, result.Error
	}

	invites := make([]*entity.FamilyInvite, len(inviteModels))
	for i := range inviteModels {
		invites[i] = inviteModels[i].ToEntity()
	}
	return invites, nil
}

// UpdateInvite updates an invitation.
func (r *familyRepository) UpdateInvite(ctx context.Context, invite *entity.FamilyInvite) error {
	if result := r.db.WithContext(ctx).Save(model.FamilyInviteFromEntity(invite)); result.Error != nil {
		return result.Error
	}
	return nil
}
