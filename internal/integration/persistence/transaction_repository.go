// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	"github.com/budget-tracker/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	if result := r.db.WithContext(ctx).Create(model.TransactionFromEntity(transaction)); result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByFamilyID retrieves a family's transactions matching the filter,
// newest first. The tag predicate is applied after the query: the tag column
// is a serialized array, and membership tests on it are not portable SQL.
func (r *transactionRepository) FindByFamilyID(ctx context.Context, familyID uuid.UUID, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).Where("family_id = ?", familyID)
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date < ?", *filter.EndDate)
	}

	var transactionModels []model.TransactionModel
	result := query.Order("date desc").Order("created_at desc").Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for i := range transactionModels {
		txn := transactionModels[i].ToEntity()
		if !matchesTags(txn, filter.TagIDs) {
			continue
		}
		transactions = append(transactions, txn)
		if filter.Limit > 0 && len(transactions) >= filter.Limit {
			break
		}
	}
	return transactions, nil
}

// matchesTags reports whether the transaction carries every requested tag.
func matchesTags(txn *entity.Transaction, required []uuid.UUID) bool {
	if len(required) == 0 {
		return true
	}
	present := make(map[uuid.UUID]struct{}, len(txn.TagIDs))
	for _, id := range txn.TagIDs {
		present[id] = struct{}{}
	}
	for _, id := range required {
		if _, ok := present[id]; !ok {
			return false
		}
	}
	return true
}

// SumByCategoryAndRange sums amounts of the given type for a category within
// [start, end). Soft-deleted rows are excluded.
func (r *transactionRepository) SumByCategoryAndRange(ctx context.Context, familyID, categoryID uuid.UUID, transactionType entity.TransactionType, start, end time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	result := r.db.WithContext(ctx).Model(&model.TransactionModel{}).
		Select("SUM(amount)").
		Where("family_id = ? AND category_id = ? AND type = ?", familyID, categoryID, string(transactionType)).
		Where("date >= ? AND date < ?", start, end).
		Scan(&total)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// Update updates an existing transaction.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	if result := r.db.WithContext(ctx).Save(model.TransactionFromEntity(transaction)); result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a transaction.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if result := r.db.WithContext(ctx).Delete(&model.TransactionModel{}, "id = ?", id); result.Error != nil {
		return result.Error
	}
	return nil
}
