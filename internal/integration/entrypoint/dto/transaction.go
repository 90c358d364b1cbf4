// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Amount      float64  `json:"amount" binding:"required"`
	Type        string   `json:"type" binding:"required,oneof=expense income"`
	CategoryID  string   `json:"category_id" binding:"required,uuid"`
	TagIDs      []string `json:"tag_ids,omitempty" binding:"omitempty,dive,uuid"`
	Date        string   `json:"date" binding:"required"`
	Description string   `json:"description,omitempty" binding:"omitempty,max=500"`
}

// UpdateTransactionRequest represents the request body for transaction update.
// TagIDs absent leaves tags unchanged; an empty array clears them.
type UpdateTransactionRequest struct {
	Amount      *float64  `json:"amount,omitempty"`
	Type        *string   `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	CategoryID  *string   `json:"category_id,omitempty" binding:"omitempty,uuid"`
	TagIDs      *[]string `json:"tag_ids,omitempty" binding:"omitempty,dive,uuid"`
	Date        *string   `json:"date,omitempty"`
	Description *string   `json:"description,omitempty" binding:"omitempty,max=500"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	Amount      string    `json:"amount"`
	Type        string    `json:"type"`
	CategoryID  string    `json:"category_id"`
	TagIDs      []string  `json:"tag_ids"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	FamilyID    string    `json:"family_id"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction entity to a response DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	tagIDs := make([]string, len(txn.TagIDs))
	for i, id := range txn.TagIDs {
		tagIDs[i] = id.String()
	}

	return TransactionResponse{
		ID:          txn.ID.String(),
		Amount:      txn.Amount.String(),
		Type:        string(txn.Type),
		CategoryID:  txn.CategoryID.String(),
		TagIDs:      tagIDs,
		Date:        txn.Date.Format("2006-01-02"),
		Description: txn.Description,
		FamilyID:    txn.FamilyID.String(),
		CreatedBy:   txn.CreatedBy.String(),
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}
}

// ToTransactionListResponse converts a list of transactions to a response DTO.
func ToTransactionListResponse(txns []*entity.Transaction) TransactionListResponse {
	items := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		items[i] = ToTransactionResponse(txn)
	}
	return TransactionListResponse{
		Transactions: items,
	}
}
