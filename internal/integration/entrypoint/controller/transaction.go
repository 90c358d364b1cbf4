// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/usecase/transaction"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	createUseCase *transaction.CreateTransactionUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	_, familyID, ok := requireFamilyScope(ctx)
	if !ok {
		return
	}

	input := transaction.ListTransactionsInput{
		FamilyID:  familyID,
		StartDate: ctx.Query("start_date"),
		EndDate:   ctx.Query("end_date"),
	}

	if txnType := ctx.Query("type"); txnType != "" {
		t := entity.TransactionType(txnType)
		input.Type = &t
	}

	if categoryIDStr := ctx.Query("category_id"); categoryIDStr != "" {
		categoryID, err := uuid.Parse(categoryIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category_id parameter",
				Code:  string(domainerror.ErrCodeCategoryNotFound),
			})
			return
		}
		input.CategoryID = &categoryID
	}

	for _, tagIDStr := range ctx.QueryArray("tag_id") {
		tagID, err := uuid.Parse(tagIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid tag_id parameter",
				Code:  string(domainerror.ErrCodeTagNotFound),
			})
			return
		}
		input.TagIDs = append(input.TagIDs, tagID)
	}

	if limitStr := ctx.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err == nil && limit > 0 {
			input.Limit = limit
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, familyID, ok := requireFamilyScope(ctx)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeNegativeAmount),
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category_id",
			Code:  string(domainerror.ErrCodeCategoryNotFound),
		})
		return
	}

	tagIDs, ok := parseTagIDs(ctx, req.TagIDs)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		FamilyID:    familyID,
		UserID:      userID,
		Amount:      decimal.NewFromFloat(req.Amount),
		Type:        entity.TransactionType(req.Type),
		CategoryID:  categoryID,
		TagIDs:      tagIDs,
		Date:        req.Date,
		Description: req.Description,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PATCH /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	_, familyID, ok := requireFamilyScope(ctx)
	if !ok {
		return
	}

	transactionID, ok := parseIDParam(ctx, "id", string(domainerror.ErrCodeTransactionNotFound))
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeNegativeAmount),
		})
		return
	}

	input := transaction.UpdateTransactionInput{
		FamilyID:      familyID,
		TransactionID: transactionID,
		Date:          req.Date,
		Description:   req.Description,
	}

	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.Type != nil {
		txnType := entity.TransactionType(*req.Type)
		input.Type = &txnType
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category_id",
				Code:  string(domainerror.ErrCodeCategoryNotFound),
			})
			return
		}
		input.CategoryID = &categoryID
	}
	if req.TagIDs != nil {
		tagIDs, ok := parseTagIDs(ctx, *req.TagIDs)
		if !ok {
			return
		}
		// A present empty array clears the tags.
		if tagIDs == nil {
			tagIDs = []uuid.UUID{}
		}
		input.TagIDs = tagIDs
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	_, familyID, ok := requireFamilyScope(ctx)
	if !ok {
		return
	}

	transactionID, ok := parseIDParam(ctx, "id", string(domainerror.ErrCodeTransactionNotFound))
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		FamilyID:      familyID,
		TransactionID: transactionID,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: output.Message,
	})
}

// parseTagIDs parses the tag id strings, writing a 400 response on failure.
func parseTagIDs(ctx *gin.Context, raw []string) ([]uuid.UUID, bool) {
	if len(raw) == 0 {
		return nil, true
	}

	tagIDs := make([]uuid.UUID, len(raw))
	for i, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid tag_ids entry",
				Code:  string(domainerror.ErrCodeTagNotFound),
			})
			return nil, false
		}
		tagIDs[i] = id
	}
	return tagIDs, true
}
