// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/usecase/budget"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	listUseCase     *budget.ListBudgetsUseCase
	createUseCase   *budget.CreateBudgetUseCase
	updateUseCase   *budget.UpdateBudgetUseCase
	deleteUseCase   *budget.DeleteBudgetUseCase
	progressUseCase *budget.GetBudgetProgressUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	listUseCase *budget.ListBudgetsUseCase,
	createUseCase *budget.CreateBudgetUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
	progressUseCase *budget.GetBudgetProgressUseCase,
) *BudgetController {
	return &BudgetController{
		listUseCase:     listUseCase,
		createUseCase:   createUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
		progressUseCase: progressUseCase,
	}
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	_, familyID, ok := requireFamilyScope(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{
		FamilyID: familyID,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output.Budgets))
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	userID, familyID, ok := requireFamilyScope(ctx)
	if !ok {
		return
	}

	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidBudgetPeriod),
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

	output, err := c.createUseCase.Execute(ctx.Request.Context(), budget.CreateBudgetInput{
		FamilyID:   familyID,
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     decimal.NewFromFloat(req.Amount),
		Period:     entity.BudgetPeriod(req.Period),
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(output.Budget))
}

// Update handles PATCH /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	_, familyID, ok := requireFamilyScope(ctx)
	if !ok {
		return
	}

	budgetID, ok := parseIDParam(ctx, "id", string(domainerror.ErrCodeBudgetNotFound))
	if !ok {
		return
	}

	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidBudgetPeriod),
		})
		return
	}

	input := budget.UpdateBudgetInput{
		FamilyID: familyID,
		BudgetID: budgetID,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.Period != nil {
		period := entity.BudgetPeriod(*req.Period)
		input.Period = &period
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	_, familyID, ok := requireFamilyScope(ctx)
	if !ok {
		return
	}

	budgetID, ok := parseIDParam(ctx, "id", string(domainerror.ErrCodeBudgetNotFound))
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), budget.DeleteBudgetInput{
		FamilyID: familyID,
		BudgetID: budgetID,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: output.Message,
	})
}

// Progress handles GET /budgets/progress requests.
func (c *BudgetController) Progress(ctx *gin.Context) {
	_, familyID, ok := requireFamilyScope(ctx)
	if !ok {
		return
	}

	input := budget.GetBudgetProgressInput{
		FamilyID: familyID,
	}

	// Optional anchor date for the period windows.
	if atStr := ctx.Query("at"); atStr != "" {
		at, err := time.Parse("2006-01-02", atStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid at parameter",
				Code:  string(domainerror.ErrCodeInvalidDate),
			})
			return
		}
		input.At = at
	}

	output, err := c.progressUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetProgressListResponse(output.Progress))
}
