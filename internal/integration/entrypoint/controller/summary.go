// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/budget-tracker/backend/internal/application/usecase/summary"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/dto"
)

// SummaryController handles summary endpoints.
type SummaryController struct {
	monthlyUseCase *summary.MonthlySummaryUseCase
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(monthlyUseCase *summary.MonthlySummaryUseCase) *SummaryController {
	return &SummaryController{
		monthlyUseCase: monthlyUseCase,
	}
}

// Monthly handles GET /summary requests. Defaults to the current month.
func (c *SummaryController) Monthly(ctx *gin.Context) {
	_, familyID, ok := requireFamilyScope(ctx)
	if !ok {
		return
	}

	now := time.Now().UTC()
	year := now.Year()
	month := now.Month()

	if yearStr := ctx.Query("year"); yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid year parameter",
				Code:  string(domainerror.ErrCodeInvalidDate),
			})
			return
		}
		year = y
	}
	if monthStr := ctx.Query("month"); monthStr != "" {
		m, err := strconv.Atoi(monthStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid month parameter",
				Code:  string(domainerror.ErrCodeInvalidDate),
			})
			return
		}
		month = time.Month(m)
	}

	output, err := c.monthlyUseCase.Execute(ctx.Request.Context(), summary.MonthlySummaryInput{
		FamilyID: familyID,
		Year:     year,
		Month:    month,
		Language: ctx.Query("lang"),
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(output))
}
