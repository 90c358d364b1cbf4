// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/middleware"
)

// handleLedgerError handles ledger errors and returns appropriate HTTP
// responses. Shared by the category, tag, transaction, budget, and summary
// controllers.
func handleLedgerError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		statusCode := getStatusCodeForLedgerError(ledgerErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForLedgerError maps ledger error codes to HTTP status codes.
func getStatusCodeForLedgerError(code domainerror.LedgerErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNotFound,
		domainerror.ErrCodeTagNotFound,
		domainerror.ErrCodeTransactionNotFound,
		domainerror.ErrCodeBudgetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNameRequired,
		domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidBudgetPeriod,
		domainerror.ErrCodeNegativeAmount,
		domainerror.ErrCodeInvalidDate,
		domainerror.ErrCodeCrossFamilyReference:
		return http.StatusBadRequest
	case domainerror.ErrCodeNotAuthorized:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// requireFamilyScope extracts the authenticated user and active family from
// the Gin context. Both are set by the auth and family context middleware.
func requireFamilyScope(ctx *gin.Context) (userID, familyID uuid.UUID, ok bool) {
	userID, found := middleware.GetUserIDFromContext(ctx)
	if !found {
		respondUnauthenticated(ctx)
		return uuid.Nil, uuid.Nil, false
	}
	familyID, found = middleware.GetActiveFamilyIDFromContext(ctx)
	if !found {
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: "No active family selected",
			Code:  string(domainerror.ErrCodeNoActiveFamily),
		})
		return uuid.Nil, uuid.Nil, false
	}
	return userID, familyID, true
}
