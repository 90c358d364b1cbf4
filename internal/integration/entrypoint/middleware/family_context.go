// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/usecase/family"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/dto"
)

const (
	// ActiveFamilyIDKey is the context key for the resolved active family ID.
	ActiveFamilyIDKey ContextKey = "active_family_id"
	// IsFamilyOwnerKey is the context key for ownership of the active family.
	IsFamilyOwnerKey ContextKey = "is_family_owner"

	// FamilyHeader carries an in-session family selection from the client.
	FamilyHeader = "X-Family-ID"
)

// FamilyContextMiddleware resolves the active family for the authenticated
// user and blocks family-scoped routes when no family is resolved.
type FamilyContextMiddleware struct {
	resolveUseCase *family.ResolveContextUseCase
}

// NewFamilyContextMiddleware creates a new family context middleware instance.
func NewFamilyContextMiddleware(resolveUseCase *family.ResolveContextUseCase) *FamilyContextMiddleware {
	return &FamilyContextMiddleware{
		resolveUseCase: resolveUseCase,
	}
}

// Resolve returns a Gin middleware handler that resolves the family context.
// It must run after AuthMiddleware.Authenticate.
func (m *FamilyContextMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Authentication required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		// An explicit header selection takes precedence over the stored
		// preference for this request.
		currentFamilyID := uuid.Nil
		if header := c.GetHeader(FamilyHeader); header != "" {
			id, err := uuid.Parse(header)
			if err != nil {
				c.JSON(http.StatusBadRequest, dto.ErrorResponse{
					Error: "Invalid family ID header",
					Code:  string(domainerror.ErrCodeFamilyNotFound),
				})
				c.Abort()
				return
			}
			currentFamilyID = id
		}

		output, err := m.resolveUseCase.Execute(c.Request.Context(), family.ResolveContextInput{
			UserID:          userID,
			CurrentFamilyID: currentFamilyID,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error: "An internal error occurred",
			})
			c.Abort()
			return
		}

		rc := output.Context
		state := family.Guard(false, rc.Families, rc.ActiveFamilyID)
		if state != family.GuardStateReady {
			c.JSON(http.StatusConflict, dto.ErrorResponse{
				Error: "No active family selected",
				Code:  string(domainerror.ErrCodeNoActiveFamily),
			})
			c.Abort()
			return
		}

		c.Set(string(ActiveFamilyIDKey), rc.ActiveFamilyID)
		c.Set(string(IsFamilyOwnerKey), rc.IsOwnerOfActiveFamily)

		c.Next()
	}
}

// GetActiveFamilyIDFromContext extracts the active family ID from the Gin context.
func GetActiveFamilyIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	familyID, exists := c.Get(string(ActiveFamilyIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := familyID.(uuid.UUID)
	return id, ok
}

// IsFamilyOwnerFromContext reports whether the user owns the active family.
func IsFamilyOwnerFromContext(c *gin.Context) bool {
	isOwner, exists := c.Get(string(IsFamilyOwnerKey))
	if !exists {
		return false
	}
	owner, ok := isOwner.(bool)
	return ok && owner
}
