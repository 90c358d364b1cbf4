// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/usecase/family"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/middleware"
)

// FamilyController handles family endpoints.
type FamilyController struct {
	createUseCase       *family.CreateFamilyUseCase
	listUseCase         *family.ListFamiliesUseCase
	getUseCase          *family.GetFamilyUseCase
	updateUseCase       *family.UpdateFamilyUseCase
	deleteUseCase       *family.DeleteFamilyUseCase
	inviteUseCase       *family.InviteMemberUseCase
	acceptInviteUseCase *family.AcceptInviteUseCase
	removeMemberUseCase *family.RemoveMemberUseCase
	leaveUseCase        *family.LeaveFamilyUseCase
	resolveUseCase      *family.ResolveContextUseCase
	selectUseCase       *family.SelectFamilyUseCase
	appBaseURL          string
}

// NewFamilyController creates a new family controller instance.
func NewFamilyController(
	createUseCase *family.CreateFamilyUseCase,
	listUseCase *family.ListFamiliesUseCase,
	getUseCase *family.GetFamilyUseCase,
	updateUseCase *family.UpdateFamilyUseCase,
	deleteUseCase *family.DeleteFamilyUseCase,
	inviteUseCase *family.InviteMemberUseCase,
	acceptInviteUseCase *family.AcceptInviteUseCase,
	removeMemberUseCase *family.RemoveMemberUseCase,
	leaveUseCase *family.LeaveFamilyUseCase,
	resolveUseCase *family.ResolveContextUseCase,
	selectUseCase *family.SelectFamilyUseCase,
	appBaseURL string,
) *FamilyController {
	return &FamilyController{
		createUseCase:       createUseCase,
		listUseCase:         listUseCase,
		getUseCase:          getUseCase,
		updateUseCase:       updateUseCase,
		deleteUseCase:       deleteUseCase,
		inviteUseCase:       inviteUseCase,
		acceptInviteUseCase: acceptInviteUseCase,
		removeMemberUseCase: removeMemberUseCase,
		leaveUseCase:        leaveUseCase,
		resolveUseCase:      resolveUseCase,
		selectUseCase:       selectUseCase,
		appBaseURL:          appBaseURL,
	}
}

// Create handles POST /families requests.
func (c *FamilyController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateFamilyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeFamilyNameRequired),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), family.CreateFamilyInput{
		Name:     req.Name,
		Currency: req.Currency,
		UserID:   userID,
	})
	if err != nil {
		c.handleFamilyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToFamilyResponse(output.Family))
}

// List handles GET /families requests.
func (c *FamilyController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), family.ListFamiliesInput{
		UserID: userID,
	})
	if err != nil {
		c.handleFamilyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFamilyListResponse(output.Families))
}

// Get handles GET /families/:id requests.
func (c *FamilyController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	familyID, ok := parseIDParam(ctx, "id", string(domainerror.ErrCodeFamilyNotFound))
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), family.GetFamilyInput{
		FamilyID: familyID,
		UserID:   userID,
	})
	if err != nil {
		c.handleFamilyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFamilyDetailResponse(output.Family))
}

// Update handles PATCH /families/:id requests.
func (c *FamilyController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	familyID, ok := parseIDParam(ctx, "id", string(domainerror.ErrCodeFamilyNotFound))
	if !ok {
		return
	}

	var req dto.UpdateFamilyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeFamilyNameRequired),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), family.UpdateFamilyInput{
		FamilyID: familyID,
		UserID:   userID,
		Name:     req.Name,
		Currency: req.Currency,
	})
	if err != nil {
		c.handleFamilyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFamilyResponse(output.Family))
}

// Delete handles DELETE /families/:id requests.
func (c *FamilyController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	familyID, ok := parseIDParam(ctx, "id", string(domainerror.ErrCodeFamilyNotFound))
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), family.DeleteFamilyInput{
		FamilyID: familyID,
		UserID:   userID,
	}); err != nil {
		c.handleFamilyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Family deleted successfully",
	})
}

// Invite handles POST /families/:id/invite requests.
func (c *FamilyController) Invite(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	familyID, ok := parseIDParam(ctx, "id", string(domainerror.ErrCodeFamilyNotFound))
	if !ok {
		return
	}

	var req dto.InviteMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidFamilyEmail),
		})
		return
	}

	output, err := c.inviteUseCase.Execute(ctx.Request.Context(), family.InviteMemberInput{
		FamilyID:  familyID,
		Email:     req.Email,
		InviterID: userID,
		BaseURL:   c.appBaseURL,
	})
	if err != nil {
		c.handleFamilyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToFamilyInviteResponse(output.Invite))
}

// AcceptInvite handles POST /invites/:token/accept requests.
func (c *FamilyController) AcceptInvite(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	token := ctx.Param("token")
	if token == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invite token is required",
			Code:  string(domainerror.ErrCodeInviteNotFound),
		})
		return
	}

	output, err := c.acceptInviteUseCase.Execute(ctx.Request.Context(), family.AcceptInviteInput{
		Token:  token,
		UserID: userID,
	})
	if err != nil {
		c.handleFamilyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AcceptInviteResponse{
		FamilyID:   output.Family.ID.String(),
		FamilyName: output.Family.Name,
	})
}

// RemoveMember handles DELETE /families/:id/members/:member_id requests.
func (c *FamilyController) RemoveMember(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	familyID, ok := parseIDParam(ctx, "id", string(domainerror.ErrCodeFamilyNotFound))
	if !ok {
		return
	}

	memberID, ok := parseIDParam(ctx, "member_id", string(domainerror.ErrCodeMemberNotFound))
	if !ok {
		return
	}

	if _, err := c.removeMemberUseCase.Execute(ctx.Request.Context(), family.RemoveMemberInput{
		FamilyID: familyID,
		MemberID: memberID,
		UserID:   userID,
	}); err != nil {
		c.handleFamilyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Member removed successfully",
	})
}

// Leave handles DELETE /families/:id/members/me requests.
func (c *FamilyController) Leave(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	familyID, ok := parseIDParam(ctx, "id", string(domainerror.ErrCodeFamilyNotFound))
	if !ok {
		return
	}

	if _, err := c.leaveUseCase.Execute(ctx.Request.Context(), family.LeaveFamilyInput{
		FamilyID: familyID,
		UserID:   userID,
	}); err != nil {
		c.handleFamilyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Left family successfully",
	})
}

// Context handles GET /families/context requests.
func (c *FamilyController) Context(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	currentFamilyID := uuid.Nil
	if header := ctx.GetHeader(middleware.FamilyHeader); header != "" {
		if id, err := uuid.Parse(header); err == nil {
			currentFamilyID = id
		}
	}

	output, err := c.resolveUseCase.Execute(ctx.Request.Context(), family.ResolveContextInput{
		UserID:          userID,
		CurrentFamilyID: currentFamilyID,
	})
	if err != nil {
		c.handleFamilyError(ctx, err)
		return
	}

	rc := output.Context
	state := family.Guard(false, rc.Families, rc.ActiveFamilyID)
	ctx.JSON(http.StatusOK, dto.ToFamilyContextResponse(rc, state))
}

// Select handles PUT /families/select requests.
func (c *FamilyController) Select(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.SelectFamilyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeFamilyNotFound),
		})
		return
	}

	familyID := uuid.Nil
	if req.FamilyID != nil {
		id, err := uuid.Parse(*req.FamilyID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid family ID",
				Code:  string(domainerror.ErrCodeFamilyNotFound),
			})
			return
		}
		familyID = id
	}

	output, err := c.selectUseCase.Execute(ctx.Request.Context(), family.SelectFamilyInput{
		UserID:   userID,
		FamilyID: familyID,
	})
	if err != nil {
		c.handleFamilyError(ctx, err)
		return
	}

	rc := output.Context
	state := family.Guard(false, rc.Families, rc.ActiveFamilyID)
	ctx.JSON(http.StatusOK, dto.ToFamilyContextResponse(rc, state))
}

// handleFamilyError handles family errors and returns appropriate HTTP responses.
func (c *FamilyController) handleFamilyError(ctx *gin.Context, err error) {
	var familyErr *domainerror.FamilyError
	if errors.As(err, &familyErr) {
		statusCode := c.getStatusCodeForFamilyError(familyErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: familyErr.Message,
			Code:  string(familyErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForFamilyError maps family error codes to HTTP status codes.
func (c *FamilyController) getStatusCodeForFamilyError(code domainerror.FamilyErrorCode) int {
	switch code {
	case domainerror.ErrCodeFamilyNotFound,
		domainerror.ErrCodeMemberNotFound,
		domainerror.ErrCodeInviteNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeFamilyNameRequired,
		domainerror.ErrCodeFamilyNameTooLong,
		domainerror.ErrCodeInvalidFamilyEmail,
		domainerror.ErrCodeCannotInviteSelf,
		domainerror.ErrCodeOwnerCannotLeave:
		return http.StatusBadRequest
	case domainerror.ErrCodeUserAlreadyMember,
		domainerror.ErrCodeInviteAlreadyExists,
		domainerror.ErrCodeNoActiveFamily:
		return http.StatusConflict
	case domainerror.ErrCodeNotFamilyOwner,
		domainerror.ErrCodeNotFamilyMember:
		return http.StatusForbidden
	case domainerror.ErrCodeInviteExpired:
		return http.StatusGone
	default:
		return http.StatusInternalServerError
	}
}

// respondUnauthenticated writes the standard missing-authentication response.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

// parseIDParam parses a uuid path parameter, writing a 400 response on failure.
func parseIDParam(ctx *gin.Context, name, code string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " parameter",
			Code:  code,
		})
		return uuid.Nil, false
	}
	return id, true
}
