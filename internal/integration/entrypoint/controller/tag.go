// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-tracker/backend/internal/application/usecase/tag"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/dto"
)

// TagController handles tag endpoints.
type TagController struct {
	listUseCase   *tag.ListTagsUseCase
	createUseCase *tag.CreateTagUseCase
	updateUseCase *tag.UpdateTagUseCase
	deleteUseCase *tag.DeleteTagUseCase
}

// NewTagController creates a new tag controller instance.
func NewTagController(
	listUseCase *tag.ListTagsUseCase,
	createUseCase *tag.CreateTagUseCase,
	updateUseCase *tag.UpdateTagUseCase,
	deleteUseCase *tag.DeleteTagUseCase,
) *TagController {
	return &TagController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /tags requests.
func (c *TagController) List(ctx *gin.Context) {
	_, familyID, ok := requireFamilyScope(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), tag.ListTagsInput{
		FamilyID: familyID,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTagListResponse(output.Tags))
}

// Create handles POST /tags requests.
func (c *TagController) Create(ctx *gin.Context) {
	userID, familyID, ok := requireFamilyScope(ctx)
	if !ok {
		return
	}

	var req dto.CreateTagRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeNameRequired),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), tag.CreateTagInput{
		FamilyID: familyID,
		UserID:   userID,
		Name:     req.Name,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTagResponse(output.Tag))
}

// Update handles PATCH /tags/:id requests.
func (c *TagController) Update(ctx *gin.Context) {
	_, familyID, ok := requireFamilyScope(ctx)
	if !ok {
		return
	}

	tagID, ok := parseIDParam(ctx, "id", string(domainerror.ErrCodeTagNotFound))
	if !ok {
		return
	}

	var req dto.UpdateTagRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeNameRequired),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), tag.UpdateTagInput{
		FamilyID: familyID,
		TagID:    tagID,
		Name:     req.Name,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTagResponse(output.Tag))
}

// Delete handles DELETE /tags/:id requests.
func (c *TagController) Delete(ctx *gin.Context) {
	_, familyID, ok := requireFamilyScope(ctx)
	if !ok {
		return
	}

	tagID, ok := parseIDParam(ctx, "id", string(domainerror.ErrCodeTagNotFound))
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), tag.DeleteTagInput{
		FamilyID: familyID,
		TagID:    tagID,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: output.Message,
	})
}
