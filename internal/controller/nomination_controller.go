package controller

import (
	"errors"

	"sam_awards_backend/internal/model"
	"sam_awards_backend/internal/service"
	"sam_awards_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NominationController struct {
	SubmissionService *service.SubmissionService
}

func NewNominationController(submissionService *service.SubmissionService) *NominationController {
	return &NominationController{SubmissionService: submissionService}
}

// Validate godoc
// @Summary Dry-run form validation
// @Description Runs the word and file limit checks without submitting.
// @Tags nominations
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.SubmissionInput true "Form payload"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /nominations/validate [post]
func (c *NominationController) Validate(ctx *gin.Context) {
	var input service.SubmissionInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	errs, err := c.SubmissionService.Validate(&input)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, gin.H{"valid": len(errs) == 0, "errors": errs})
}

// Submit godoc
// @Summary Submit a nomination
// @Description Finalizes the form. Requires a passed eligibility
// @Description questionnaire for gated categories and allows one
// @Description submission per category per cycle.
// @Tags nominations
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.SubmissionInput true "Form payload"
// @Success 201 {object} util.Response{data=model.Nomination}
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /nominations [post]
func (c *NominationController) Submit(ctx *gin.Context) {
	var input service.SubmissionInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	n, validationErrs, err := c.SubmissionService.Submit(ctx.Request.Context(), claims.UserID, &input)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCategoryNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrUnknownSubcategory):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrEligibilityNotPassed), errors.Is(err, util.ErrSubmissionsClosed):
			util.Error(ctx, 403, err.Error())
		case errors.Is(err, util.ErrDuplicateNomination):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	if len(validationErrs) > 0 {
		ctx.JSON(422, util.Response{Code: 422, Message: "validation failed", Data: validationErrs})
		return
	}

	util.Created(ctx, n)
}

// ListMine godoc
// @Summary My nominations
// @Tags nominations
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /nominations [get]
func (c *NominationController) ListMine(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	list, err := c.SubmissionService.ListMine(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// Get godoc
// @Summary Nomination details
// @Tags nominations
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Nomination ID"
// @Success 200 {object} util.Response{data=model.Nomination}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /nominations/{id} [get]
func (c *NominationController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	staff := claims.Role == model.Reviewer || claims.Role == model.Admin
	n, err := c.SubmissionService.Get(ctx.Param("id"), claims.UserID, staff)
	if err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Success(ctx, n)
}

// Track godoc
// @Summary Track by reference number
// @Tags nominations
// @Produce  json
// @Security ApiKeyAuth
// @Param   ref path string true "Reference number"
// @Success 200 {object} util.Response{data=model.Nomination}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /nominations/track/{ref} [get]
func (c *NominationController) Track(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	staff := claims.Role == model.Reviewer || claims.Role == model.Admin
	n, err := c.SubmissionService.Track(ctx.Param("ref"), claims.UserID, staff)
	if err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Success(ctx, n)
}

// SaveDraft godoc
// @Summary Save a form draft
// @Tags nominations
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.SubmissionInput true "Draft payload"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /nominations/drafts [put]
func (c *NominationController) SaveDraft(ctx *gin.Context) {
	var input service.SubmissionInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if err := c.SubmissionService.SaveDraft(ctx.Request.Context(), claims.UserID, &input); err != nil {
		if errors.Is(err, util.ErrCategoryNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"saved": true})
}

// LoadDraft godoc
// @Summary Load a form draft
// @Tags nominations
// @Produce  json
// @Security ApiKeyAuth
// @Param   slug path string true "Category slug"
// @Success 200 {object} util.Response{data=service.SubmissionInput}
// @Failure 404 {object} util.Response
// @Router /nominations/drafts/{slug} [get]
func (c *NominationController) LoadDraft(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	draft, err := c.SubmissionService.LoadDraft(ctx.Request.Context(), claims.UserID, ctx.Param("slug"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if draft == nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, draft)
}

// DiscardDraft godoc
// @Summary Discard a form draft
// @Tags nominations
// @Produce  json
// @Security ApiKeyAuth
// @Param   slug path string true "Category slug"
// @Success 200 {object} util.Response
// @Router /nominations/drafts/{slug} [delete]
func (c *NominationController) DiscardDraft(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if err := c.SubmissionService.DiscardDraft(ctx.Request.Context(), claims.UserID, ctx.Param("slug")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"discarded": true})
}

// UploadAttachment godoc
// @Summary Upload evidence for a criterion
// @Tags nominations
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Nomination ID"
// @Param   criterionId formData string true "Criterion ID"
// @Param   file formData file true "Evidence file"
// @Success 201 {object} util.Response{data=model.Attachment}
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /nominations/{id}/attachments [post]
func (c *NominationController) UploadAttachment(ctx *gin.Context) {
	criterionID := ctx.PostForm("criterionId")
	if criterionID == "" {
		util.BadRequest(ctx, "criterionId is required")
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	claims := util.GetUserFromContext(ctx)
	attachment, err := c.SubmissionService.AddAttachment(
		ctx.Request.Context(),
		claims.UserID,
		ctx.Param("id"),
		criterionID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNominationNotFound), errors.Is(err, util.ErrCategoryNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.BadRequest(ctx, err.Error())
		}
		return
	}

	util.Created(ctx, attachment)
}

// DeleteAttachment godoc
// @Summary Remove an evidence file
// @Tags nominations
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Nomination ID"
// @Param   attachmentId path string true "Attachment ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /nominations/{id}/attachments/{attachmentId} [delete]
func (c *NominationController) DeleteAttachment(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	err := c.SubmissionService.RemoveAttachment(ctx.Request.Context(), claims.UserID, ctx.Param("id"), ctx.Param("attachmentId"))
	if err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

func (c *NominationController) handleError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrNominationNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
