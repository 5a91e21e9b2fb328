package controller

import (
	"errors"

	"sam_awards_backend/internal/award"
	"sam_awards_backend/internal/model"
	"sam_awards_backend/internal/service"
	"sam_awards_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	ReviewService *service.ReviewService
}

func NewReviewController(reviewService *service.ReviewService) *ReviewController {
	return &ReviewController{ReviewService: reviewService}
}

// List godoc
// @Summary List nominations for review
// @Tags review
// @Produce  json
// @Security ApiKeyAuth
// @Param   status query string false "Filter by status" Enums(waiting-approval, qualified, unqualified)
// @Param   page query int false "Page"
// @Param   limit query int false "Page size"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /review/nominations [get]
func (c *ReviewController) List(ctx *gin.Context) {
	page, limit := util.ParsePage(ctx.Query("page"), ctx.Query("limit"))
	status := model.NominationStatus(ctx.Query("status"))

	list, total, err := c.ReviewService.List(status, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  list,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// Overview godoc
// @Summary Nomination counts per status
// @Tags review
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /review/overview [get]
func (c *ReviewController) Overview(ctx *gin.Context) {
	counts, err := c.ReviewService.Overview()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, counts)
}

// DecisionRequest carries the reviewer's note and, for rejections,
// the bilingual reasons shown to the applicant
// swagger:model DecisionRequest
type DecisionRequest struct {
	Note    string       `json:"note"`
	Reasons []award.Text `json:"reasons"`
}

// Approve godoc
// @Summary Approve a nomination
// @Description Moves a waiting nomination to qualified.
// @Tags review
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Nomination ID"
// @Param   body body DecisionRequest false "Review note"
// @Success 200 {object} util.Response{data=model.Nomination}
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /review/nominations/{id}/approve [post]
func (c *ReviewController) Approve(ctx *gin.Context) {
	var req DecisionRequest
	_ = ctx.ShouldBindJSON(&req)

	claims := util.GetUserFromContext(ctx)
	n, err := c.ReviewService.Approve(ctx.Param("id"), claims.UserID, req.Note)
	if err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Success(ctx, n)
}

// Reject godoc
// @Summary Reject a nomination
// @Description Moves a waiting nomination to unqualified with reasons.
// @Tags review
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Nomination ID"
// @Param   body body DecisionRequest true "Review note and reasons"
// @Success 200 {object} util.Response{data=model.Nomination}
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /review/nominations/{id}/reject [post]
func (c *ReviewController) Reject(ctx *gin.Context) {
	var req DecisionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	n, err := c.ReviewService.Reject(ctx.Param("id"), claims.UserID, req.Note, req.Reasons)
	if err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Success(ctx, n)
}

func (c *ReviewController) handleError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrNominationNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrNominationNotPending):
		util.Conflict(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
