package controller

import (
	"errors"

	"sam_awards_backend/internal/service"
	"sam_awards_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EligibilityController struct {
	EligibilityService *service.EligibilityService
}

func NewEligibilityController(eligibilityService *service.EligibilityService) *EligibilityController {
	return &EligibilityController{EligibilityService: eligibilityService}
}

// StartCheck godoc
// @Summary Start or resume an eligibility questionnaire
// @Description Opens the questionnaire session for a category. For
// @Description categories without a questionnaire the state comes back
// @Description already passed.
// @Tags eligibility
// @Produce  json
// @Security ApiKeyAuth
// @Param   slug path string true "Category slug"
// @Success 200 {object} util.Response{data=service.CheckState}
// @Failure 404 {object} util.Response
// @Router /eligibility/{slug}/start [post]
func (c *EligibilityController) StartCheck(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	state, err := c.EligibilityService.Start(ctx.Request.Context(), claims.UserID, ctx.Param("slug"))
	if err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Success(ctx, state)
}

// AnswerRequest carries one questionnaire answer
// swagger:model AnswerRequest
type AnswerRequest struct {
	QuestionID string `json:"questionId" binding:"required"`
	Value      string `json:"value" binding:"required"`
}

// Answer godoc
// @Summary Answer one questionnaire question
// @Description Records an answer, clears dependent answers, and
// @Description returns the updated state. Answering "no" on a question
// @Description with a redirect schedules it and includes the redirect
// @Description payload in the response.
// @Tags eligibility
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   slug path string true "Category slug"
// @Param   body body AnswerRequest true "Answer"
// @Success 200 {object} util.Response{data=service.CheckState}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /eligibility/{slug}/answers [post]
func (c *EligibilityController) Answer(ctx *gin.Context) {
	var req AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	state, err := c.EligibilityService.Answer(ctx.Request.Context(), claims.UserID, ctx.Param("slug"), req.QuestionID, req.Value)
	if err != nil {
		if errors.Is(err, util.ErrUnknownQuestion) {
			util.BadRequest(ctx, err.Error())
			return
		}
		c.handleError(ctx, err)
		return
	}
	util.Success(ctx, state)
}

// GetState godoc
// @Summary Current questionnaire state
// @Tags eligibility
// @Produce  json
// @Security ApiKeyAuth
// @Param   slug path string true "Category slug"
// @Success 200 {object} util.Response{data=service.CheckState}
// @Failure 404 {object} util.Response
// @Router /eligibility/{slug} [get]
func (c *EligibilityController) GetState(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	state, err := c.EligibilityService.State(ctx.Request.Context(), claims.UserID, ctx.Param("slug"))
	if err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Success(ctx, state)
}

// EvaluateRequest carries an answer snapshot to evaluate
// swagger:model EvaluateRequest
type EvaluateRequest struct {
	Answers map[string]string `json:"answers"`
}

// Evaluate godoc
// @Summary Evaluate an answer snapshot
// @Description Runs the questionnaire rules over the supplied answers
// @Description without persisting anything. Useful for previewing the
// @Description outcome.
// @Tags eligibility
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   slug path string true "Category slug"
// @Param   body body EvaluateRequest true "Answer snapshot"
// @Success 200 {object} util.Response{data=service.Snapshot}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /eligibility/{slug}/evaluate [post]
func (c *EligibilityController) Evaluate(ctx *gin.Context) {
	var req EvaluateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	snapshot, err := c.EligibilityService.EvaluateSnapshot(ctx.Param("slug"), req.Answers)
	if err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Success(ctx, snapshot)
}

// CancelRedirect godoc
// @Summary Cancel a pending redirect
// @Description Aborts the scheduled redirect after the applicant
// @Description changed the triggering answer.
// @Tags eligibility
// @Produce  json
// @Security ApiKeyAuth
// @Param   slug path string true "Category slug"
// @Success 200 {object} util.Response{data=object}
// @Router /eligibility/{slug}/redirect [delete]
func (c *EligibilityController) CancelRedirect(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	cancelled := c.EligibilityService.CancelRedirect(claims.UserID, ctx.Param("slug"))
	util.Success(ctx, gin.H{"cancelled": cancelled})
}

func (c *EligibilityController) handleError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrCategoryNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		util.NotFound(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
