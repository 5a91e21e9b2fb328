package controller

import (
	"errors"

	"sam_awards_backend/internal/service"
	"sam_awards_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	CategoryService *service.CategoryService
}

func NewCategoryController(categoryService *service.CategoryService) *CategoryController {
	return &CategoryController{CategoryService: categoryService}
}

// ListCategories godoc
// @Summary Award catalogue
// @Description Lists every award category with bilingual names
// @Tags categories
// @Produce  json
// @Success 200 {object} util.Response
// @Router /categories [get]
func (c *CategoryController) ListCategories(ctx *gin.Context) {
	util.Success(ctx, c.CategoryService.ListCategories())
}

// GetCategory godoc
// @Summary Category details
// @Tags categories
// @Produce  json
// @Param   slug path string true "Category slug"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /categories/{slug} [get]
func (c *CategoryController) GetCategory(ctx *gin.Context) {
	cat, err := c.CategoryService.GetCategory(ctx.Param("slug"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, cat)
}

// GetCriteria godoc
// @Summary Submission criteria for a category
// @Description Returns the form steps, limits, extra info fields, and
// @Description evaluation criteria. For employee categories the
// @Description subcategory query selects the criteria variant.
// @Tags categories
// @Produce  json
// @Param   slug path string true "Category slug"
// @Param   subcategory query string false "Employee subcategory"
// @Success 200 {object} util.Response{data=service.CriteriaPreview}
// @Failure 404 {object} util.Response
// @Router /categories/{slug}/criteria [get]
func (c *CategoryController) GetCriteria(ctx *gin.Context) {
	preview, err := c.CategoryService.GetCriteria(ctx.Param("slug"), ctx.Query("subcategory"))
	if err != nil {
		if errors.Is(err, util.ErrCategoryNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, preview)
}

// GetSubcategories godoc
// @Summary Employee subcategories
// @Tags categories
// @Produce  json
// @Param   group path string true "Subcategory group" Enums(nonsupervisory, supervisory)
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /categories/employee/{group}/subcategories [get]
func (c *CategoryController) GetSubcategories(ctx *gin.Context) {
	subs, err := c.CategoryService.GetSubcategories(ctx.Param("group"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, subs)
}
