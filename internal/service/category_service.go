package service

import (
	"sam_awards_backend/internal/award"
	"sam_awards_backend/internal/util"
)

// CategoryService exposes the award catalogue: categories, their
// subcategories, and the evaluation criteria applicants respond to.
type CategoryService struct{}

func NewCategoryService() *CategoryService {
	return &CategoryService{}
}

func (s *CategoryService) ListCategories() []award.Category {
	return award.Categories()
}

func (s *CategoryService) GetCategory(slug string) (*award.Category, error) {
	cat := award.CategoryBySlug(slug)
	if cat == nil {
		return nil, util.ErrCategoryNotFound
	}
	return cat, nil
}

// CriteriaPreview bundles what the submission form needs up front.
type CriteriaPreview struct {
	CategorySlug string                 `json:"categorySlug"`
	Subcategory  string                 `json:"subcategory,omitempty"`
	Steps        []string               `json:"steps"`
	MaxWords     int                    `json:"maxWordsPerCriterion"`
	MaxFiles     int                    `json:"maxFilesPerCriterion"`
	TotalPoints  int                    `json:"totalPoints"`
	ExtraFields  []award.ExtraInfoField `json:"extraInfoFields"`
	Criteria     []award.Criterion      `json:"criteria"`
}

func (s *CategoryService) GetCriteria(slug, subcategory string) (*CriteriaPreview, error) {
	cfg := award.LookupSubmissionConfig(slug)
	if cfg == nil {
		return nil, util.ErrCategoryNotFound
	}

	return &CriteriaPreview{
		CategorySlug: slug,
		Subcategory:  subcategory,
		Steps:        cfg.Steps,
		MaxWords:     cfg.MaxWordsPerCriterion,
		MaxFiles:     cfg.MaxFilesPerCriterion,
		TotalPoints:  cfg.TotalPoints,
		ExtraFields:  cfg.ExtraInfoFields,
		Criteria:     award.CriteriaFor(slug, subcategory),
	}, nil
}

func (s *CategoryService) GetSubcategories(group string) ([]award.Subcategory, error) {
	subs, ok := award.EmployeeSubcategories[group]
	if !ok {
		return nil, util.ErrCategoryNotFound
	}
	return subs, nil
}
